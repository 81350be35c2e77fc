package repository

import "context"

// KeyValueStore armazenamento chave/valor das preferências (substitui o armazenamento do navegador).
// Get devolve found=false quando a chave não existe. A última escrita prevalece.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// CompanyKey monta a chave de uma preferência da empresa.
func CompanyKey(companyID, key string) string {
	return "company:" + companyID + ":" + key
}

// UserKey monta a chave de uma preferência do usuário.
func UserKey(userID, key string) string {
	return "user:" + userID + ":" + key
}
