package dto

// FormatRequest corpo de POST /api/format.
type FormatRequest struct {
	Kind  string `json:"kind" validate:"required"`
	Value string `json:"value"`
}

// FormatResponse resultado de aplicar ou remover uma máscara.
type FormatResponse struct {
	Kind  string `json:"kind"`
	Input string `json:"input"`
	Value string `json:"value"`
}

// ValidateDocumentResponse resultado da validação de CPF/CNPJ.
type ValidateDocumentResponse struct {
	Document  string `json:"document"`
	Kind      string `json:"kind,omitempty"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
	Message   string `json:"message,omitempty"`
}
