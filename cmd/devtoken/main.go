// devtoken emite um JWT assinado com o JWT_SECRET da configuração, para testes locais da API.
//
// Uso: go run ./cmd/devtoken -user u-1 -company c-1 -role gerente
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/webytehub/ploutosledger-api/pkg/config"
	"github.com/webytehub/ploutosledger-api/pkg/jwt"
)

func main() {
	userID := flag.String("user", "00000000-0000-0000-0000-000000000001", "user_id do token")
	companyID := flag.String("company", "00000000-0000-0000-0000-000000000002", "company_id do token")
	role := flag.String("role", jwt.RoleAdmin, "papel: admin, gerente ou operador")
	exp := flag.Int("exp", 0, "expiração em minutos (0 usa JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}
	if *exp <= 0 {
		*exp = cfg.JWT.Expiration
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *userID, *companyID, *role, cfg.JWT.Issuer, *exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gerar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
