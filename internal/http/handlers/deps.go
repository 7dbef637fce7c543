package handlers

import (
	"github.com/jmoiron/sqlx"

	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
}

// NewDeps wires repositories and services onto the shared pool handle.
// Nothing here is reachable as a global; the pool travels by parameter.
func NewDeps(db *sqlx.DB) *Deps {
	accounts := repos.NewAccountRepo(db)
	products := repos.NewProductRepo(db)
	authSvc := &services.AuthService{Accounts: accounts}

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Products: products},
	}
}
