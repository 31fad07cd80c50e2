package handlers

import (
	"shopledger/internal/auth"
	"shopledger/internal/repos"
	"shopledger/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth           *services.AuthService
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	InvoiceHandler *InvoiceHandler
}

func NewDeps(db *sqlx.DB, tokens *auth.Tokens) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	invRepo := repos.NewInvoiceRepo(db)

	authSvc := services.NewAuthService(userRepo, tokens)
	catalogSvc := services.NewCatalogService(prodRepo)
	invoiceSvc := services.NewInvoiceService(prodRepo, invRepo)

	return &Deps{
		Auth:           authSvc,
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		InvoiceHandler: &InvoiceHandler{Invoices: invoiceSvc},
	}
}
