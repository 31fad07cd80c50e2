package services

import (
	"database/sql"

	"shopledger/internal/domain"
	"shopledger/internal/repos"

	"github.com/google/uuid"
)

type InvoiceService struct {
	Prods    *repos.ProductRepo
	Invoices *repos.InvoiceRepo
}

func NewInvoiceService(prods *repos.ProductRepo, invoices *repos.InvoiceRepo) *InvoiceService {
	return &InvoiceService{Prods: prods, Invoices: invoices}
}

// ItemRequest is one requested cart line. The caller never supplies a price;
// the product's current price is read server-side.
type ItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Create validates every requested line against live stock, computes the
// total from current catalog prices and settles the invoice. Validation
// completes for the whole list before any write happens; settlement itself
// is a single transaction, so a failure leaves no partial state.
func (s *InvoiceService) Create(items []ItemRequest, ownerID string) (*domain.Invoice, error) {
	if len(items) == 0 {
		return nil, &domain.ValidationError{Msg: "invoice must have at least one item"}
	}

	total := 0.0
	lines := make([]domain.InvoiceItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, &domain.ValidationError{Msg: "item quantity must be positive"}
		}
		p, err := s.Prods.Get(it.ProductID, ownerID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, &domain.NotFoundError{Kind: "product", ID: it.ProductID}
			}
			return nil, err
		}
		if p.Quantity < it.Quantity {
			return nil, &domain.InsufficientStockError{Name: p.Name, Available: p.Quantity}
		}
		total += float64(it.Quantity) * p.Price
		lines = append(lines, domain.InvoiceItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       it.Quantity,
		})
	}

	inv := &domain.Invoice{ID: uuid.NewString(), UserID: ownerID, Items: lines, Total: total}
	if err := s.Invoices.Settle(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) ListByOwner(ownerID string) ([]domain.Invoice, error) {
	return s.Invoices.ListByOwner(ownerID)
}

func (s *InvoiceService) Get(id, ownerID string) (*domain.Invoice, error) {
	inv, err := s.Invoices.Get(id, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.NotFoundError{Kind: "invoice", ID: id}
		}
		return nil, err
	}
	return &inv, nil
}
