package repos

import (
	"database/sql"

	"shopledger/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InvoiceRepo struct{ db *sqlx.DB }

func NewInvoiceRepo(db *sqlx.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// Settle persists the invoice and decrements stock in one transaction.
// Each decrement is guarded by quantity >= qty, so a concurrent sale that
// drained the shelf after the caller's validation pass rolls the whole
// invoice back instead of overselling.
func (r *InvoiceRepo) Settle(inv *domain.Invoice) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO invoices(id, user_id, total, created_at)
	  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	`, inv.ID, inv.UserID, inv.Total); err != nil {
		return err
	}

	for i, it := range inv.Items {
		if _, err := tx.Exec(`
		  INSERT INTO invoice_items(invoice_id, line_no, product_id, name, price, qty)
		  VALUES(?, ?, ?, ?, ?, ?)
		`, inv.ID, i+1, it.ProductID, it.Name, it.Price, it.Qty); err != nil {
			return err
		}
	}

	for _, it := range inv.Items {
		res, err := tx.Exec(`
		  UPDATE products
		  SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ? AND user_id = ? AND quantity >= ?
		`, it.Qty, it.ProductID, inv.UserID, it.Qty)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			var avail int
			if err := tx.Get(&avail, `SELECT quantity FROM products WHERE id = ? AND user_id = ?`, it.ProductID, inv.UserID); err != nil {
				if err == sql.ErrNoRows {
					return &domain.NotFoundError{Kind: "product", ID: it.ProductID}
				}
				return err
			}
			return &domain.InsufficientStockError{Name: it.Name, Available: avail}
		}
	}

	if err := tx.Get(&inv.CreatedAt, `SELECT created_at FROM invoices WHERE id = ?`, inv.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *InvoiceRepo) Get(id, userID string) (domain.Invoice, error) {
	var inv domain.Invoice
	if err := r.db.Get(&inv, `
	  SELECT id, user_id, total, created_at
	  FROM invoices
	  WHERE id = ? AND user_id = ?
	`, id, userID); err != nil {
		return domain.Invoice{}, err
	}
	items := []domain.InvoiceItem{}
	if err := r.db.Select(&items, `
	  SELECT product_id, name, price, qty
	  FROM invoice_items
	  WHERE invoice_id = ?
	  ORDER BY line_no
	`, id); err != nil {
		return domain.Invoice{}, err
	}
	inv.Items = items
	return inv, nil
}

// ListByOwner returns the owner's invoices newest first, items populated.
func (r *InvoiceRepo) ListByOwner(userID string) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	if err := r.db.Select(&out, `
	  SELECT id, user_id, total, created_at
	  FROM invoices
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, rowid DESC
	`, userID); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]string, len(out))
	for i := range out {
		ids[i] = out[i].ID
	}
	query, args, err := sqlx.In(`
	  SELECT invoice_id, product_id, name, price, qty
	  FROM invoice_items
	  WHERE invoice_id IN (?)
	  ORDER BY invoice_id, line_no
	`, ids)
	if err != nil {
		return nil, err
	}
	type itemRow struct {
		InvoiceID string `db:"invoice_id"`
		domain.InvoiceItem
	}
	var rows []itemRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	byInvoice := make(map[string][]domain.InvoiceItem, len(out))
	for _, row := range rows {
		byInvoice[row.InvoiceID] = append(byInvoice[row.InvoiceID], row.InvoiceItem)
	}
	for i := range out {
		items := byInvoice[out[i].ID]
		if items == nil {
			items = []domain.InvoiceItem{}
		}
		out[i].Items = items
	}
	return out, nil
}
