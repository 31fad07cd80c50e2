package repos

import (
	"shopledger/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ProductRepo scopes every accessor to an owner. A lookup for another
// tenant's product misses exactly like a nonexistent id.
type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,user_id,name,price,quantity,image_url)
	  VALUES(?,?,?,?,?,?)
	`, p.ID, p.UserID, p.Name, p.Price, p.Quantity, p.ImageURL)
	if err != nil {
		return err
	}
	return r.db.Get(&p.CreatedAt, `SELECT created_at FROM products WHERE id=?`, p.ID)
}

func (r *ProductRepo) ListByOwner(userID string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, name, price, quantity,
	         COALESCE(image_url,'') AS image_url,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, rowid DESC
	`, userID)
	return out, err
}

// Get returns sql.ErrNoRows when the product does not exist or belongs to
// a different owner.
func (r *ProductRepo) Get(id, userID string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, user_id, name, price, quantity,
	         COALESCE(image_url,'') AS image_url,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ? AND user_id = ?
	`, id, userID)
	return p, err
}

// Update rewrites the mutable columns; the caller has already merged partial
// input into p. Returns the number of rows touched (0 means not owned).
func (r *ProductRepo) Update(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, price = ?, quantity = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND user_id = ?
	`, p.Name, p.Price, p.Quantity, p.ImageURL, p.ID, p.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) Delete(id, userID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
