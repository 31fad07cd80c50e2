package services_test

import (
	"errors"
	"testing"

	"shopledger/internal/domain"
	"shopledger/internal/repos"
	"shopledger/internal/services"
)

func str(s string) *string   { return &s }
func f64(f float64) *float64 { return &f }
func num(n int) *int         { return &n }

func TestCreateProduct_DefaultsAndValidation(t *testing.T) {
	db := memdb(t)
	seedOwner(t, db, "u1")
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	p, err := svc.Create("u1", services.ProductInput{Name: str("Cake")})
	if err != nil {
		t.Fatal(err)
	}
	if p.Price != 0 || p.Quantity != 0 {
		t.Fatalf("want price/quantity defaults of 0, got %+v", p)
	}
	if p.ID == "" || p.CreatedAt == "" {
		t.Fatalf("id and created_at must be set: %+v", p)
	}

	var ve *domain.ValidationError
	if _, err := svc.Create("u1", services.ProductInput{}); !errors.As(err, &ve) {
		t.Fatalf("missing name: want ValidationError, got %v", err)
	}
	if _, err := svc.Create("u1", services.ProductInput{Name: str("Pie"), Price: f64(-1)}); !errors.As(err, &ve) {
		t.Fatalf("negative price: want ValidationError, got %v", err)
	}
	if _, err := svc.Create("u1", services.ProductInput{Name: str("Pie"), Quantity: num(-1)}); !errors.As(err, &ve) {
		t.Fatalf("negative quantity: want ValidationError, got %v", err)
	}
}

func TestListProducts_OwnerScopedNewestFirst(t *testing.T) {
	db := memdb(t)
	seedOwner(t, db, "u1")
	seedOwner(t, db, "u2")
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	a, err := svc.Create("u1", services.ProductInput{Name: str("Cake")})
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Create("u1", services.ProductInput{Name: str("Pie")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create("u2", services.ProductInput{Name: str("Bread")}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.ListByOwner("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want only u1's 2 products, got %d", len(got))
	}
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("want newest first, got %s then %s", got[0].Name, got[1].Name)
	}
}

func TestUpdateProduct_PartialMerge(t *testing.T) {
	db := memdb(t)
	seedOwner(t, db, "u1")
	seedProduct(t, db, "cake-001", "u1", "Cake", 25.50, 5)
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	p, err := svc.Update("cake-001", "u1", services.ProductInput{Price: f64(30.00)})
	if err != nil {
		t.Fatal(err)
	}
	if p.Price != 30.00 {
		t.Fatalf("want updated price, got %v", p.Price)
	}
	if p.Name != "Cake" || p.Quantity != 5 {
		t.Fatalf("unspecified fields must be untouched: %+v", p)
	}
	if p.UpdatedAt == "" {
		t.Fatal("updated_at must be set after update")
	}
}

func TestUpdateProduct_CrossTenantNotFound(t *testing.T) {
	db := memdb(t)
	seedOwner(t, db, "u1")
	seedOwner(t, db, "u2")
	seedProduct(t, db, "cake-001", "u2", "Cake", 25.50, 5)
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	var nf *domain.NotFoundError
	if _, err := svc.Update("cake-001", "u1", services.ProductInput{Price: f64(1)}); !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError for foreign product, got %v", err)
	}
	if _, err := svc.Update("missing", "u1", services.ProductInput{Price: f64(1)}); !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError for missing product, got %v", err)
	}
}

func TestDeleteProduct_ReturnsRowAndRemoves(t *testing.T) {
	db := memdb(t)
	seedOwner(t, db, "u1")
	seedOwner(t, db, "u2")
	seedProduct(t, db, "cake-001", "u1", "Cake", 25.50, 5)
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	p, err := svc.Delete("cake-001", "u1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Cake" {
		t.Fatalf("delete should echo the removed product, got %+v", p)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("row should be gone, %d left", n)
	}

	var nf *domain.NotFoundError
	if _, err := svc.Delete("cake-001", "u1"); !errors.As(err, &nf) {
		t.Fatalf("second delete: want NotFoundError, got %v", err)
	}

	seedProduct(t, db, "pie-001", "u2", "Pie", 10.00, 1)
	if _, err := svc.Delete("pie-001", "u1"); !errors.As(err, &nf) {
		t.Fatalf("cross-tenant delete: want NotFoundError, got %v", err)
	}
}
