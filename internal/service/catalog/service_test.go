package catalog

import (
	"context"
	"testing"

	"pastelaria/internal/domain"
	"github.com/shopspring/decimal"
)

type stubRepo struct {
	products  []domain.Product
	created   []domain.Product
	createErr error
	listErr   error
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.listErr
}

func (s *stubRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	p.ID = int64(len(s.created) + 1)
	s.created = append(s.created, p)
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func TestMenu_GroupsByCategory(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{
		{ID: 1, Name: "Refrigerante Lata", Category: domain.CategoryBeverage},
		{ID: 2, Name: "Pastel de Carne", Category: domain.CategorySavoryPastry},
		{ID: 3, Name: "Pastel de Queijo", Category: domain.CategorySavoryPastry},
		{ID: 4, Name: "Pastel de Chocolate", Category: domain.CategorySweetPastry},
	}}
	svc := New(repo)

	sections, err := svc.Menu(context.Background())
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	// Sections come back in category name order.
	if sections[0].Category != domain.CategoryBeverage ||
		sections[1].Category != domain.CategorySavoryPastry ||
		sections[2].Category != domain.CategorySweetPastry {
		t.Fatalf("unexpected section order: %+v", sections)
	}
	if len(sections[1].Products) != 2 {
		t.Fatalf("expected 2 savory pastries, got %d", len(sections[1].Products))
	}
}

func TestCreate_Validation(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProductInput{Name: "", Category: "beverage", Price: decimal.NewFromInt(1)})
	if err == nil {
		t.Fatalf("expected error for empty name")
	}

	_, err = svc.Create(ctx, ProductInput{Name: "X", Category: "beverage", Price: decimal.NewFromInt(-1)})
	if err == nil {
		t.Fatalf("expected error for negative price")
	}

	_, err = svc.Create(ctx, ProductInput{Name: "X", Category: ""})
	if err == nil {
		t.Fatalf("expected error for empty category")
	}

	if len(repo.created) != 0 {
		t.Fatalf("expected no products created, got %d", len(repo.created))
	}

	if _, err := svc.Create(ctx, ProductInput{Name: "X", Category: "beverage", Price: decimal.Zero}); err != nil {
		t.Fatalf("zero price must be allowed: %v", err)
	}
}
