package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pastelaria/internal/domain"
	productrepo "pastelaria/internal/repository/product"
	"github.com/shopspring/decimal"
)

// Service exposes catalog reads to everyone and writes to administrators.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return errors.New("category required")
	}
	if in.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Menu groups all products into sections by category, sections ordered by
// category name, products ordered by name within each.
func (s *Service) Menu(ctx context.Context) ([]domain.MenuSection, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]domain.Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sections := make([]domain.MenuSection, 0, len(categories))
	for _, category := range categories {
		sections = append(sections, domain.MenuSection{
			Category: category,
			Products: byCategory[category],
		})
	}
	return sections, nil
}

func (s *Service) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
	})
}

func (s *Service) Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
	})
}

// Delete removes a product from the catalog. Past orders referencing it keep
// their membership rows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
