package customer

import (
	"context"
	"errors"
	"testing"

	"pastelaria/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type stubRepo struct {
	customers   map[string]*domain.Customer
	createCalls int
	createErr   error
}

func newStubRepo() *stubRepo {
	return &stubRepo{customers: make(map[string]*domain.Customer)}
}

func (s *stubRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.customers[c.Phone]; ok {
		return nil, domain.ErrAlreadyExists
	}
	c.ID = int64(len(s.customers) + 1)
	stored := c
	s.customers[c.Phone] = &stored
	return &stored, nil
}

func (s *stubRepo) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	if c, ok := s.customers[phone]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "Maria",
		Phone:    "11999990000",
		Address:  "Rua das Flores, 10",
		Password: "hunter22",
		Consent:  true,
	}
}

func TestRegister_WithoutConsent(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)

	in := validInput()
	in.Consent = false

	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrConsentRequired) {
		t.Fatalf("expected ErrConsentRequired, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no customer row created, got %d create calls", repo.createCalls)
	}
}

func TestRegister_DuplicatePhone(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, validInput()); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(repo.customers) != 1 {
		t.Fatalf("expected exactly one customer, got %d", len(repo.customers))
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)

	c, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.PasswordHash == "hunter22" || c.PasswordHash == "" {
		t.Fatalf("expected a hashed password, got %q", c.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("hunter22")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)

	in := validInput()
	in.Password = "abc"

	if _, err := svc.Register(context.Background(), in); err == nil {
		t.Fatalf("expected validation error for short password")
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no create call, got %d", repo.createCalls)
	}
}

func TestLogin(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "11999990000", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "11000000000", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown phone, got %v", err)
	}

	c, err := svc.Login(ctx, "11999990000", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.ID != registered.ID {
		t.Fatalf("expected customer %d, got %d", registered.ID, c.ID)
	}
}
