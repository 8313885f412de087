package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pastelaria/internal/domain"
	custrepo "pastelaria/internal/repository/customer"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when phone/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConsentRequired is returned when registration lacks the data-handling consent.
	ErrConsentRequired = errors.New("consent is required to register")
)

// Service handles customer registration and login.
type Service struct {
	repo        custrepo.Repository
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo custrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		passwordMin: 6,
	}
}

// RegisterInput captures the fields expected by the registration endpoint.
type RegisterInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Consent  bool   `json:"consent"`
}

// Register creates a new customer. It fails with ErrConsentRequired when
// consent is false and with domain.ErrAlreadyExists when the phone number is
// already registered. The password is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	if !in.Consent {
		return nil, ErrConsentRequired
	}
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if name == "" {
		return nil, errors.New("name required")
	}
	if phone == "" {
		return nil, errors.New("phone required")
	}
	if address == "" {
		return nil, errors.New("address required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Customer{
		Name:         name,
		Phone:        phone,
		Address:      address,
		PasswordHash: string(hashed),
		Consent:      true,
	})
}

// Login validates credentials and returns the matching customer. An unknown
// phone and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, phone, password string) (*domain.Customer, error) {
	c, err := s.repo.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}
