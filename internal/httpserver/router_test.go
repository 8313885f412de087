package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pastelaria/internal/domain"
	cartsvc "pastelaria/internal/service/cart"
	catalogsvc "pastelaria/internal/service/catalog"
	customersvc "pastelaria/internal/service/customer"
	ordersvc "pastelaria/internal/service/order"
	"pastelaria/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCustomerSvc struct {
	customer    *domain.Customer
	registerErr error
	loginErr    error
}

func (s *stubCustomerSvc) Register(_ context.Context, _ customersvc.RegisterInput) (*domain.Customer, error) {
	return s.customer, s.registerErr
}

func (s *stubCustomerSvc) Login(_ context.Context, _, _ string) (*domain.Customer, error) {
	return s.customer, s.loginErr
}

type stubCatalogSvc struct {
	sections []domain.MenuSection
	products map[int64]domain.Product
	created  *domain.Product
	err      error
}

func (s *stubCatalogSvc) Menu(_ context.Context) ([]domain.MenuSection, error) {
	return s.sections, s.err
}

func (s *stubCatalogSvc) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, s.err
}

func (s *stubCatalogSvc) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubCatalogSvc) Get(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubCatalogSvc) Create(_ context.Context, _ catalogsvc.ProductInput) (*domain.Product, error) {
	return s.created, s.err
}

func (s *stubCatalogSvc) Update(_ context.Context, _ int64, _ catalogsvc.ProductInput) (*domain.Product, error) {
	return s.created, s.err
}

func (s *stubCatalogSvc) Delete(_ context.Context, _ int64) error {
	return s.err
}

func (s *stubCatalogSvc) Count(_ context.Context) (int64, error) {
	return int64(len(s.products)), s.err
}

// stubProductRepo backs the real cart service in router tests.
type stubProductRepo struct {
	products map[int64]domain.Product
}

func (s *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

type stubOrderSvc struct {
	order       *domain.Order
	checkoutErr error
	getErr      error
	listErr     error
	statusErr   error
	lastCartIDs []int64
}

func (s *stubOrderSvc) Checkout(_ context.Context, customerID int64, cart domain.Cart) (*domain.Order, error) {
	if cart.IsEmpty() {
		return nil, ordersvc.ErrEmptyCart
	}
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	s.lastCartIDs = cart.ProductIDs()
	o := &domain.Order{ID: 7, CustomerID: customerID, Total: cart.Total(), Status: domain.StatusReceived}
	return o, nil
}

func (s *stubOrderSvc) Get(_ context.Context, _ int64, customerID int64) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.order != nil && s.order.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	return s.order, nil
}

func (s *stubOrderSvc) ListAll(_ context.Context) ([]domain.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.order == nil {
		return nil, nil
	}
	return []domain.Order{*s.order}, nil
}

func (s *stubOrderSvc) UpdateStatus(_ context.Context, _ int64, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, ordersvc.ErrInvalidStatus
	}
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	o := *s.order
	o.Status = status
	return &o, nil
}

func (s *stubOrderSvc) Count(_ context.Context) (int64, error) {
	return 3, nil
}

type testEnv struct {
	router   *gin.Engine
	sessions *session.Manager
	orders   *stubOrderSvc
	catalog  *stubCatalogSvc
}

func newTestEnv(t *testing.T, customers *stubCustomerSvc) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := &stubCatalogSvc{products: map[int64]domain.Product{
		1: {ID: 1, Name: "Pastel de Carne", Price: decimal.RequireFromString("8.50"), Category: domain.CategorySavoryPastry},
		2: {ID: 2, Name: "Refrigerante Lata", Price: decimal.RequireFromString("5.00"), Category: domain.CategoryBeverage},
	}}
	orders := &stubOrderSvc{}
	sessions := session.NewManager(time.Hour)

	if customers == nil {
		customers = &stubCustomerSvc{}
	}

	router := buildRouter(logDiscard(), nil, Deps{
		Sessions:    sessions,
		CustomerSvc: customers,
		CatalogSvc:  catalog,
		CartSvc:     cartsvc.New(&stubProductRepo{products: catalog.products}),
		OrderSvc:    orders,
	})

	return &testEnv{router: router, sessions: sessions, orders: orders, catalog: catalog}
}

// startSession stores a logged-in session and returns its cookie.
func (e *testEnv) startSession(customerID int64, name string, admin bool) *http.Cookie {
	sess := e.sessions.Start()
	sess.CustomerID = customerID
	sess.CustomerName = name
	sess.IsAdmin = admin
	e.sessions.Save(sess)
	return &http.Cookie{Name: sessionCookieName, Value: sess.Token}
}

func newJSONRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_NoDB(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a db, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
