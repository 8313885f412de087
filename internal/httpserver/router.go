package httpserver

import (
	"context"
	"log"

	"pastelaria/internal/domain"
	catalogsvc "pastelaria/internal/service/catalog"
	customersvc "pastelaria/internal/service/customer"
	"pastelaria/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type customerService interface {
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.Customer, error)
	Login(ctx context.Context, phone, password string) (*domain.Customer, error)
}

type catalogService interface {
	Menu(ctx context.Context) ([]domain.MenuSection, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in catalogsvc.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in catalogsvc.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type cartService interface {
	Add(ctx context.Context, cart domain.Cart, productID int64) (*domain.Product, error)
	Remove(cart domain.Cart, productID int64)
}

type orderService interface {
	Checkout(ctx context.Context, customerID int64, cart domain.Cart) (*domain.Order, error)
	Get(ctx context.Context, orderID, customerID int64) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	Sessions    *session.Manager
	CustomerSvc customerService
	CatalogSvc  catalogService
	CartSvc     cartService
	OrderSvc    orderService
	CORSOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) == 1 && deps.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	router.Use(cors.New(corsCfg))

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)
	router.Use(requestIDMiddleware(), m.middleware(), sessionMiddleware(deps.Sessions))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	router.POST("/register", registerHandler(deps))
	router.POST("/login", loginHandler(deps))
	router.POST("/logout", logoutHandler(deps))

	router.GET("/menu", menuHandler(deps))
	router.GET("/products", listProductsHandler(deps))
	router.GET("/products/:id", productHandler(deps))

	authed := router.Group("/", requireGuards(authenticated))
	{
		authed.GET("/cart", viewCartHandler(deps))
		authed.POST("/cart/items/:productID", addCartItemHandler(deps))
		authed.DELETE("/cart/items/:productID", removeCartItemHandler(deps))
		authed.POST("/checkout", checkoutHandler(deps, m))
		authed.GET("/orders/:id", orderConfirmationHandler(deps))
	}

	admin := router.Group("/admin", requireGuards(authenticated, administrator))
	{
		admin.GET("/dashboard", dashboardHandler(deps))
		admin.GET("/orders", listOrdersHandler(deps))
		admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps))
		admin.GET("/products", listProductsHandler(deps))
		admin.POST("/products", createProductHandler(deps))
		admin.PUT("/products/:id", updateProductHandler(deps))
		admin.DELETE("/products/:id", deleteProductHandler(deps))
	}

	return router
}
