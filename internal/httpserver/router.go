package httpserver

import (
	"context"
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tecstore/internal/domain"
	"tecstore/internal/store"
)

// CartService is the cart model surface the router dispatches to.
type CartService interface {
	AddItem(ctx context.Context, req domain.AddToCartRequest) error
	ChangeQuantity(ctx context.Context, id domain.ItemID, delta int) error
	RemoveItem(ctx context.Context, id domain.ItemID) error
	Clear(ctx context.Context) error
	Items() []domain.CartItem
	Total() float64
	ItemCount() int
}

// AuthService is the account store surface the router dispatches to.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (string, bool, error)
	SaveProfile(ctx context.Context, email string, profile domain.Profile) error
	Profile(ctx context.Context, email string) (domain.Profile, error)
}

// ViewRenderer produces the HTML fragments the storefront swaps in.
type ViewRenderer interface {
	RenderCart(items []domain.CartItem) (string, error)
	RenderMenu(email string) (string, error)
}

// Formatter renders display amounts.
type Formatter interface {
	Format(amount float64) string
}

// Deps carries the collaborators the router dispatches to.
type Deps struct {
	CartSvc   CartService
	AuthSvc   AuthService
	View      ViewRenderer
	Formatter Formatter
}

// buildRouter wires every storefront interaction to its handler. This is
// the dispatch table: one route per recognized trigger.
func buildRouter(logger *logrus.Logger, st store.Store, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.CartSvc == nil || deps.AuthSvc == nil || deps.View == nil || deps.Formatter == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	h := &handlers{
		logger: logger,
		cart:   deps.CartSvc,
		auth:   deps.AuthSvc,
		view:   deps.View,
		money:  deps.Formatter,
		modals: &modalState{},
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(st))

	router.GET("/cart", h.getCart)
	router.GET("/cart/view", h.getCartView)
	router.POST("/cart/items", h.addItem)
	router.POST("/cart/items/:id/increment", h.incrementItem)
	router.POST("/cart/items/:id/decrement", h.decrementItem)
	router.DELETE("/cart/items/:id", h.removeItem)
	router.POST("/checkout", h.submitCheckout)

	router.POST("/auth/register", h.register)
	router.POST("/auth/login", h.login)
	router.POST("/auth/logout", h.logout)
	router.GET("/auth/session", h.session)
	router.GET("/auth/profile", h.profile)
	router.GET("/account/menu", h.accountMenu)

	router.POST("/ui/cart/open", h.openCartModal)
	router.POST("/ui/cart/close", h.closeCartModal)
	router.POST("/ui/checkout/open", h.openCheckoutModal)
	router.POST("/ui/checkout/close", h.closeCheckoutModal)
	router.POST("/ui/account-menu/toggle", h.toggleAccountMenu)
	router.GET("/ui/state", h.uiState)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	return cfg
}
