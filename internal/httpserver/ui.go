package httpserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// modalState tracks the visibility of the cart and checkout modals and the
// account menu. The original widget keeps this in the DOM (aria-hidden
// attributes); here it is explicit state mutated only by the ui routes.
// All modals start hidden and nothing closes them on a timer.
type modalState struct {
	mu              sync.Mutex
	cartOpen        bool
	checkoutOpen    bool
	accountMenuOpen bool
}

type modalSnapshot struct {
	CartOpen        bool `json:"cartOpen"`
	CheckoutOpen    bool `json:"checkoutOpen"`
	AccountMenuOpen bool `json:"accountMenuOpen"`
}

func (m *modalState) openCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartOpen = true
}

func (m *modalState) closeCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartOpen = false
}

// openCheckout is the checkout trigger: it swaps cart-modal visibility for
// checkout-modal visibility.
func (m *modalState) openCheckout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartOpen = false
	m.checkoutOpen = true
}

func (m *modalState) closeCheckout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkoutOpen = false
}

func (m *modalState) toggleAccountMenu() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountMenuOpen = !m.accountMenuOpen
	return m.accountMenuOpen
}

func (m *modalState) snapshot() modalSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return modalSnapshot{
		CartOpen:        m.cartOpen,
		CheckoutOpen:    m.checkoutOpen,
		AccountMenuOpen: m.accountMenuOpen,
	}
}

// openCartModal shows the cart modal and re-renders its contents, the way
// the original re-renders on open.
func (h *handlers) openCartModal(c *gin.Context) {
	h.modals.openCart()
	html, err := h.view.RenderCart(h.cart.Items())
	if err != nil {
		h.logger.WithError(err).Error("render cart view")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modals": h.modals.snapshot(), "view": html})
}

func (h *handlers) closeCartModal(c *gin.Context) {
	h.modals.closeCart()
	c.JSON(http.StatusOK, gin.H{"modals": h.modals.snapshot()})
}

func (h *handlers) openCheckoutModal(c *gin.Context) {
	h.modals.openCheckout()
	c.JSON(http.StatusOK, gin.H{"modals": h.modals.snapshot()})
}

func (h *handlers) closeCheckoutModal(c *gin.Context) {
	h.modals.closeCheckout()
	c.JSON(http.StatusOK, gin.H{"modals": h.modals.snapshot()})
}

func (h *handlers) toggleAccountMenu(c *gin.Context) {
	open := h.modals.toggleAccountMenu()
	c.JSON(http.StatusOK, gin.H{"modals": h.modals.snapshot(), "accountMenuOpen": open})
}

// uiState is a snapshot of everything the storefront derives its display
// from: modal visibility, the item count badge and the session.
func (h *handlers) uiState(c *gin.Context) {
	email, loggedIn, err := h.auth.CurrentSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"modals":   h.modals.snapshot(),
		"count":    h.cart.ItemCount(),
		"loggedIn": loggedIn,
		"email":    email,
	})
}
