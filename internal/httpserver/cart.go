package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tecstore/internal/domain"
)

// checkoutFeedback is the simulated order confirmation.
const checkoutFeedback = "Gracias! Tu pedido ha sido recibido."

type handlers struct {
	logger *logrus.Logger
	cart   CartService
	auth   AuthService
	view   ViewRenderer
	money  Formatter
	modals *modalState
}

type cartStateResponse struct {
	Items          []domain.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          float64           `json:"total"`
	FormattedTotal string            `json:"formattedTotal"`
}

func (h *handlers) cartState() cartStateResponse {
	total := h.cart.Total()
	return cartStateResponse{
		Items:          h.cart.Items(),
		Count:          h.cart.ItemCount(),
		Total:          total,
		FormattedTotal: h.money.Format(total),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartState())
}

func (h *handlers) getCartView(c *gin.Context) {
	html, err := h.view.RenderCart(h.cart.Items())
	if err != nil {
		h.logger.WithError(err).Error("render cart view")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *handlers) addItem(c *gin.Context) {
	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "feedback": "Datos del producto inválidos."})
		return
	}
	if err := h.cart.AddItem(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, h.cartState())
}

func (h *handlers) incrementItem(c *gin.Context) {
	h.changeQuantity(c, 1)
}

func (h *handlers) decrementItem(c *gin.Context) {
	h.changeQuantity(c, -1)
}

// changeQuantity adjusts the line item named in the path. Unknown ids are
// a no-op, matching the original's missing-element tolerance.
func (h *handlers) changeQuantity(c *gin.Context, delta int) {
	id := domain.ItemID(c.Param("id"))
	if err := h.cart.ChangeQuantity(c.Request.Context(), id, delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, h.cartState())
}

func (h *handlers) removeItem(c *gin.Context) {
	id := domain.ItemID(c.Param("id"))
	if err := h.cart.RemoveItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, h.cartState())
}

// submitCheckout is the simulated order submission: it always succeeds,
// empties the cart and hides the checkout modal.
func (h *handlers) submitCheckout(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	h.modals.closeCheckout()
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"feedback": checkoutFeedback,
		"cart":     h.cartState(),
		"modals":   h.modals.snapshot(),
	})
}
