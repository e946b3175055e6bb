package handlers

import (
	"net/http"

	"maison/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCart handles GET /api/cart/:sessionID.
func (h *HandlerBundle) GetCart(c *gin.Context) {
	cart, err := h.CartSvc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.Logger.Error("GetCart: failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddCartItem handles POST /api/cart/:sessionID/items.
func (h *HandlerBundle) AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if item.ProductID == "" || item.Name == "" || item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId, name and a non-negative price are required"})
		return
	}

	cart, err := h.CartSvc.AddItem(c.Request.Context(), c.Param("sessionID"), item)
	if err != nil {
		h.Logger.Error("AddCartItem: failed to store cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateCartItem handles PUT /api/cart/:sessionID/items/:itemID.
func (h *HandlerBundle) UpdateCartItem(c *gin.Context) {
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cart, err := h.CartSvc.UpdateQuantity(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"), body.Quantity)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveCartItem handles DELETE /api/cart/:sessionID/items/:itemID.
func (h *HandlerBundle) RemoveCartItem(c *gin.Context) {
	cart, err := h.CartSvc.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart handles DELETE /api/cart/:sessionID.
func (h *HandlerBundle) ClearCart(c *gin.Context) {
	if err := h.CartSvc.Clear(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("ClearCart: failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
