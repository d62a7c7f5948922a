package public

import (
	"strconv"

	"github.com/livraria-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车变更请求
type CartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	view, err := h.CartService.Get(customerID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, view)
}

// AddCartItem 预订库存加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.CartService.Add(customerID, req.BookID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, view)
}

// RemoveCartItem 从购物车释放指定数量库存
func (h *Handler) RemoveCartItem(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	rawID := c.Param("book_id")
	bookID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || bookID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if quantity < 1 {
		quantity = 1
	}

	view, err := h.CartService.Remove(customerID, uint(bookID), quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, view)
}

// ClearCart 清空购物车并释放全部预订
func (h *Handler) ClearCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(customerID); err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}
