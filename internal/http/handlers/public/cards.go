package public

import (
	"errors"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

func respondCardSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInstrument):
		respondError(c, response.CodeBadRequest, "error.card_invalid", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.card_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.card_save_failed", err)
	}
}

// ListCards 获取当前顾客的已存卡列表
func (h *Handler) ListCards(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	cards, err := h.CardService.List(customerID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.card_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"items": cards})
}

// ListCardBrands 获取可用卡品牌列表
func (h *Handler) ListCardBrands(c *gin.Context) {
	brands, err := h.BrandService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.brand_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"items": brands})
}

// CreateCard 保存新卡
func (h *Handler) CreateCard(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req service.SaveCardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	card, err := h.CardService.Create(customerID, req)
	if err != nil {
		respondCardSaveError(c, err)
		return
	}

	response.Success(c, card)
}

// UpdateCard 更新已存卡
func (h *Handler) UpdateCard(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.SaveCardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	card, err := h.CardService.Update(cardID, customerID, req)
	if err != nil {
		respondCardSaveError(c, err)
		return
	}

	response.Success(c, card)
}

// DeleteCard 删除已存卡
func (h *Handler) DeleteCard(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CardService.Delete(cardID, customerID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.card_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.card_delete_failed", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
