package public

import (
	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// InlineCardRequest 结算时直接提交的卡片载荷
type InlineCardRequest struct {
	HolderName string `json:"holder_name" binding:"required"`
	Number     string `json:"number" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	BrandID    uint   `json:"brand_id" binding:"required"`
}

// AllocationRequest 单笔支付分配请求，已存卡与内联卡二选一
type AllocationRequest struct {
	Amount models.Money       `json:"amount" binding:"required"`
	CardID uint               `json:"card_id"`
	Card   *InlineCardRequest `json:"card"`
}

// SettleOrderRequest 结算下单请求
type SettleOrderRequest struct {
	AddressID     uint                `json:"address_id" binding:"required"`
	CouponCode    string              `json:"coupon_code"`
	FreightAmount *models.Money       `json:"freight_amount"`
	Allocations   []AllocationRequest `json:"allocations" binding:"required"`
}

func toProposedAllocations(items []AllocationRequest) []service.ProposedAllocation {
	proposed := make([]service.ProposedAllocation, 0, len(items))
	for _, item := range items {
		allocation := service.ProposedAllocation{
			Amount: item.Amount,
			CardID: item.CardID,
		}
		if item.Card != nil {
			allocation.Inline = &service.InlineCard{
				HolderName: item.Card.HolderName,
				Number:     item.Card.Number,
				CVV:        item.Card.CVV,
				ExpiryDate: item.Card.ExpiryDate,
				BrandID:    item.Card.BrandID,
			}
		}
		proposed = append(proposed, allocation)
	}
	return proposed
}

// QuoteOrder 结算前报价：小计、运费、折扣与应付总额
func (h *Handler) QuoteOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	quote, err := h.OrderService.Quote(customerID, c.Query("coupon_code"))
	if err != nil {
		respondQuoteError(c, err)
		return
	}

	response.Success(c, quote)
}

// SettleOrder 结算下单：校验支付拆分后原子落库
func (h *Handler) SettleOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req SettleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.SettleOrder(service.SettleOrderInput{
		CustomerID:    customerID,
		AddressID:     req.AddressID,
		CouponCode:    req.CouponCode,
		FreightAmount: req.FreightAmount,
		Allocations:   toProposedAllocations(req.Allocations),
	})
	if err != nil {
		respondSettleOrderError(c, err)
		return
	}

	requestLog(c).Infow("order_settled",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_id", customerID,
	)
	response.Success(c, order)
}
