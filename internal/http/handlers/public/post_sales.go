package public

import (
	"errors"
	"strconv"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePostSaleRequest 退换货请求创建参数
type CreatePostSaleRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Kind    string `json:"kind" binding:"required"`
	ItemIDs []uint `json:"item_ids" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

// CreatePostSale 创建退换货请求（仅限已送达订单）
func (h *Handler) CreatePostSale(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req CreatePostSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	request, err := h.PostSaleService.Create(service.CreatePostSaleInput{
		CustomerID: customerID,
		OrderID:    req.OrderID,
		Kind:       req.Kind,
		ItemIDs:    req.ItemIDs,
		Reason:     req.Reason,
	})
	if err != nil {
		respondPostSaleCreateError(c, err)
		return
	}

	requestLog(c).Infow("post_sale_created",
		"request_id", request.ID,
		"order_id", request.OrderID,
		"kind", request.Kind,
	)
	response.Success(c, request)
}

// ListPostSales 获取当前顾客的退换货请求列表
func (h *Handler) ListPostSales(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	requests, total, err := h.PostSaleService.List(repository.PostSaleListFilter{
		CustomerID: customerID,
		Kind:       c.Query("kind"),
		Status:     c.Query("status"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_sale_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, requests, pagination)
}

// GetPostSale 获取退换货请求详情
func (h *Handler) GetPostSale(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.PostSaleService.Get(requestID, customerID)
	if err != nil {
		if errors.Is(err, service.ErrPostSaleNotFound) {
			respondError(c, response.CodeNotFound, "error.post_sale_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_sale_fetch_failed", err)
		return
	}

	response.Success(c, request)
}

// CancelPostSale 顾客主动取消退换货请求（仅限待处理状态）
func (h *Handler) CancelPostSale(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.PostSaleService.CancelByOwner(requestID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostSaleNotFound):
			respondError(c, response.CodeNotFound, "error.post_sale_not_found", nil)
		case errors.Is(err, service.ErrIllegalStatusTransition):
			respondError(c, response.CodeBadRequest, "error.post_sale_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.post_sale_cancel_failed", err)
		}
		return
	}

	response.Success(c, request)
}
