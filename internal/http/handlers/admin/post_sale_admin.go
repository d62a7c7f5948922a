package admin

import (
	"errors"
	"strconv"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/i18n"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListPostSales 获取退换货请求列表 (Admin)
func (h *Handler) AdminListPostSales(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 64)
	orderID, _ := strconv.ParseUint(c.Query("order_id"), 10, 64)

	requests, total, err := h.PostSaleService.List(repository.PostSaleListFilter{
		CustomerID: uint(customerID),
		OrderID:    uint(orderID),
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

// AdminGetPostSale 获取退换货请求详情 (Admin)
func (h *Handler) AdminGetPostSale(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.PostSaleService.Get(requestID, 0)
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

// AdminUpdatePostSaleStatusRequest 退换货状态流转请求
type AdminUpdatePostSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdatePostSaleStatus 推进退换货请求状态
// 退货完成释放库存，换货完成封存库存。
func (h *Handler) AdminUpdatePostSaleStatus(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AdminUpdatePostSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	request, err := h.PostSaleService.Transition(requestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostSaleNotFound):
			respondError(c, response.CodeNotFound, "error.post_sale_not_found", nil)
		case errors.Is(err, service.ErrIllegalStatusTransition):
			var illegal *service.IllegalTransitionError
			if errors.As(err, &illegal) {
				locale := i18n.ResolveLocale(c)
				msg := i18n.Sprintf(locale, "error.order_transition_illegal", illegal.From, illegal.To)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.post_sale_status_invalid", nil)
		case errors.Is(err, service.ErrInventoryUnavailable):
			respondError(c, response.CodeBadRequest, "error.inventory_unavailable", nil)
		default:
			respondError(c, response.CodeInternal, "error.post_sale_update_failed", err)
		}
		return
	}

	requestLog(c).Infow("admin_post_sale_status_updated",
		"request_id", request.ID,
		"order_id", request.OrderID,
		"kind", request.Kind,
		"status", request.Status,
	)
	response.Success(c, request)
}
