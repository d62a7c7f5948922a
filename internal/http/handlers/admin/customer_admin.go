package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminCustomers 获取顾客列表 (Admin)
func (h *Handler) GetAdminCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CustomerListFilter{
		Name:     c.Query("name"),
		Email:    c.Query("email"),
		Page:     page,
		PageSize: pageSize,
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("is_active"))) {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	customers, total, err := h.CustomerRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, customers, pagination)
}

// GetAdminCustomer 获取顾客详情 (Admin)
func (h *Handler) GetAdminCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.CustomerRepo.GetByID(customerID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if customer == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}

	response.Success(c, customer)
}

// SetCustomerActiveRequest 顾客启用/停用请求
type SetCustomerActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetCustomerActive 启用/停用顾客账号（停用后旧令牌失效）
func (h *Handler) SetCustomerActive(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetCustomerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	customer, err := h.UserAuthService.SetActive(customerID, *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}

	requestLog(c).Infow("admin_customer_active_updated",
		"customer_id", customer.ID,
		"is_active", customer.IsActive,
	)
	response.Success(c, customer)
}
