package admin

import (
	"errors"
	"strconv"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

func respondCouponSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
	case errors.Is(err, service.ErrCouponUsed):
		respondError(c, response.CodeBadRequest, "error.coupon_used_immutable", nil)
	case errors.Is(err, service.ErrCouponInvalid):
		respondError(c, response.CodeBadRequest, "error.coupon_input_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.coupon_save_failed", err)
	}
}

// GetAdminCoupons 获取优惠券列表 (Admin)
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	coupons, total, err := h.CouponAdminService.List(repository.CouponListFilter{
		Code:     c.Query("code"),
		Kind:     c.Query("kind"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.coupon_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, coupons, pagination)
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req service.SaveCouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Create(req)
	if err != nil {
		respondCouponSaveError(c, err)
		return
	}
	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券（已使用的不可修改）
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.SaveCouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Update(id, req)
	if err != nil {
		respondCouponSaveError(c, err)
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券（已使用的不可删除）
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CouponAdminService.Delete(id); err != nil {
		respondCouponSaveError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
