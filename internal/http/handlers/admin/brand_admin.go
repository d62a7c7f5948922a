package admin

import (
	"errors"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveBrandRequest 卡品牌创建/更新请求
type SaveBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetAdminBrands 获取卡品牌列表 (Admin)
func (h *Handler) GetAdminBrands(c *gin.Context) {
	brands, err := h.BrandService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.brand_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": brands})
}

// CreateBrand 创建卡品牌
func (h *Handler) CreateBrand(c *gin.Context) {
	var req SaveBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	brand, err := h.BrandService.Create(req.Name)
	if err != nil {
		respondError(c, response.CodeInternal, "error.brand_save_failed", err)
		return
	}
	response.Success(c, brand)
}

// UpdateBrand 更新卡品牌
func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SaveBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	brand, err := h.BrandService.Update(id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.brand_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.brand_save_failed", err)
		return
	}
	response.Success(c, brand)
}

// DeleteBrand 删除卡品牌
func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.BrandService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.brand_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.brand_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
