package admin

import (
	"errors"
	"strconv"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// StockIntake 批量入库
func (h *Handler) StockIntake(c *gin.Context) {
	var req service.StockIntakeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	units, err := h.StockService.Intake(req)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.stock_intake_failed", err)
		return
	}

	requestLog(c).Infow("stock_intake",
		"book_id", req.BookID,
		"quantity", len(units),
		"supplier", req.Supplier,
	)
	response.Success(c, gin.H{"items": units, "count": len(units)})
}

// GetStockUnits 获取库存单元列表
func (h *Handler) GetStockUnits(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	bookID, _ := strconv.ParseUint(c.Query("book_id"), 10, 64)

	units, total, err := h.StockService.ListUnits(repository.InventoryListFilter{
		BookID:   uint(bookID),
		Status:   c.Query("status"),
		Supplier: c.Query("supplier"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.stock_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, units, pagination)
}

// ReactivateStockUnit 将换货封存的库存单元重新上架
func (h *Handler) ReactivateStockUnit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.StockService.ReactivateBlocked(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.stock_unit_not_found", nil)
		case errors.Is(err, service.ErrIllegalStatusTransition):
			respondError(c, response.CodeBadRequest, "error.stock_unit_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.stock_update_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"reactivated": true})
}
