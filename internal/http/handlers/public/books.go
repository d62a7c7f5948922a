package public

import (
	"errors"
	"strconv"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetBooks 获取在售图书列表
func (h *Handler) GetBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.BookListFilter{
		Title:    c.Query("title"),
		Author:   c.Query("author"),
		ISBN:     c.Query("isbn"),
		Status:   constants.BookStatusActive,
		Page:     page,
		PageSize: pageSize,
	}

	views, total, err := h.BookService.ListViews(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// GetBook 获取图书详情（含售价与可购数量）
func (h *Handler) GetBook(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	view, err := h.BookService.GetView(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}
	if view.Book.Status != constants.BookStatusActive {
		respondError(c, response.CodeNotFound, "error.book_not_found", nil)
		return
	}

	response.Success(c, view)
}
