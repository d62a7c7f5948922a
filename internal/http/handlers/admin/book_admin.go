package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveBookRequest 图书创建/更新请求
type SaveBookRequest struct {
	Title            string       `json:"title" binding:"required"`
	Author           string       `json:"author" binding:"required"`
	Publisher        string       `json:"publisher" binding:"required"`
	Year             int          `json:"year" binding:"required"`
	Edition          int          `json:"edition"`
	ISBN             string       `json:"isbn" binding:"required"`
	Pages            int          `json:"pages"`
	Synopsis         string       `json:"synopsis"`
	ProfitPercentage models.Money `json:"profit_percentage"`
}

func (r SaveBookRequest) toInput() service.CreateBookInput {
	return service.CreateBookInput{
		Title:            r.Title,
		Author:           r.Author,
		Publisher:        r.Publisher,
		Year:             r.Year,
		Edition:          r.Edition,
		ISBN:             r.ISBN,
		Pages:            r.Pages,
		Synopsis:         r.Synopsis,
		ProfitPercentage: r.ProfitPercentage,
	}
}

// GetAdminBooks 获取图书列表 (Admin)
func (h *Handler) GetAdminBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	views, total, err := h.BookService.ListViews(repository.BookListFilter{
		Title:    c.Query("title"),
		Author:   c.Query("author"),
		ISBN:     c.Query("isbn"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
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

// GetAdminBook 获取图书详情 (Admin)
func (h *Handler) GetAdminBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.BookService.GetView(id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.Success(c, view)
}

// CreateBook 创建图书
func (h *Handler) CreateBook(c *gin.Context) {
	var req SaveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	book, err := h.BookService.Create(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrBookISBNTaken) {
			respondError(c, response.CodeBadRequest, "error.book_isbn_taken", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_save_failed", err)
		return
	}

	response.Success(c, book)
}

// UpdateBook 更新图书
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SaveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	book, err := h.BookService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
		case errors.Is(err, service.ErrBookISBNTaken):
			respondError(c, response.CodeBadRequest, "error.book_isbn_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.book_save_failed", err)
		}
		return
	}

	response.Success(c, book)
}

// SetBookStatusRequest 图书上下架请求
type SetBookStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// SetBookStatus 图书上下架（下架需附原因）
func (h *Handler) SetBookStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetBookStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != constants.BookStatusActive && status != constants.BookStatusInactive {
		respondError(c, response.CodeBadRequest, "error.book_status_invalid", nil)
		return
	}

	if err := h.BookService.SetStatus(id, status, req.Reason); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_save_failed", err)
		return
	}

	response.Success(c, gin.H{"updated": true})
}
