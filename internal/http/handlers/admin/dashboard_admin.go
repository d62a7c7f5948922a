package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 获取仪表盘总览
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	input := service.DashboardQueryInput{
		Range:        strings.TrimSpace(c.DefaultQuery("range", "today")),
		ForceRefresh: c.Query("force_refresh") == "true",
	}
	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			input.From = &parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			input.To = &parsed
		}
	}

	overview, err := h.DashboardService.GetOverview(input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeBadRequest, "error.dashboard_range_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.dashboard_fetch_failed", err)
		return
	}

	response.Success(c, overview)
}
