package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"procurehub/internal/repository"
	"procurehub/internal/tenant"
)

type AuditHandler struct {
	Repo repository.Repository
}

func (h *AuditHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/audit-logs", h.listAuditLogs)
}

func (h *AuditHandler) listAuditLogs(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListAuditLogsParams{
		TenantID: tenant.FromContext(c.Request.Context()),
		Limit:    intQuery(c, "limit", 50),
		Offset:   intQuery(c, "offset", 0),
	}
	if raw := strings.TrimSpace(c.Query("product_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			Error(c, http.StatusBadRequest, "invalid product_id", nil)
			return
		}
		params.ProductID = &id
	}
	items, err := h.Repo.ListAuditLogs(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusInternalServerError, "list audit logs failed", nil)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
