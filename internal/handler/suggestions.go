package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"procurehub/internal/recommend"
	"procurehub/internal/tenant"
)

type SuggestionHandler struct {
	Service *recommend.Service
	Logger  *zap.Logger
}

func (h *SuggestionHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/products")
	group.GET("/:productID/suggestions", h.getSuggestions)
	group.POST("/:productID/preferred-supplier", h.applyPreferred)
}

func (h *SuggestionHandler) getSuggestions(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	tenantID := tenant.FromContext(c.Request.Context())
	productID, ok := uint64Param(c, "productID")
	if !ok {
		return
	}
	set, err := h.Service.Suggestions(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, set, nil)
}

type applyPreferredRequest struct {
	SupplierID uint64 `json:"supplier_id" binding:"required"`
	Reason     string `json:"reason"`
}

func (h *SuggestionHandler) applyPreferred(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	tenantID := tenant.FromContext(c.Request.Context())
	productID, ok := uint64Param(c, "productID")
	if !ok {
		return
	}
	var req applyPreferredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body: "+err.Error(), nil)
		return
	}
	result, err := h.Service.ApplyPreferred(c.Request.Context(), tenantID, productID, req.SupplierID, strings.TrimSpace(req.Reason))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, result, nil)
}

func (h *SuggestionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, recommend.ErrTxFailed):
		Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, recommend.ErrInvalidConfig):
		Error(c, http.StatusInternalServerError, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.Warn("suggestion request failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func uint64Param(c *gin.Context, name string) (uint64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		Error(c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
