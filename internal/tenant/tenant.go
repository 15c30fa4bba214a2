package tenant

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderName carries the tenant resolved by the gateway. Tenant resolution
// itself lives outside this service; we only trust and propagate the header.
const HeaderName = "X-Tenant-ID"

type ctxKey int

const tenantCtxKey ctxKey = 1

func WithTenant(ctx context.Context, tenantID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, tenantCtxKey, tenantID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v := ctx.Value(tenantCtxKey)
	id, _ := v.(string)
	return id
}

// RequireMiddleware rejects API requests without a tenant header and injects
// the tenant into the request context. Infra endpoints stay open.
func RequireMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/healthz" || p == "/readyz" {
			c.Next()
			return
		}
		if strings.HasPrefix(p, "/api/") {
			id := strings.TrimSpace(c.GetHeader(HeaderName))
			if id == "" {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + HeaderName})
				return
			}
			c.Request = c.Request.WithContext(WithTenant(c.Request.Context(), id))
		}
		c.Next()
	}
}
