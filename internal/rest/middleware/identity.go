package middleware

import (
	"context"

	"github.com/coopportal/coopportal/internal/types"
	"github.com/gin-gonic/gin"
)

// CallerIdentity copies the caller headers into the request context. The
// dashboard is a trusted collaborator, so absent headers are tolerated for
// reads; role-gated mutations check the role downstream.
func CallerIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	if userID := c.GetHeader(types.HeaderUserID); userID != "" {
		ctx = context.WithValue(ctx, types.CtxUserID, userID)
	}
	if role := c.GetHeader(types.HeaderUserRole); role != "" {
		ctx = context.WithValue(ctx, types.CtxUserRole, types.UserRole(role))
	}

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
