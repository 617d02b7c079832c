package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/surplustoserve/backend/internal/auth"
	"github.com/surplustoserve/backend/pkg/response"
)

// RequireKind returns a middleware that allows only subjects of the given kind.
// Donor-only and NGO-only routes are built from this.
func RequireKind(kind auth.SubjectKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		kindVal, ok := c.Get(ContextSubjectKind)
		if !ok {
			response.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}
		if k, _ := kindVal.(auth.SubjectKind); k != kind {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
