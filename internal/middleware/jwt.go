package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surplustoserve/backend/internal/auth"
	"github.com/surplustoserve/backend/pkg/response"
)

const (
	// ContextSubjectID is the key for the authenticated subject ID in gin context.
	ContextSubjectID = "subject_id"
	// ContextSubjectKind is the key for the authenticated subject kind in gin context.
	ContextSubjectKind = "subject_kind"
)

// JWT returns a middleware that validates the bearer token and sets the
// authenticated subject in context.
func JWT(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}
		claims, err := tokens.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}
		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextSubjectKind, claims.Kind)
		c.Next()
	}
}

// SubjectID returns the authenticated subject ID from context. It panics if
// the JWT middleware did not run, which is a routing bug.
func SubjectID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextSubjectID).(uuid.UUID)
}
