package middleware

import (
	"net/http"
	"strings"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	AuthHeader   = "Authorization"
	BearerPrefix = "Bearer "

	ContextKeySession = "session"
)

// SessionVerifier is the external auth collaborator: it resolves a session
// token to the owning user and their role flags.
type SessionVerifier interface {
	Verify(token string) (*domain.Session, error)
}

type AuthMiddleware struct {
	verifier SessionVerifier
}

func NewAuthMiddleware(verifier SessionVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Required authenticates the request and stores the session in the context.
func (m *AuthMiddleware) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeader)
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		session, err := m.verifier.Verify(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid session"})
			return
		}

		c.Set(ContextKeySession, session)
		c.Next()
	}
}

// AdminOnly assumes Required already ran.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || !session.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}

// EmployeeOrAdmin assumes Required already ran.
func (m *AuthMiddleware) EmployeeOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || (!session.IsEmployee && !session.IsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "employee access required"})
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) *domain.Session {
	if session, exists := c.Get(ContextKeySession); exists {
		return session.(*domain.Session)
	}
	return nil
}
