package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
)

const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"

	principalKey = "principal"
)

// Principal reads the acting user set by the gateway and forwards the bearer
// token to the wallet service calls made for this request.
func Principal() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		role := models.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderRole))))
		if userID == "" || !role.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid user identity"})
			return
		}

		c.Set(principalKey, models.Principal{UserID: userID, Role: role})

		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			c.Request = c.Request.WithContext(walletapi.WithToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

// RequireRole rejects principals whose role is not among roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := principal(c)
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

func principal(c *gin.Context) models.Principal {
	p, _ := c.Get(principalKey)
	pr, _ := p.(models.Principal)
	return pr
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
