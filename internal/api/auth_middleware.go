package api

import (
	"net/http"
	"strings"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/gin-gonic/gin"
)

const contextKeyName = "playerName"

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func (s *Sessions) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(constants.CookieSessionName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
}

func (s *Sessions) clearSessionCookie(c *gin.Context) {
	c.SetCookie(constants.CookieSessionName, "", -1, "/", "", s.secure, true)
}

// AuthRequired validates the session cookie (or a bearer token) and injects
// the wallet address and display name into the context.
func (s *Sessions) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieSessionName)
		if err != nil || token == "" {
			token = strings.TrimPrefix(c.GetHeader(constants.HeaderAuthorization), constants.BearerPrefix)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := s.parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set(constants.ContextKeyWallet, claims.Subject)
		c.Set(contextKeyName, claims.Name)
		c.Next()
	}
}

func sessionWallet(c *gin.Context) string {
	return c.GetString(constants.ContextKeyWallet)
}

func sessionName(c *gin.Context) string {
	return c.GetString(contextKeyName)
}
