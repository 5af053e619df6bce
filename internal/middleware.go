package internal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "portal_token"

type claims struct {
	SID      string `json:"sid"`
	Role     string `json:"role"`
	Team     int    `json:"team,omitempty"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
			return
		}

		tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bad token"})
			return
		}

		cl, ok := tok.Claims.(*claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bad claims"})
			return
		}

		c.Set("sid", cl.SID)
		c.Set("role", cl.Role)
		c.Set("team", cl.Team)
		c.Set("username", cl.Username)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role(c) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role(c) != RoleManager {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "managers only"})
			return
		}
		c.Next()
	}
}

func sid(c *gin.Context) string {
	v, _ := c.Get("sid")
	s, _ := v.(string)
	return s
}

func role(c *gin.Context) string {
	v, _ := c.Get("role")
	s, _ := v.(string)
	return s
}

func team(c *gin.Context) int {
	v, _ := c.Get("team")
	t, _ := v.(int)
	return t
}

func username(c *gin.Context) string {
	v, _ := c.Get("username")
	s, _ := v.(string)
	return s
}
