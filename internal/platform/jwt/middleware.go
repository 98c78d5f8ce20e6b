package jwtmw

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"todo_backend/internal/api"
)

const (
	// ContextUserID is the gin context key holding the verified user's ID.
	ContextUserID = "userID"
	// ContextEmail is the gin context key holding the verified user's email.
	ContextEmail = "userEmail"
)

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Server misconfiguration guard (empty signing secret)
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server misconfigured"})
			return
		}

		// 3. Parse and verify signature and expiry; only HMAC is accepted
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		// 4. A token without a user identity is unusable
		if claims.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		// 5. Expose the verified principal to downstream handlers
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Subject)
		c.Next()
	}
}

// RequireOwnUser はトークンのuser_idとパスの:user_idを比較し、
// 一致しない場合は403で要求を拒否するミドルウェアです。
// AuthRequiredの後段に置く前提です。
func RequireOwnUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}

		// 数値に解釈できないパスIDはどのプリンシパルとも一致しない
		pathID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil || uint(pathID) != principal {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "not authorized to access this user's tasks"})
			return
		}

		c.Next()
	}
}

// PrincipalID returns the verified user ID stored by AuthRequired.
func PrincipalID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
