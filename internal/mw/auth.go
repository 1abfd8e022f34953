package mw

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"event-hotels-backend/internal/model"
	"event-hotels-backend/internal/store"
)

const userIDKey = "userId"

// SessionFinder resolves a bearer token to its session.
type SessionFinder interface {
	FindSessionByToken(ctx context.Context, token string) (*model.Session, error)
}

// Authenticate requires a valid HS256 bearer token carrying a userId claim and a
// matching session row. Rejections are bare 401s.
func Authenticate(secret string, sessions SessionFinder) gin.HandlerFunc {
	keyFunc := func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		tokenStr := strings.TrimSpace(auth[len("Bearer "):])
		if tokenStr == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(tokenStr, claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !tok.Valid {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, ok := claimUserID(claims)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, err := sessions.FindSessionByToken(c.Request.Context(), tokenStr)
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if session.UserID != userID {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by Authenticate.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// JSON numbers decode as float64; only positive whole values are user ids.
func claimUserID(claims jwt.MapClaims) (int64, bool) {
	f, ok := claims[userIDKey].(float64)
	if !ok || f <= 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
