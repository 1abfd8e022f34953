package mw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-hotels-backend/internal/model"
	"event-hotels-backend/internal/store"
)

const testSecret = "top_secret"

type mockSessions struct {
	FindSessionByTokenFunc func(ctx context.Context, token string) (*model.Session, error)
}

func (m *mockSessions) FindSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	return m.FindSessionByTokenFunc(ctx, token)
}

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func setupAuthRouter(sessions SessionFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Authenticate(testSecret, sessions), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"userId": 7})
	known := map[string]int64{valid: 7}

	sessions := &mockSessions{
		FindSessionByTokenFunc: func(_ context.Context, token string) (*model.Session, error) {
			if uid, ok := known[token]; ok {
				return &model.Session{UserID: uid, Token: token}, nil
			}
			return nil, store.ErrNotFound
		},
	}

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "No header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "Empty bearer", header: "Bearer ", expectedStatus: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer not-a-jwt", expectedStatus: http.StatusUnauthorized},
		{
			name:           "Wrong secret",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS256, "other", jwt.MapClaims{"userId": 7}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong algorithm",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{"userId": 7}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing userId claim",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "7"}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Valid token without session",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"userId": 8}),
			expectedStatus: http.StatusUnauthorized,
		},
		{name: "Valid token with session", header: "Bearer " + valid, expectedStatus: http.StatusOK},
	}

	router := setupAuthRouter(sessions)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"userId":7}`, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestAuthenticate_SessionOfAnotherUser(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"userId": 7})
	router := setupAuthRouter(&mockSessions{
		FindSessionByTokenFunc: func(_ context.Context, token string) (*model.Session, error) {
			return &model.Session{UserID: 9, Token: token}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"userId": 7})
	router := setupAuthRouter(&mockSessions{
		FindSessionByTokenFunc: func(_ context.Context, _ string) (*model.Session, error) {
			return nil, errors.New("db down")
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestClaimUserID(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		id    int64
		ok    bool
	}{
		{"whole number", float64(12), 12, true},
		{"fraction", 1.5, 0, false},
		{"zero", float64(0), 0, false},
		{"negative", float64(-3), 0, false},
		{"string", "12", 0, false},
		{"missing", nil, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims := jwt.MapClaims{}
			if tc.value != nil {
				claims["userId"] = tc.value
			}
			id, ok := claimUserID(claims)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.id, id)
		})
	}
}
