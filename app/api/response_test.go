package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelu/tote/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	handler(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		SuccessResponse(c, http.StatusOK, "ok", gin.H{"id": "abc"})
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
	assert.Nil(t, resp.Error)
}

func TestListResponse(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		ListResponse(c, "markets retrieved", []string{"a", "b"}, 2)
	}, nil)

	resp := decode(t, w)
	assert.True(t, resp.Success)
	meta, ok := resp.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, meta["count"])
}

func TestValidationErrorResponse(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		ValidationErrorResponse(c, map[string]string{"question": "must not be blank"})
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", models.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", models.ErrUnauthorized, http.StatusForbidden, "FORBIDDEN"},
		{"insufficient balance", models.ErrInsufficientBalance, http.StatusPaymentRequired, "INSUFFICIENT_BALANCE"},
		{"velocity limit", models.ErrVelocityLimitExceeded, http.StatusTooManyRequests, "VELOCITY_LIMIT"},
		{"already resolved", models.ErrMarketAlreadyResolved, http.StatusConflict, "CONFLICT"},
		{"not winner", models.ErrNotWinner, http.StatusConflict, "CONFLICT"},
		{"bet too small", models.ErrBetTooSmall, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(func(c *gin.Context) {
				DomainErrorResponse(c, tt.err)
			}, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestDomainErrorResponse_HidesInternalDetail(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		DomainErrorResponse(c, errors.New("pq: connection refused"))
	}, nil)

	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "something went wrong", resp.Error.Message)
}

func TestRequireAccount(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     bool
	}{
		{"valid id", id.String(), http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"malformed id", "not-a-uuid", http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID uuid.UUID
			var gotOK bool

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.GET("/", RequireAccount(), func(c *gin.Context) {
				gotID, gotOK = AccountID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAccountID, tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantID, gotOK)
			if tt.wantID {
				assert.Equal(t, id, gotID)
			}
		})
	}
}

func TestCorsMiddleware_Preflight(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(CorsMiddleware())
	r.OPTIONS("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
