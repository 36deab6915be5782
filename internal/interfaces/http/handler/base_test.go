package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleDomainError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("not found maps to 404", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.HandleDomainError(c, shared.ErrNotFound)
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("invalid state maps to 422", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.HandleDomainError(c, shared.ErrInvalidState)
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidState, decodeResponse(t, w).Error.Code)
	})

	t.Run("invalid selection maps to 422", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.HandleDomainError(c, shared.ErrInvalidSelection)
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidSelection, decodeResponse(t, w).Error.Code)
	})

	t.Run("wrapped domain errors are unwrapped", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.HandleDomainError(c, fmt.Errorf("loading batch: %w", shared.ErrNotFound))
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.HandleDomainError(c, fmt.Errorf("connection reset"))
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, decodeResponse(t, w).Error.Code)
	})
}

func TestSuccessResponses(t *testing.T) {
	h := &BaseHandler{}

	t.Run("success wraps data", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.Success(c, gin.H{"name": "Shea Butter"})
		})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
	})

	t.Run("created returns 201", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.Created(c, gin.H{"id": "x"})
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("no content returns empty 204", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			h.NoContent(c)
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("paginated carries meta", func(t *testing.T) {
		w := performRequest(func(c *gin.Context) {
			result := shared.NewPaginated([]string{"a", "b"}, 12, 1, 2)
			Paginated(c, &result)
		})

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(12), resp.Meta.Total)
		assert.Equal(t, 6, resp.Meta.TotalPages)
	})
}
