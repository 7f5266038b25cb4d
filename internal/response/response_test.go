package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(handler func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, "done", gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.NotContains(t, body, "meta")
	assert.NotContains(t, body, "error")
}

func TestList(t *testing.T) {
	w := record(func(c *gin.Context) {
		List(c, "listed", Meta{Page: 2, Limit: 10, Total: 42}, []string{"a"})
	})

	body := decode(t, w)
	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, meta["page"])
	assert.EqualValues(t, 10, meta["limit"])
	assert.EqualValues(t, 42, meta["total"])
}

func TestErrorWithApiError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := record(func(c *gin.Context) {
		Error(c, logger, NotFound("product not found"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "product not found", body["message"])
}

func TestErrorWithWrappedApiError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	wrapped := fmt.Errorf("handling request: %w", Conflict("slug taken"))

	w := record(func(c *gin.Context) {
		Error(c, logger, wrapped)
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slug taken", decode(t, w)["message"])
}

func TestErrorWithUnknownError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := record(func(c *gin.Context) {
		Error(c, logger, errors.New("disk on fire"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Something went wrong", body["message"])
}
