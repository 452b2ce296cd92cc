//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"foodshare/internal/handler/httperr"
	"foodshare/internal/handler/middleware"
	"foodshare/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestErrorHandlerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Use(middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/private", func(c *gin.Context) { _ = c.Error(errors.New("hidden detail")) })
	r.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("dup"), "Request already accepted", nil)
	})

	httptest.ExpectError(t, httptest.Call(t, r, http.MethodGet, "/panic", nil, ""),
		http.StatusInternalServerError, "Server error")
	httptest.ExpectError(t, httptest.Call(t, r, http.MethodGet, "/private", nil, ""),
		http.StatusInternalServerError, "Server error")
	httptest.ExpectError(t, httptest.Call(t, r, http.MethodGet, "/public", nil, ""),
		http.StatusConflict, "Request already accepted")
}
