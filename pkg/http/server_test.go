package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
}

func TestServerPreflightOnRegisteredRoute(t *testing.T) {
	s := NewServer([]Handler{pingHandler{}}, WithMetrics(false))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Equal(t, "Authorization, x-client-info, apikey, Content-Type",
		rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestServerRoutesRequests(t *testing.T) {
	s := NewServer([]Handler{pingHandler{}, nil}, WithMetrics(false))

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pong", rec.Body.String())
}
