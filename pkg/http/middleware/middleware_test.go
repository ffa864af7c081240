package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCORSPreflight(t *testing.T) {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins:    []string{"*"},
		AllowMethods:    []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"authorization", "content-type"},
		PreflightStatus: http.StatusOK,
	}))
	e.POST("/x", func(c echo.Context) error { return c.String(http.StatusOK, "body") })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Equal(t, "authorization, content-type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestCORSSpecificOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS(CORSConfig{AllowOrigins: []string{"https://a.example"}}))
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(echo.HeaderOrigin, "https://b.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req.Header.Set(echo.HeaderOrigin, "https://a.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, "https://a.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRecoverWithBody(t *testing.T) {
	e := echo.New()
	body := map[string]interface{}{"error": "boom handled"}
	e.GET("/panic", func(c echo.Context) error { panic("boom") }, RecoverWithBody(nil, body))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"boom handled"}`, rec.Body.String())
}

func TestMetricsPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Metrics(nil, 0))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusTeapot, "tea") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "tea", rec.Body.String())
}
