package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"PriceFeed/internal/domain/models"
	"PriceFeed/internal/service/ratelimit"
	"PriceFeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context, requested []string) (*models.BatchResult, error)

func (f runnerFunc) Run(ctx context.Context, requested []string) (*models.BatchResult, error) {
	return f(ctx, requested)
}

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func serve(t *testing.T, h interface{ RegisterRoutes(*echo.Echo) }, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func okResult() *models.BatchResult {
	res := models.NewBatchResult()
	res.Ticks["BTCUSD"] = models.Tick{Symbol: "BTCUSD", Bid: 49990, Ask: 50010, Mid: 50000, Volatility: 2.4, Regime: models.RegimeHighVol, Timestamp: now}
	res.Errors["XYZ"] = usecase.ReasonUnknownSymbol
	res.Source = models.SourceFinnhub
	res.Timestamp = now
	return res
}

func TestPriceFeedOK(t *testing.T) {
	var got []string
	h := NewPriceFeedHandler(runnerFunc(func(_ context.Context, s []string) (*models.BatchResult, error) {
		got = s
		return okResult(), nil
	}), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/price-feed", strings.NewReader(`{"symbols":["BTC/USD","XYZ"]}`))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"BTC/USD", "XYZ"}, got)

	body := decode(t, rec)
	require.Equal(t, false, body["shouldPauseTrading"])
	require.Equal(t, "finnhub", body["source"])
	require.Equal(t, "2025-03-14T09:30:00Z", body["timestamp"])
	require.Equal(t, map[string]interface{}{"XYZ": "Unknown symbol"}, body["errors"])
	tick := body["ticks"].(map[string]interface{})["BTCUSD"].(map[string]interface{})
	require.Equal(t, "high_vol", tick["regime"])
}

func TestPriceFeedOmitsEmptyErrors(t *testing.T) {
	h := NewPriceFeedHandler(runnerFunc(func(context.Context, []string) (*models.BatchResult, error) {
		res := okResult()
		res.Errors = map[string]string{}
		return res, nil
	}), nil, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/price-feed", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, decode(t, rec), "errors")
}

func TestPriceFeedMalformedBodyUsesDefaults(t *testing.T) {
	called := false
	h := NewPriceFeedHandler(runnerFunc(func(_ context.Context, s []string) (*models.BatchResult, error) {
		called = true
		require.Empty(t, s)
		return okResult(), nil
	}), nil, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/price-feed", strings.NewReader(`{not json`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestPriceFeedNoData(t *testing.T) {
	h := NewPriceFeedHandler(runnerFunc(func(context.Context, []string) (*models.BatchResult, error) {
		res := models.NewBatchResult()
		res.Errors["BTCUSD"] = usecase.ReasonFetchFailed
		res.PauseTrading = true
		res.Source = models.SourceNoData
		res.Timestamp = now
		return res, nil
	}), nil, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/price-feed", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode(t, rec)
	require.Equal(t, true, body["shouldPauseTrading"])
	require.Equal(t, "NO_DATA", body["source"])
	require.Equal(t, "Failed to fetch any quotes", body["error"])
	require.Equal(t, map[string]interface{}{}, body["ticks"])
	require.Equal(t, map[string]interface{}{"BTCUSD": "Failed to fetch quote"}, body["errors"])
}

func TestPriceFeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		run     runnerFunc
		wantErr string
	}{
		{
			name:    "missing api key",
			run:     func(context.Context, []string) (*models.BatchResult, error) { return nil, usecase.ErrAPIKeyMissing },
			wantErr: "API key not configured",
		},
		{
			name:    "unexpected error",
			run:     func(context.Context, []string) (*models.BatchResult, error) { return nil, errors.New("boom") },
			wantErr: "Internal server error",
		},
		{
			name:    "panic",
			run:     func(context.Context, []string) (*models.BatchResult, error) { panic("nil map") },
			wantErr: "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, NewPriceFeedHandler(tt.run, nil, nil), httptest.NewRequest(http.MethodPost, "/api/price-feed", nil))
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decode(t, rec)
			require.Equal(t, tt.wantErr, body["error"])
			require.Equal(t, true, body["shouldPauseTrading"])
		})
	}
}

func TestPriceFeedValidation(t *testing.T) {
	h := NewPriceFeedHandler(runnerFunc(func(context.Context, []string) (*models.BatchResult, error) {
		t.Fatal("must not run")
		return nil, nil
	}), nil, nil)

	symbols := make([]string, 51)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("\"S%d\"", i)
	}
	tooMany := `{"symbols":[` + strings.Join(symbols, ",") + `]}`

	for _, body := range []string{tooMany, `{"symbols":[""]}`, `{"symbols":["` + strings.Repeat("A", 33) + `"]}`} {
		rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/price-feed", strings.NewReader(body)))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		got := decode(t, rec)
		require.Equal(t, true, got["shouldPauseTrading"])
		require.Equal(t, "Invalid request", got["error"])
		require.NotEmpty(t, got["details"])
	}
}

func TestPriceFeedRateLimited(t *testing.T) {
	h := NewPriceFeedHandler(runnerFunc(func(context.Context, []string) (*models.BatchResult, error) {
		return okResult(), nil
	}), ratelimit.New(1, 0.001), nil)

	e := echo.New()
	h.RegisterRoutes(e)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/price-feed", nil))
		codes = append(codes, rec.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
