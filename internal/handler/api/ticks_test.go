package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"PriceFeed/internal/domain/models"
	"PriceFeed/internal/domain/repository/mocks"
	"PriceFeed/internal/service/symbols"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTicksLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockTickCache(ctrl)
	cache.EXPECT().Latest(gomock.Any(), []string{"BTCUSD", "ETHUSD"}).
		Return(map[string]models.Tick{"BTCUSD": {Symbol: "BTCUSD", Mid: 50000}}, nil)

	rec := serve(t, NewTicksHandler(nil, cache, nil, nil), httptest.NewRequest(http.MethodGet, "/api/ticks/latest?symbols=BTCUSD,ETHUSD", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]interface{})
	require.Contains(t, data, "BTCUSD")
	require.NotContains(t, data, "ETHUSD")
}

func TestTicksLatestNormalizesSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockTickCache(ctrl)
	cache.EXPECT().Latest(gomock.Any(), []string{"BTCUSD", "ETHUSD"}).
		Return(map[string]models.Tick{"BTCUSD": {Symbol: "BTCUSD", Mid: 50000}}, nil)

	h := NewTicksHandler(nil, cache, symbols.NewResolver(), nil)
	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/ticks/latest?symbols=BTC/USD,ETHUSD", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]interface{})
	require.Contains(t, data, "BTCUSD")
}

func TestTicksHistoryNormalizesSymbol(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTickStore(ctrl)
	h := NewTicksHandler(store, nil, symbols.NewResolver(), nil)
	h.now = func() time.Time { return now }

	store.EXPECT().History(gomock.Any(), "ETHUSD", now.Add(-24*time.Hour), now, 500).
		Return([]models.Tick{{Symbol: "ETHUSD", Mid: 3000}}, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/ticks/history?symbol=ETH/USD", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTicksLatestRequiresSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := serve(t, NewTicksHandler(nil, mocks.NewMockTickCache(ctrl), nil, nil), httptest.NewRequest(http.MethodGet, "/api/ticks/latest", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTicksLatestWithoutCache(t *testing.T) {
	rec := serve(t, NewTicksHandler(nil, nil, nil, nil), httptest.NewRequest(http.MethodGet, "/api/ticks/latest?symbols=BTCUSD", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTicksHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTickStore(ctrl)
	h := NewTicksHandler(store, nil, nil, nil)
	h.now = func() time.Time { return now }

	store.EXPECT().History(gomock.Any(), "BTCUSD", now.Add(-24*time.Hour), now, 500).
		Return([]models.Tick{{Symbol: "BTCUSD", Mid: 1}, {Symbol: "BTCUSD", Mid: 2}}, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/ticks/history?symbol=BTCUSD", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	require.Equal(t, float64(2), data["total"])
}

func TestTicksHistoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTickStore(ctrl)
	h := NewTicksHandler(store, nil, nil, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/ticks/history?symbol=BTCUSD&from=2025-03-14&to=2025-03-13", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/ticks/history?symbol=BTCUSD&limit=20000", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	store.EXPECT().History(gomock.Any(), "BTCUSD", gomock.Any(), gomock.Any(), 10).Return(nil, errors.New("ch down"))
	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/ticks/history?symbol=BTCUSD&limit=10", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTickStore(ctrl)

	store.EXPECT().Health(gomock.Any()).Return(nil)
	rec := serve(t, NewHealthHandler(store), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	store.EXPECT().Health(gomock.Any()).Return(errors.New("down"))
	rec = serve(t, NewHealthHandler(store), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
