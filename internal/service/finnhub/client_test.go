package finnhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestQuoteSuccess(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quote", r.URL.Path)
		require.Equal(t, "BINANCE:BTCUSDT", r.URL.Query().Get("symbol"))
		require.Equal(t, "secret", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"c":50000,"d":980,"dp":2.0,"h":51000,"l":49000,"o":49500,"pc":49020,"t":1700000000}`))
	})

	c := New("secret", WithBaseURL(srv.URL+"/"))
	q, err := c.Quote(context.Background(), "BINANCE:BTCUSDT")
	require.NoError(t, err)
	require.Equal(t, 50000.0, q.Current)
	require.Equal(t, 2.0, q.PercentChange)
	require.Equal(t, 51000.0, q.High)
	require.Equal(t, 49000.0, q.Low)
	require.Equal(t, int64(1700000000), q.Timestamp)
}

func TestQuoteFailures(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantKind ErrorKind
	}{
		{
			name: "zero price is empty data",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"c":0,"d":null,"dp":null,"h":0,"l":0,"o":0,"pc":0,"t":0}`))
			},
			wantKind: KindEmptyData,
		},
		{
			name: "non-2xx is http error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantKind: KindHTTP,
		},
		{
			name: "garbage body is transport error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantKind: KindTransport,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.handler)
			q, err := New("k", WithBaseURL(srv.URL)).Quote(context.Background(), "X")
			require.Nil(t, q)
			require.Error(t, err)
			require.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestQuoteHTTPErrorCarriesStatus(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	_, err := New("k", WithBaseURL(srv.URL)).Quote(context.Background(), "X")

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, http.StatusForbidden, fe.Status)
}

func TestQuoteHonoursPerCallDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	c := New("k", WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := c.Quote(context.Background(), "X")
	require.Equal(t, KindTransport, KindOf(err))
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestConfigured(t *testing.T) {
	require.False(t, New("").Configured())
	require.True(t, New("k").Configured())
}
