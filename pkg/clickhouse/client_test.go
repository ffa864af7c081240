package clickhouse

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name      string
		cfg       ClientConfig
		wantHost  string
		wantPath  string
		wantQuery map[string]string
		scheme    string
	}{
		{
			name:     "native minimal",
			cfg:      ClientConfig{Host: "ch", Port: 9000, Database: "pricefeed", User: "default"},
			scheme:   "clickhouse",
			wantHost: "ch:9000",
			wantPath: "/pricefeed",
		},
		{
			name: "http with async insert",
			cfg: ClientConfig{
				Host: "ch", Port: 8123, Database: "db", User: "u", Password: "p@ss/word",
				UseHTTP: true, AsyncInsert: true, WaitForAsync: true,
				DialTimeout: 5 * time.Second, MaxExecTime: 30 * time.Second,
			},
			scheme:   "http",
			wantHost: "ch:8123",
			wantPath: "/db",
			wantQuery: map[string]string{
				"async_insert":          "1",
				"wait_for_async_insert": "1",
				"dial_timeout":          "5s",
				"max_execution_time":    "30",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(buildDSN(tt.cfg))
			require.NoError(t, err)
			require.Equal(t, tt.scheme, u.Scheme)
			require.Equal(t, tt.wantHost, u.Host)
			require.Equal(t, tt.wantPath, u.Path)
			require.Equal(t, tt.cfg.User, u.User.Username())
			pw, _ := u.User.Password()
			require.Equal(t, tt.cfg.Password, pw)
			for k, v := range tt.wantQuery {
				require.Equal(t, v, u.Query().Get(k), k)
			}
			if !tt.cfg.AsyncInsert {
				require.Empty(t, u.Query().Get("async_insert"))
			}
		})
	}
}

func TestNewClientRequiresHost(t *testing.T) {
	_, err := NewClient(context.Background())
	require.Error(t, err)
}
