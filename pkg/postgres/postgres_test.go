package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestBuildConnString(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "defaults",
			cfg:  Config{Host: "db", User: "feed", Password: "pw", Name: "pricefeed"},
			want: "postgres://feed:pw@db:5432/pricefeed?sslmode=prefer",
		},
		{
			name: "special characters in password",
			cfg:  Config{Host: "db", Port: 6543, User: "feed", Password: "p@ss:w/rd", Name: "pf", SSLMode: "disable"},
			want: "postgres://feed:p%40ss%3Aw%2Frd@db:6543/pf?sslmode=disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildConnString(tt.cfg)
			require.Equal(t, tt.want, got)

			parsed, err := pgxpool.ParseConfig(got)
			require.NoError(t, err)
			require.Equal(t, tt.cfg.Password, parsed.ConnConfig.Password)
		})
	}
}
