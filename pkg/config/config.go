package config

import (
	"fmt"
	"os"
	"time"

	"PriceFeed/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		// Inbound price-feed triggers allowed per remote address.
		RateLimit struct {
			Burst     float64 `yaml:"burst"`
			PerSecond float64 `yaml:"per_second"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`
	Log struct {
		Level   string `yaml:"level"`
		Format  string `yaml:"format"`
		Output  string `yaml:"output"`
		Collect struct {
			Enabled        bool          `yaml:"enabled"`
			Topic          string        `yaml:"topic"`
			Interval       time.Duration `yaml:"interval"`
			CountThreshold int           `yaml:"count_threshold"`
		} `yaml:"collect"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
	Feed struct {
		DefaultSymbols []string      `yaml:"default_symbols"`
		AssetType      string        `yaml:"asset_type"`
		PaceInterval   time.Duration `yaml:"pace_interval"`
		PollInterval   time.Duration `yaml:"poll_interval"`
		SpreadMinPct   float64       `yaml:"spread_min_pct"`
		SpreadMaxPct   float64       `yaml:"spread_max_pct"`
		PersistTimeout time.Duration `yaml:"persist_timeout"`
	} `yaml:"feed"`
	Finnhub struct {
		APIKey    string            `yaml:"api_key"`
		BaseURL   string            `yaml:"base_url"`
		Timeout   time.Duration     `yaml:"timeout"`
		SymbolMap map[string]string `yaml:"symbol_map"`
	} `yaml:"finnhub"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		Table            string        `yaml:"table"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Postgres struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Name     string `yaml:"name"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
		MinConns int    `yaml:"min_conns"`
		MaxConns int    `yaml:"max_conns"`
	} `yaml:"postgres"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	Redis struct {
		Enabled     bool          `yaml:"enabled"`
		Host        string        `yaml:"host"`
		Port        int           `yaml:"port"`
		Password    string        `yaml:"password"`
		DB          int           `yaml:"db"`
		Prefix      string        `yaml:"prefix"`
		LatestTTL   time.Duration `yaml:"latest_ttl"`
		RegistryTTL time.Duration `yaml:"registry_ttl"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes, fills defaults and validates.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv(os.Getenv)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// ApplyEnv overrides fields from the environment. getenv is injected for tests.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := getenv("SYMBOLS"); v != "" {
		c.Feed.DefaultSymbols = util.SplitCSV(v)
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := getenv("CLICKHOUSE_PASSWORD"); v != "" {
		c.ClickHouse.Password = v
	}
	if v := getenv("POSTGRES_HOST"); v != "" {
		c.Postgres.Host = v
	}
	if v := getenv("POSTGRES_PASSWORD"); v != "" {
		c.Postgres.Password = v
	}
	if v := getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = util.SplitCSV(v)
	}
	if v := getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := getenv("SERVER_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if len(c.Feed.DefaultSymbols) == 0 {
		c.Feed.DefaultSymbols = []string{"BTCUSD", "ETHUSD"}
	}
	if c.Feed.AssetType == "" {
		c.Feed.AssetType = "crypto"
	}
	if c.Feed.PaceInterval == 0 {
		c.Feed.PaceInterval = 100 * time.Millisecond
	}
	if c.Feed.SpreadMinPct == 0 && c.Feed.SpreadMaxPct == 0 {
		c.Feed.SpreadMinPct = 0.0002
		c.Feed.SpreadMaxPct = 0.0010
	}
	if c.Feed.PersistTimeout == 0 {
		c.Feed.PersistTimeout = 10 * time.Second
	}
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = 5 * time.Second
	}
	if c.ClickHouse.Table == "" {
		c.ClickHouse.Table = "price_history"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "price.ticks"
	}
	if c.Redis.LatestTTL == 0 {
		c.Redis.LatestTTL = 5 * time.Minute
	}
	if c.Redis.RegistryTTL == 0 {
		c.Redis.RegistryTTL = time.Minute
	}
}

// Validate checks if the configuration is valid.
// A missing Finnhub API key is deliberately not an error here: it is reported per request.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Feed.SpreadMinPct <= 0 {
		return fmt.Errorf("feed.spread_min_pct must be > 0")
	}
	if c.Feed.SpreadMaxPct < c.Feed.SpreadMinPct {
		return fmt.Errorf("feed.spread_max_pct must be >= feed.spread_min_pct")
	}
	if c.Feed.PaceInterval < 0 {
		return fmt.Errorf("feed.pace_interval cannot be negative")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.Log.Collect.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("log.collect requires kafka to be enabled")
	}
	return nil
}
