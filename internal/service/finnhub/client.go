package finnhub

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"PriceFeed/internal/domain/models"
	drepo "PriceFeed/internal/domain/repository"
	xhttp "PriceFeed/pkg/http"
	applogger "PriceFeed/pkg/logger"
)

const DefaultBaseURL = "https://finnhub.io/api/v1"

// ErrorKind qualifies a failed quote fetch.
type ErrorKind string

const (
	KindHTTP      ErrorKind = "http_error"
	KindEmptyData ErrorKind = "empty_data"
	KindTransport ErrorKind = "transport_error"
)

// FetchError is returned for every failed Quote call.
type FetchError struct {
	Kind   ErrorKind
	Symbol string
	Status int // set for KindHTTP
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("finnhub %s: http status %d", e.Symbol, e.Status)
	case KindEmptyData:
		return fmt.Sprintf("finnhub %s: no data", e.Symbol)
	default:
		return fmt.Sprintf("finnhub %s: %v", e.Symbol, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf extracts the fetch error kind, or "" when err is not a *FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// Client fetches single quotes from the Finnhub REST API. It never retries.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    *xhttp.Client
	l       *applogger.Logger
}

// Option configures Client.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout sets the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHTTPClient(hc *xhttp.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *applogger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.l = l
		}
	}
}

// New creates a quote client. An empty apiKey yields a client whose Configured is false.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: 5 * time.Second,
		l:       applogger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient(xhttp.WithTimeout(c.timeout))
	}
	return c
}

func (c *Client) Configured() bool { return c.apiKey != "" }

// Quote performs GET {base}/quote?symbol=..&token=.. under its own deadline.
// A body with a non-positive current price is KindEmptyData.
func (c *Client) Quote(ctx context.Context, providerSymbol string) (*models.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var q models.Quote
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/quote",
		QueryParams: map[string][]string{
			"symbol": {providerSymbol},
			"token":  {c.apiKey},
		},
	}, &q)
	if err != nil {
		fe := classify(providerSymbol, err)
		c.l.Warn("finnhub quote failed",
			applogger.String("symbol", providerSymbol),
			applogger.String("kind", string(fe.Kind)),
			applogger.Int("status", fe.Status),
			applogger.Error(err),
		)
		return nil, fe
	}

	if !q.HasData() {
		c.l.Warn("finnhub returned no data", applogger.String("symbol", providerSymbol))
		return nil, &FetchError{Kind: KindEmptyData, Symbol: providerSymbol}
	}

	return &q, nil
}

func classify(symbol string, err error) *FetchError {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return &FetchError{Kind: KindHTTP, Symbol: symbol, Status: se.StatusCode, Err: err}
	}
	return &FetchError{Kind: KindTransport, Symbol: symbol, Err: err}
}

var _ drepo.QuoteSource = (*Client)(nil)
