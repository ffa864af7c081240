package http

import (
	"time"

	xutil "PriceFeed/pkg/util"
)

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time { return xutil.ParseTimeDefault(s, def) }
