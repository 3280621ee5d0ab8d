package config

import "time"

// RateLimitConfig controls the fixed-window request limiter. A
// disabled limiter or a nil Redis client turns the middleware into a
// pass-through.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // max requests per window
	Window  time.Duration // window length
	Prefix  string        // Redis key namespace
}

// LoadRateLimitConfig reads the limiter settings from the
// environment, clamping values to sane minimums.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   getenvInt("RATE_LIMIT_LIMIT", 120),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window < time.Second {
		cfg.Window = time.Minute
	}
	return cfg
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
