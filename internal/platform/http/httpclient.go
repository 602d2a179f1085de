package http

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"
)

// DefaultTimeout bounds a whole request when HTTP_TIMEOUT is unset.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient creates the client used for provider calls.
//
// Settings:
//   - Proxy: honours HTTP_PROXY / HTTPS_PROXY / NO_PROXY
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns / IdleConnTimeout: keep-alive pool for repeated fetches
//   - TLSHandshakeTimeout: upper bound for the HTTPS handshake
//   - Client.Timeout: whole-request timeout passed by the caller
//
// http.DefaultClient has no timeout, so provider clients never use it.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// LoadTimeout reads HTTP_TIMEOUT as a Go duration ("15s", "1m").
// Unset or invalid values fall back to DefaultTimeout.
func LoadTimeout() time.Duration {
	v := os.Getenv("HTTP_TIMEOUT")
	if v == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid HTTP_TIMEOUT, using default", "value", v, "default", DefaultTimeout)
		return DefaultTimeout
	}
	return d
}
