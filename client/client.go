// Package client provides the HTTP client shared by the metadata fetcher and the downloader.
package client

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ytget/ytinfo/internal/logger"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 1

	userAgentValue   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	initialBackoff   = 200 * time.Millisecond
	maxBackoff       = 3 * time.Second
	successMinCode   = http.StatusOK                  // 200
	retryableMinCode = http.StatusInternalServerError // 500
)

// defaultTransport is a tuned HTTP transport reused across clients.
var defaultTransport = &http.Transport{
	Proxy:                 http.ProxyFromEnvironment,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	ResponseHeaderTimeout: 10 * time.Second,
	ForceAttemptHTTP2:     true,
	// Content-Encoding is negotiated and decoded by the callers.
	DisableCompression: true,
	ReadBufferSize:     16 * 1024,
	WriteBufferSize:    16 * 1024,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
}

// Config holds optional client parameters. Zero values use defaults.
type Config struct {
	Timeout     time.Duration
	MaxAttempts int
	UserAgent   string
	ProxyURL    string
}

// Client wraps http.Client with an opt-in retry policy and default headers.
type Client struct {
	HTTPClient  *http.Client
	MaxAttempts int
	UserAgent   string
}

// New creates a new Client with a tuned Transport, default timeout and a single attempt per request.
func New() *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: defaultTransport,
		},
		MaxAttempts: defaultMaxAttempts,
		UserAgent:   userAgentValue,
	}
}

// NewWith creates a new client with provided config. Zero values use defaults.
func NewWith(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = userAgentValue
	}

	tr := defaultTransport.Clone()
	if cfg.ProxyURL != "" {
		if proxyFunc, err := proxyFromURLString(cfg.ProxyURL); err == nil {
			tr.Proxy = proxyFunc
		} else {
			logger.WithComponent(logger.ComponentClient).Warn("Ignoring invalid proxy URL", map[string]interface{}{
				"proxy": cfg.ProxyURL,
				"error": err.Error(),
			})
		}
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		MaxAttempts: attempts,
		UserAgent:   ua,
	}
}

// Get performs a GET request. Transient failures (HTTP 5xx or network errors) are retried
// with exponential backoff up to MaxAttempts. The response of the last attempt is returned
// with its body open, whatever its status; the caller must close it.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) (*http.Response, error) {
	log := logger.WithComponent(logger.ComponentClient)

	attempts := c.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	ua := c.UserAgent
	if ua == "" {
		ua = userAgentValue
	}

	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		for k, values := range header {
			for _, v := range values {
				req.Header.Add(k, v)
			}
		}
		req.Header.Set("User-Agent", ua)

		resp, err := c.HTTPClient.Do(req)
		retryable := err != nil || resp.StatusCode >= retryableMinCode
		if !retryable || attempt >= attempts {
			if err == nil {
				log.Debug("GET completed", map[string]interface{}{
					"url":     rawURL,
					"status":  resp.StatusCode,
					"attempt": attempt,
				})
			}
			return resp, err
		}

		fields := map[string]interface{}{"url": rawURL, "attempt": attempt, "backoff": backoff.String()}
		if err != nil {
			fields["error"] = err.Error()
		} else {
			fields["status"] = resp.StatusCode
			_ = resp.Body.Close()
		}
		log.Warn("Retrying GET", fields)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// IsSuccess reports whether the status code is 2xx.
func IsSuccess(code int) bool {
	return code >= successMinCode && code < http.StatusMultipleChoices
}

// proxyFromURLString parses a proxy URL and returns a Proxy function.
func proxyFromURLString(raw string) (func(*http.Request) (*url.URL, error), error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return http.ProxyURL(u), nil
}
