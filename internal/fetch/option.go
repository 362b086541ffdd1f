package fetch

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/henvic/httpretty"
	"go.uber.org/zap"
)

type Option func(http.RoundTripper) http.RoundTripper

func WithUserAgent(version string) Option {
	return func(rt http.RoundTripper) http.RoundTripper {
		return funcTripper(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get("User-Agent") == "" {
				r.Header.Set("User-Agent", fmt.Sprintf("blueprints/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH))
			}
			return rt.RoundTrip(r)
		})
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(rt http.RoundTripper) http.RoundTripper {
		return funcTripper(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			log.Debug(
				"send a request",
				zap.String("url", r.URL.String()),
				zap.String("method", r.Method),
			)
			resp, err := rt.RoundTrip(r)
			if resp != nil {
				log.Debug(
					"received a response",
					zap.Int("status", resp.StatusCode),
					zap.Duration("latency", time.Since(start)),
				)
			}
			return resp, err
		})
	}
}

// WithHTTPLog dumps requests and responses to out.
func WithHTTPLog(out io.Writer, colors bool) Option {
	logger := &httpretty.Logger{
		Time:            true,
		TLS:             false,
		Colors:          colors,
		RequestHeader:   true,
		RequestBody:     false,
		ResponseHeader:  true,
		ResponseBody:    true,
		Formatters:      []httpretty.Formatter{&httpretty.JSONFormatter{}},
		MaxResponseBody: 50000,
	}
	logger.SetOutput(out)
	return logger.RoundTripper
}

func NewHTTPClient(client *http.Client, opts ...Option) *http.Client {
	if client == nil {
		client = &http.Client{
			Transport: http.DefaultTransport,
		}
	}
	for _, o := range opts {
		client.Transport = o(client.Transport)
	}
	return client
}

type funcTripper func(*http.Request) (*http.Response, error)

func (f funcTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
