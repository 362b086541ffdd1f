// Package fetch downloads blueprint documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// MaxBodySize caps the number of bytes read from a response.
const MaxBodySize = 10 << 20

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// New returns a Fetcher using client. A zero timeout means no deadline
// beyond the caller's context.
func New(client *http.Client, timeout time.Duration) *Fetcher {
	if client == nil {
		client = NewHTTPClient(nil)
	}
	return &Fetcher{client: client, timeout: timeout}
}

// Fetch performs a single GET and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if len(body) > MaxBodySize {
		return nil, errors.Errorf("response body exceeds %d bytes", MaxBodySize)
	}
	return body, nil
}
