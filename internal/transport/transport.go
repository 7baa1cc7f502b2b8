// Package transport wraps outbound HTTPS calls to the Service Layer. It
// normalizes every exchange into a Response or a NetworkError and exposes an
// observability hook so callers can log traffic without the adapter owning a
// logger.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
)

// Response is a normalized HTTP response.
type Response struct {
	Status  int
	Headers http.Header
	Body    []byte
	Cookies []*http.Cookie
}

// Event captures one request/response pair for the observability hook. Body
// fields hold what went over the wire; the hook is responsible for redaction
// before logging.
type Event struct {
	Method      string
	URL         string
	RequestBody []byte
	Status      int
	Body        []byte
	Duration    time.Duration
	Err         error
}

// Hook receives every completed exchange, including failed ones.
type Hook func(Event)

// Adapter issues HTTP requests with a fixed per-call timeout. One adapter is
// shared by all Service Layer calls of a single operation.
type Adapter struct {
	httpClient *http.Client
	hook       Hook
}

// New creates an adapter. When verifyTLS is false the adapter accepts any
// server certificate; self-signed Service Layer deployments require this.
func New(verifyTLS bool) *Adapter {
	return &Adapter{
		httpClient: &http.Client{
			Timeout: time.Duration(constants.DefaultTimeout) * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !verifyTLS},
			},
		},
	}
}

// SetHook installs the observability hook. A nil hook disables capture.
func (a *Adapter) SetHook(h Hook) {
	a.hook = h
}

// Do executes a single request. Headers and cookies are applied as given; no
// retries, no redirect handling beyond net/http defaults. A transport-level
// failure returns *errs.NetworkError.
func (a *Adapter) Do(ctx context.Context, method, url string, headers map[string]string, cookies []*http.Cookie, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(constants.UserAgent, constants.DefaultUserAgent)
	req.Header.Set(constants.Accept, constants.ContentTypeJSON)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		netErr := &errs.NetworkError{Op: method + " " + url, Err: err}
		a.emit(Event{Method: method, URL: url, RequestBody: body, Duration: time.Since(start), Err: netErr})
		return nil, netErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := &errs.NetworkError{Op: method + " " + url, Err: err}
		a.emit(Event{Method: method, URL: url, RequestBody: body, Status: resp.StatusCode, Duration: time.Since(start), Err: netErr})
		return nil, netErr
	}

	out := &Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    respBody,
		Cookies: resp.Cookies(),
	}
	a.emit(Event{
		Method:      method,
		URL:         url,
		RequestBody: body,
		Status:      resp.StatusCode,
		Body:        respBody,
		Duration:    time.Since(start),
	})
	return out, nil
}

func (a *Adapter) emit(ev Event) {
	if a.hook != nil {
		a.hook(ev)
	}
}
