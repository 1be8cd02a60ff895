package authlink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/samvad-hq/authlink-go/pkg/httpclient"
)

const formContentType = "application/x-www-form-urlencoded"

// requestOptions is built fresh for every call and never shared.
type requestOptions struct {
	// JSON takes precedence over Form when both are set.
	JSON   any
	Form   url.Values
	Header map[string]string
	Query  url.Values
}

// request sends one call to base URL + path and unwraps the response.
func (c *Client) request(ctx context.Context, method, path string, opts requestOptions) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	header := http.Header{}
	var body []byte
	switch {
	case opts.JSON != nil:
		raw, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode json body: %w", err)
		}
		body = raw
		header.Set("Content-Type", jsonContentType)
	case opts.Form != nil:
		body = []byte(opts.Form.Encode())
		header.Set("Content-Type", formContentType)
	}
	for key, value := range opts.Header {
		header.Set(key, value)
	}

	var query url.Values
	if len(opts.Query) > 0 {
		query = make(url.Values, len(opts.Query))
		for key, values := range opts.Query {
			query[key] = append([]string(nil), values...)
		}
	}

	req := &httpclient.Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: header,
		Query:  query,
		Body:   body,
	}

	requestID := uuid.NewString()
	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.log.WarnObj("authlink request failed", "authlink_request", map[string]any{
			"request_id": requestID,
			"method":     method,
			"path":       path,
			"error":      err.Error(),
		})
		return nil, &TransportError{Method: method, URL: req.URL, Err: err}
	}
	c.log.DebugObj("authlink request completed", "authlink_request", map[string]any{
		"request_id": requestID,
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return newResult(resp)
}
