package highrise

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/s0up4200/highton/record"
)

const maxBodySize = 10 * 1024 * 1024 // 10MB

// ResponseKind tells what a successful call produced.
type ResponseKind int

const (
	// KindEntity means the body was decoded into Record.
	KindEntity ResponseKind = iota + 1
	// KindNoContent means the call was acknowledged with a blank body.
	KindNoContent
)

// String returns the string representation of a ResponseKind
func (k ResponseKind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindNoContent:
		return "no-content"
	default:
		return "unknown"
	}
}

// Response is the outcome of one successful HTTP call.
type Response struct {
	Kind       ResponseKind
	StatusCode int
	Record     *record.Node
}

type request struct {
	method   string
	endpoint string
	params   url.Values
	body     *record.Node
}

// transport performs exactly one HTTP call per do.
type transport struct {
	baseURL    *url.URL
	apiKey     string
	password   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

func (t *transport) url(endpoint string, params url.Values) string {
	u := t.baseURL.JoinPath(endpoint + ".xml")
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

func (t *transport) do(ctx context.Context, req *request) (*Response, error) {
	var body io.Reader
	if req.body != nil {
		data, err := record.Encode(req.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s body: %w", req.endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, t.url(req.endpoint, req.params), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.SetBasicAuth(t.apiKey, t.password)
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", "application/xml")
	httpReq.Header.Set("Content-Type", "application/xml")
	httpReq.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", maxBodySize)
	}

	t.logger.Debug().
		Str("method", req.method).
		Str("endpoint", req.endpoint).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Highrise request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   req.endpoint,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(data),
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &Response{Kind: KindNoContent, StatusCode: resp.StatusCode}, nil
	}

	node, err := record.Decode(data)
	if err != nil {
		return nil, &ParseError{Endpoint: req.endpoint, Err: err}
	}

	return &Response{Kind: KindEntity, StatusCode: resp.StatusCode, Record: node}, nil
}
