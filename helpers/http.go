package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// HTTPResponse is the raw outcome of an outbound call, whatever its status.
type HTTPResponse struct {
	StatusCode int
	Status     string
	Body       []byte
}

// DoHTTPRequest sends one request with a JSON body (when body is non-nil) and
// returns the status and body without judging the status code. Only transport
// and encoding problems are errors.
func DoHTTPRequest(
	ctx context.Context,
	client *http.Client,
	logger *slog.Logger,
	method string,
	fullURL string,
	headers map[string]string,
	body interface{},
) (*HTTPResponse, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil && headers["Content-Type"] == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("HTTP Request", "method", method, "url", fullURL, "status", resp.StatusCode, "body", string(respBytes))
	}

	return &HTTPResponse{StatusCode: resp.StatusCode, Status: resp.Status, Body: respBytes}, nil
}

// MakeHTTPRequest sends a request and decodes a 2xx JSON response into T.
// Any other status is returned as *HTTPError.
func MakeHTTPRequest[T any](
	ctx context.Context,
	client *http.Client,
	logger *slog.Logger,
	method string,
	fullURL string,
	headers map[string]string,
	body interface{},
) (T, error) {
	var result T

	resp, err := DoHTTPRequest(ctx, client, logger, method, fullURL, headers, body)
	if err != nil {
		return result, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(resp.Body)}
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return result, fmt.Errorf("decode response: %w", err)
	}

	return result, nil
}

type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = strconv.Itoa(e.StatusCode)
	}
	return status + ": " + e.Body
}

// NewHTTPClient returns a client with the given timeout (zero means none).
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// BearerClient wraps base so every request carries "Authorization: Bearer <token>".
func BearerClient(base *http.Client, token string) *http.Client {
	if base == nil {
		base = &http.Client{}
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   base.Transport,
		},
		Timeout: base.Timeout,
	}
}
