package restclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"protrack-service/internal/app/config"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Client is the single HTTP abstraction in front of the protocol backend.
// It injects the bearer token, throttles outbound calls, and translates
// transport and status failures into the service error taxonomy, so resource
// clients carry no per-call boilerplate.
type Client struct {
	BaseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(backendConfig config.Backend) *Client {
	rps := backendConfig.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		BaseUrl: backendConfig.BaseUrl,
		httpClient: &http.Client{
			Timeout: time.Duration(backendConfig.RequestTimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type backendError struct {
	Message string `json:"message"`
}

func (c *Client) GetJSON(ctx context.Context, token, path, resource string, out interface{}) error {
	return c.doJSON(ctx, constvars.MethodGet, token, path, resource, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, token, path, resource string, body, out interface{}) error {
	return c.doJSON(ctx, constvars.MethodPost, token, path, resource, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, token, path, resource string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	// Some read endpoints tolerate anonymous access; the header is only sent
	// when the caller actually has a token.
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrBackendResourceNotFound(fmt.Errorf("%s %s", method, path), resource)
	}
	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return exceptions.ErrBackendRejectedRequest(readErr, resource)
		}

		var backendErr backendError
		if err := json.Unmarshal(bodyBytes, &backendErr); err == nil && backendErr.Message != "" {
			return exceptions.ErrBackendRejectedRequest(fmt.Errorf("%s", backendErr.Message), resource)
		}
		return exceptions.ErrBackendRejectedRequest(fmt.Errorf("unexpected status %d", resp.StatusCode), resource)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeBackendResponse(err, resource)
	}
	return nil
}
