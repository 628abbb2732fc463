package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/andrisk/realhub/internal/common"
)

// HTTPProvider talks to the identity service over HTTP/JSON. The session
// token obtained at login is attached to every subsequent request.
type HTTPProvider struct {
	endpoint *url.URL
	client   *resty.Client
	token    string
}

type apiError struct {
	Message string `json:"message"`
}

type sessionResponse struct {
	Token string `json:"token"`
}

type oauthURLResponse struct {
	URL string `json:"url"`
}

// NewHTTPProvider constructs a provider bound to the given endpoint URL,
// e.g. "http://127.0.0.1:8080". Timeout applies per request.
func NewHTTPProvider(endpoint string, timeout time.Duration) (*HTTPProvider, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid provider endpoint: %w", err)
	}

	c := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout)

	return &HTTPProvider{endpoint: u, client: c}, nil
}

func (p *HTTPProvider) request(ctx context.Context) *resty.Request {
	r := p.client.R().SetContext(ctx).SetError(&apiError{})
	if p.token != "" {
		r.SetHeader(common.SessionTokenHeaderName, p.token)
	}
	return r
}

// mapError translates transport and HTTP failures into the package's error
// taxonomy. A nil response means the request never reached the server.
func (p *HTTPProvider) mapError(resp *resty.Response, err error) error {
	if err != nil {
		// resty wraps transport failures in *url.Error; anything without an
		// HTTP response is the unreachable condition.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp == nil || !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrNotAuthenticated
	}
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Message != "" {
		return fmt.Errorf("provider error: %s", apiErr.Message)
	}
	return fmt.Errorf("provider error: %s", resp.Status())
}

func (p *HTTPProvider) CurrentAccount(ctx context.Context) (*Account, error) {
	var acc Account
	resp, err := p.request(ctx).SetResult(&acc).Get("/v1/account")
	if err := p.mapError(resp, err); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (p *HTTPProvider) CreateEmailSession(ctx context.Context, email, password string) error {
	var session sessionResponse
	resp, err := p.request(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post("/v1/sessions/email")
	if err := p.mapError(resp, err); err != nil {
		return err
	}
	p.token = session.Token
	return nil
}

func (p *HTTPProvider) CreateAccount(ctx context.Context, email, password, name string) (*Account, error) {
	var acc Account
	resp, err := p.request(ctx).
		SetBody(map[string]string{"email": email, "password": password, "name": name}).
		SetResult(&acc).
		Post("/v1/accounts")
	if err := p.mapError(resp, err); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (p *HTTPProvider) DeleteCurrentSession(ctx context.Context) error {
	resp, err := p.request(ctx).Delete("/v1/sessions/current")
	if err := p.mapError(resp, err); err != nil {
		return err
	}
	p.token = ""
	return nil
}

func (p *HTTPProvider) GoogleOAuthURL(ctx context.Context) (string, error) {
	var r oauthURLResponse
	resp, err := p.request(ctx).SetResult(&r).Get("/v1/sessions/oauth2/google")
	if err := p.mapError(resp, err); err != nil {
		return "", err
	}
	return r.URL, nil
}

// Host returns the provider's hostname for user-facing messages.
func (p *HTTPProvider) Host() string {
	return p.endpoint.Hostname()
}

func (p *HTTPProvider) Close() error {
	return nil
}
