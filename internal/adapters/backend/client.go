// Package backend is the HTTP client for the Backend Authority: the REST API that issues,
// validates and rejects bearer tokens and owns every booking record.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

const (
	defaultValidatePath = "admin/dashboard"
	defaultTokenPath    = "access_token"
	defaultTimeout      = 10 * time.Second
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second

	// errorMessagePath pulls a human-readable message out of an error body.
	errorMessagePath = "message || error || msg"
	maxBodyBytes     = 1 << 20
)

// Options configures Client.
type Options struct {
	BaseURL      string        // Required: absolute URL of the API root
	ValidatePath string        // Optional: token check endpoint, defaults to "admin/dashboard"
	TokenPath    string        // Optional: JMESPath to the token in the login response, defaults to "access_token"
	Timeout      time.Duration // Optional: per call, including retries; defaults to 10s
	MaxRetries   int           // Optional: retries for idempotent calls on 5xx/429/network errors
	RetryWaitMin time.Duration // Optional
	RetryWaitMax time.Duration // Optional
	RateLimit    float64       // Optional: requests per second; 0 disables limiting
	RateBurst    int           // Optional: defaults to 1 when RateLimit is set
	HTTPClient   *http.Client  // Optional: defaults to a cleanhttp pooled client
	Logger       *slog.Logger  // Optional
}

// Client talks to the Backend Authority. It implements ports.CredentialValidator,
// ports.Authenticator and ports.AdminAPI.
type Client struct {
	base         *url.URL
	validatePath string
	tokenPath    string
	timeout      time.Duration
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	limiter      *rate.Limiter
	httpClient   *http.Client
	logger       *slog.Logger
}

var (
	_ ports.CredentialValidator = (*Client)(nil)
	_ ports.Authenticator       = (*Client)(nil)
	_ ports.AdminAPI            = (*Client)(nil)
)

// NewClient creates a backend client.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("backend url must be absolute: %q", opts.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		base:         base,
		validatePath: strings.TrimPrefix(opts.ValidatePath, "/"),
		tokenPath:    opts.TokenPath,
		timeout:      opts.Timeout,
		maxRetries:   opts.MaxRetries,
		retryWaitMin: opts.RetryWaitMin,
		retryWaitMax: opts.RetryWaitMax,
		httpClient:   opts.HTTPClient,
		logger:       opts.Logger,
	}
	if c.validatePath == "" {
		c.validatePath = defaultValidatePath
	}
	if c.tokenPath == "" {
		c.tokenPath = defaultTokenPath
	}
	if _, err := jmespath.Compile(c.tokenPath); err != nil {
		return nil, fmt.Errorf("invalid token path %q: %w", c.tokenPath, err)
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	if c.retryWaitMin <= 0 {
		c.retryWaitMin = defaultRetryWaitMin
	}
	if c.retryWaitMax < c.retryWaitMin {
		c.retryWaitMax = max(defaultRetryWaitMax, c.retryWaitMin)
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	if c.httpClient == nil {
		c.httpClient = cleanhttp.DefaultPooledClient()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("component", "backend_client")
	return c, nil
}

// call describes one request to the backend.
type call struct {
	method string
	path   string
	query  url.Values
	cred   domainauth.Credential
	body   any
	out    any
	// idempotent calls are retried on transient failures.
	idempotent bool
}

// Validate asks the backend whether cred is still accepted.
func (c *Client) Validate(ctx context.Context, cred domainauth.Credential) error {
	if cred.IsZero() {
		return domainauth.ErrNoCredential
	}
	return c.do(ctx, call{method: http.MethodGet, path: c.validatePath, cred: cred, idempotent: true})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email and password for a bearer token.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (domainauth.Credential, error) {
	var body any
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "admin/login",
		body:   loginRequest{Email: in.Email, Password: in.Password},
		out:    &body,
	})
	if err != nil {
		return "", err
	}

	v, err := jmespath.Search(c.tokenPath, body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "read token from login response")
	}
	token, _ := v.(string)
	if strings.TrimSpace(token) == "" {
		return "", apperrors.Internal("no token received")
	}
	return domainauth.Credential(token), nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "admin/register",
		body:   registerRequest(in),
	})
}

// Logout revokes cred on the backend.
func (c *Client) Logout(ctx context.Context, cred domainauth.Credential) error {
	return c.do(ctx, call{method: http.MethodPost, path: "logout", cred: cred})
}

// do runs one call and maps the outcome onto the application error taxonomy.
func (c *Client) do(ctx context.Context, cl call) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "backend rate limit wait")
		}
	}

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build backend request")
	}

	retries := 0
	if cl.idempotent {
		retries = c.maxRetries
	}
	client := &retryablehttp.Client{
		HTTPClient:   c.authorizedClient(cl.cred),
		RetryWaitMin: c.retryWaitMin,
		RetryWaitMax: c.retryWaitMax,
		RetryMax:     retries,
		Backoff:      retryablehttp.DefaultBackoff,
		CheckRetry:   retryPolicy,
		Logger:       c.logger,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend call failed",
			"method", cl.method, "path", cl.path, "duration", time.Since(start), "error", err)
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "backend unavailable")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
	}()

	c.logger.DebugContext(ctx, "backend call",
		"method", cl.method, "path", cl.path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if cl.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := decodeBody(resp.Body, cl.out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode backend response")
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*retryablehttp.Request, error) {
	rel, err := url.Parse(cl.path)
	if err != nil {
		return nil, err
	}
	u := c.base.ResolveReference(rel)
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	var body any
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		body = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// authorizedClient returns an http.Client that sends cred as a bearer token.
func (c *Client) authorizedClient(cred domainauth.Credential) *http.Client {
	if cred.IsZero() {
		return c.httpClient
	}
	hc := *c.httpClient
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cred.Value(), TokenType: "Bearer"}),
		Base:   base,
	}
	return &hc
}

// retryPolicy is retryablehttp.DefaultRetryPolicy, except that an authorization
// refusal is final.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func statusError(resp *http.Response) error {
	msg := errorMessage(resp.Body)
	code := resp.StatusCode

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		if msg == "" {
			msg = "authentication required"
		}
		return apperrors.Wrap(fmt.Errorf("%w: status %d", domainauth.ErrCredentialRejected, code),
			apperrors.ErrCodeUnauthorized, msg)
	case code == http.StatusNotFound:
		return apperrors.NotFound(orDefault(msg, "not found"))
	case code == http.StatusConflict:
		return apperrors.Conflict(orDefault(msg, "conflict"))
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return apperrors.Validation(orDefault(msg, "invalid request"))
	default:
		return apperrors.Wrap(fmt.Errorf("status %d", code), apperrors.ErrCodeUnavailable,
			orDefault(msg, "backend unavailable"))
	}
}

func errorMessage(r io.Reader) string {
	var body any
	if err := json.NewDecoder(io.LimitReader(r, maxBodyBytes)).Decode(&body); err != nil {
		return ""
	}
	v, err := jmespath.Search(errorMessagePath, body)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func decodeBody(r io.Reader, out any) error {
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
