// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moleculab/chemscout/pkg/types"
)

const defaultTimeout = 10 * time.Second

// Client is the shared HTTP facade handed to every source adapter. It is
// constructed once and injected; it holds no per-request state beyond the
// pooled connections of the underlying transports, so it is safe for
// concurrent use across fan-out tasks.
type Client struct {
	std         *http.Client
	insecure    *http.Client
	userAgent   string
	maxAttempts int
}

// NewClient builds a Client from cfg. When cfg.InsecureFallback is set a
// second transport with TLS verification disabled is prepared; it is used
// for at most one extra attempt and only after a certificate-validation
// failure.
func NewClient(cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		std:         &http.Client{Timeout: timeout},
		userAgent:   cfg.UserAgent,
		maxAttempts: cfg.MaxAttempts,
	}

	if cfg.InsecureFallback {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		c.insecure = &http.Client{Timeout: timeout, Transport: transport}
	}

	return c
}

// Get issues a GET and returns the response on any 2xx status. Transient
// server errors are retried with backoff; every other failure, including
// a non-2xx status, comes back as an error with the body already closed.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// GetWithHeaders issues a GET carrying extra request headers, for sources
// that authenticate with an API-key header.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, url, headers)
}

// Head issues a HEAD under the same retry and fallback rules as Get.
func (c *Client) Head(ctx context.Context, url string) (*http.Response, error) {
	return c.do(ctx, http.MethodHead, url, nil)
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := DoWithRetry(c.std, req, c.maxAttempts)
	if err != nil && c.insecure != nil && isCertError(err) {
		resp, err = DoWithRetry(c.insecure, req, 1)
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}
	return resp, nil
}

// isCertError reports whether err stems from certificate verification, as
// opposed to any other transport failure.
func isCertError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostname x509.HostnameError
	if errors.As(err, &hostname) {
		return true
	}
	var invalid x509.CertificateInvalidError
	return errors.As(err, &invalid)
}
