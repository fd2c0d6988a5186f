// internal/app/system/captcha/captcha.go
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultVerifyURL is the reCAPTCHA server-side verification endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks human-verification tokens submitted with the public
// forms against the provider's verify endpoint.
type Verifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	log       *zap.Logger
}

// New creates a Verifier. An empty secret disables verification; every
// token passes. That keeps local development and tests working without
// provider credentials.
func New(secret string, logger *zap.Logger) *Verifier {
	return &Verifier{
		secret:    secret,
		verifyURL: DefaultVerifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       logger,
	}
}

// SetVerifyURL overrides the provider endpoint. Used in tests.
func (v *Verifier) SetVerifyURL(u string) {
	v.verifyURL = u
}

// Enabled reports whether verification is configured.
func (v *Verifier) Enabled() bool {
	return v.secret != ""
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a client token. Returns nil when the token is valid or
// verification is disabled.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.Enabled() {
		return nil
	}
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("verification token is missing")
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("verification service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("verification service returned %d", resp.StatusCode)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode verify response: %w", err)
	}
	if !out.Success {
		v.log.Info("captcha verification rejected", zap.Strings("error_codes", out.ErrorCodes))
		return fmt.Errorf("verification failed")
	}
	return nil
}
