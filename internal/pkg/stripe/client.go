package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rentride/rentride/internal/pkg/models"
)

// Payment intent statuses reported by the gateway
const (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresAction        = "requires_action"
	StatusProcessing            = "processing"
	StatusSucceeded             = "succeeded"
	StatusCanceled              = "canceled"
)

// Intent is the subset of a gateway payment intent the workflows consume
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`

	// Raw holds the gateway's full response for persistence as opaque metadata.
	Raw json.RawMessage `json:"-"`
}

// APIError is a definitive error answer from the gateway (invalid request,
// declined charge). Transport failures are returned as plain errors and
// should be treated as retryable.
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: %s (%s)", e.Message, e.Type)
}

// Client is a minimal Stripe API client
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// NewClient constructs a new Stripe client from configuration.
func NewClient(cfg models.StripeConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
	}
}

// CreateIntent requests a new payment intent. Amount is in the currency's
// minor units. Metadata is attached as opaque correlation data and automatic
// payment methods with redirects are enabled.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("automatic_payment_methods[allow_redirects]", "always")
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	return c.do(ctx, http.MethodPost, "/payment_intents", form)
}

// GetIntent retrieves the current state of a payment intent by id.
func (c *Client) GetIntent(ctx context.Context, id string) (*Intent, error) {
	return c.do(ctx, http.MethodGet, "/payment_intents/"+url.PathEscape(id), nil)
}

// ConfirmIntent confirms a payment intent with an explicit payment method.
func (c *Client) ConfirmIntent(ctx context.Context, id, paymentMethod string) (*Intent, error) {
	form := url.Values{}
	form.Set("payment_method", paymentMethod)

	return c.do(ctx, http.MethodPost, "/payment_intents/"+url.PathEscape(id)+"/confirm", form)
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) (*Intent, error) {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("stripe: failed to decode response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var wrapper struct {
			Error APIError `json:"error"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.Error.Message == "" {
			return nil, fmt.Errorf("stripe: unexpected status %s", resp.Status)
		}
		wrapper.Error.StatusCode = resp.StatusCode
		return nil, &wrapper.Error
	}

	var intent Intent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("stripe: failed to parse intent: %w", err)
	}
	intent.Raw = raw

	return &intent, nil
}
