package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(handler)
	client := NewClient(models.StripeConfig{
		SecretKey: "sk_test_123",
		BaseURL:   server.URL,
	})
	return client, server.Close
}

func TestCreateIntent(t *testing.T) {
	var gotForm map[string][]string
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","status":"requires_payment_method","amount":19999,"currency":"usd"}`))
	})
	defer cleanup()

	intent, err := client.CreateIntent(context.Background(), 19999, "usd", map[string]string{"rent_id": "r1"})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, StatusRequiresPaymentMethod, intent.Status)
	assert.Equal(t, int64(19999), intent.Amount)
	assert.NotEmpty(t, intent.Raw)

	assert.Equal(t, "19999", gotForm["amount"][0])
	assert.Equal(t, "usd", gotForm["currency"][0])
	assert.Equal(t, "true", gotForm["automatic_payment_methods[enabled]"][0])
	assert.Equal(t, "always", gotForm["automatic_payment_methods[allow_redirects]"][0])
	assert.Equal(t, "r1", gotForm["metadata[rent_id]"][0])
}

func TestGetIntent(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payment_intents/pi_123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":5000}`))
	})
	defer cleanup()

	intent, err := client.GetIntent(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, intent.Status)
	assert.Equal(t, int64(5000), intent.Amount)
}

func TestConfirmIntent(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment_intents/pi_123/confirm", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pm_card_visa", r.PostFormValue("payment_method"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":5000}`))
	})
	defer cleanup()

	intent, err := client.ConfirmIntent(context.Background(), "pi_123", "pm_card_visa")

	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, intent.Status)
}

func TestAPIErrorResponse(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	})
	defer cleanup()

	_, err := client.ConfirmIntent(context.Background(), "pi_123", "pm_card_visa")

	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "card_declined", apiErr.Code)
	assert.Equal(t, "Your card was declined.", apiErr.Message)
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient(models.StripeConfig{
		SecretKey: "sk_test_123",
		BaseURL:   "http://127.0.0.1:1",
	})

	_, err := client.GetIntent(context.Background(), "pi_123")

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
