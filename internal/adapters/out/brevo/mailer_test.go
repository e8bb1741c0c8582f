package brevo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agromarket/internal/adapters/out/brevo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailer_Send_Success(t *testing.T) {
	var captured struct {
		Sender struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"sender"`
		To []struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"to"`
		Subject     string `json:"subject"`
		HTMLContent string `json:"htmlContent"`
	}
	var apiKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mailer := brevo.NewMailer("secret-key", "no-reply@agromarket.ng", "AgroMarket",
		brevo.WithEndpoint(server.URL))

	err := mailer.Send(t.Context(),
		"amina@example.ng", "Amina Bello", "Order update", "<p>Your order was accepted.</p>")

	require.NoError(t, err)
	assert.Equal(t, "secret-key", apiKey)
	assert.Equal(t, "no-reply@agromarket.ng", captured.Sender.Email)
	assert.Equal(t, "AgroMarket", captured.Sender.Name)
	require.Len(t, captured.To, 1)
	assert.Equal(t, "amina@example.ng", captured.To[0].Email)
	assert.Equal(t, "Amina Bello", captured.To[0].Name)
	assert.Equal(t, "Order update", captured.Subject)
	assert.Equal(t, "<p>Your order was accepted.</p>", captured.HTMLContent)
}

func TestMailer_Send_APIError_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer server.Close()

	mailer := brevo.NewMailer("wrong-key", "no-reply@agromarket.ng", "AgroMarket",
		brevo.WithEndpoint(server.URL))

	err := mailer.Send(t.Context(), "amina@example.ng", "Amina Bello", "Order update", "body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestMailer_Send_ServerUnreachable_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	mailer := brevo.NewMailer("key", "no-reply@agromarket.ng", "AgroMarket",
		brevo.WithEndpoint(server.URL))

	err := mailer.Send(t.Context(), "amina@example.ng", "Amina Bello", "subject", "body")

	require.Error(t, err)
}
