package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLinkSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "server-key", user)
		assert.Empty(t, pass)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ORD-1", req.TransactionDetails.OrderID)
		assert.Equal(t, int64(150000), req.TransactionDetails.GrossAmount)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"tok","redirect_url":"https://pay.test/tok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "server-key", time.Second)
	link, err := c.CreateLink(context.Background(), Request{
		TransactionDetails: TransactionDetails{OrderID: "ORD-1", GrossAmount: 150000},
	})
	require.NoError(t, err)
	assert.Equal(t, Link{Token: "tok", RedirectURL: "https://pay.test/tok"}, link)
}

func TestCreateLinkRequires201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"tok","redirect_url":"x"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", time.Second).CreateLink(context.Background(), Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentFailed)
	var ge *GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusOK, ge.ErrorCode())
}

func TestCreateLinkTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "k", time.Second).CreateLink(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrPaymentFailed)
}
