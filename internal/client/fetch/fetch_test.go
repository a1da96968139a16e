package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cardtable/internal/domain"
	"github.com/osse101/cardtable/internal/handler"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get(HelloPath, handler.HandleHello())
	r.Get(CardsPath, handler.HandleGetCards())
	r.Get("/api/card/{id}", handler.HandleGetCard())
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	})
	r.Get("/null", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	})
	r.Get("/not-a-card", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"not a card"}`))
	})
	r.Get("/trailing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cards":[]} trailing garbage`))
	})
	r.Get("/no-cards", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	r.Get("/partial-card", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"name":"Card 3"}`))
	})
	r.Get("/unavailable", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Success(t *testing.T) {
	srv := newBackend(t)
	f := New(srv.URL + "/")

	greeting, err := f.Hello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello from server!", greeting)

	hand, err := f.Cards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, hand.Len())

	card, err := f.Card(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, card.ID)
	assert.Equal(t, "Card 42", card.Name)
}

func TestFetcher_StatusError(t *testing.T) {
	srv := newBackend(t)
	f := New(srv.URL)

	_, err := GetJSON[map[string]any](context.Background(), f, "/unavailable")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Status)
	assert.Equal(t, "Error fetching data: 503 (Service Unavailable)", err.Error())

	_, err = f.Card(context.Background(), 0)
	require.NoError(t, err)

	_, err = f.GetText(context.Background(), "/api/card/abc")
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Contains(t, err.Error(), "400")
}

func TestFetcher_DecodeError(t *testing.T) {
	srv := newBackend(t)
	f := New(srv.URL)

	_, err := GetJSON[map[string]any](context.Background(), f, "/broken")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, err.Error(), "Error: ")
	assert.NotContains(t, err.Error(), "fetching")
}

func TestFetcher_StrictDecoding(t *testing.T) {
	srv := newBackend(t)
	f := New(srv.URL)
	ctx := context.Background()

	t.Run("null card", func(t *testing.T) {
		_, err := GetJSON[domain.Card](ctx, f, "/null")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.ErrorIs(t, err, errNullBody)
	})

	t.Run("null hand", func(t *testing.T) {
		_, err := GetJSON[domain.Hand](ctx, f, "/null")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
	})

	t.Run("error object as card", func(t *testing.T) {
		card, err := GetJSON[domain.Card](ctx, f, "/not-a-card")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, domain.Card{}, card)
	})

	t.Run("error object as hand", func(t *testing.T) {
		_, err := GetJSON[domain.Hand](ctx, f, "/not-a-card")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
	})

	t.Run("trailing garbage", func(t *testing.T) {
		_, err := GetJSON[domain.Hand](ctx, f, "/trailing")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.ErrorIs(t, err, errTrailingData)
	})

	t.Run("hand without cards", func(t *testing.T) {
		_, err := GetJSON[domain.Hand](ctx, f, "/no-cards")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.ErrorIs(t, err, domain.ErrMalformedHand)
	})

	t.Run("card missing a field", func(t *testing.T) {
		_, err := GetJSON[domain.Card](ctx, f, "/partial-card")
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.ErrorIs(t, err, domain.ErrMalformedCard)
		assert.Contains(t, err.Error(), "description")
	})
}

func TestFetcher_TransportError(t *testing.T) {
	cause := errors.New("connection refused")
	client := &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return nil, cause
		},
	}}
	f := NewWithClient("http://cards.invalid", client)

	_, err := f.Cards(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Error fetching data: ")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFetcher_ContextCanceled(t *testing.T) {
	srv := newBackend(t)
	f := New(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Hello(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestFetcher_SingleAttempt(t *testing.T) {
	calls := 0
	client := &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			calls++
			return nil, errors.New("boom")
		},
	}}

	_, err := NewWithClient("http://cards.invalid", client).Hello(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCardPath(t *testing.T) {
	assert.Equal(t, "/api/card/7", CardPath(7))
	assert.Equal(t, "/api/card/-1", CardPath(-1))
}
