package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJoinsBasePathAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/pokemon", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "pokedex", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"count": 1302}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL+"/api/v2", Config{Headers: map[string]string{"User-Agent": "pokedex"}})
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "pokemon", RequestOptions{Query: url.Values{"limit": {"20"}}})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())

	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.Equal(t, 1302, out.Count)
}

func TestGetAbsoluteURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/pokemon-species/25/", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := New("https://pokeapi.invalid/api/v2")
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), srv.URL+"/api/v2/pokemon-species/25/", RequestOptions{})
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestUnmarshalPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Not Found"))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/", RequestOptions{})
	require.NoError(t, err)
	assert.Error(t, resp.UnmarshalBody(&struct{}{}))
}

func TestTransportErrorIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client, err := New(addr, Config{Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "pokemon/1", RequestOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.Network) || errors.Is(err, errs.Timeout))
}

func TestCanceledContext(t *testing.T) {
	client, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Get(ctx, "pokemon/1", RequestOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	_, err := New("pokeapi.co/api/v2")
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}
