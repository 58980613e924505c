package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	body, err := Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestGet_InvalidURL(t *testing.T) {
	_, err := Get(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "invalid URL")
}

func TestGet_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 503")
}

func TestJSON_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"remoteok","count":2}`))
	}))
	defer srv.Close()

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, JSON(context.Background(), srv.URL, nil, &out))
	assert.Equal(t, "remoteok", out.Name)
	assert.Equal(t, 2, out.Count)
}

func TestJSON_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer srv.Close()

	var out map[string]any
	err := JSON(context.Background(), srv.URL, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode JSON")
}

func TestDocument_ParsesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><span class="title">Go Developer</span></body></html>`))
	}))
	defer srv.Close()

	doc, err := Document(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", doc.Find(".title").Text())
}
