package wordlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchPage_Discovery(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words", r.URL.Path)
		assert.Equal(t, "A1", r.URL.Query().Get("level"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		assert.False(t, r.URL.Query().Has("start"), "discovery request must not carry an offset")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"total":25,"entries":[{"bare":"не","rank":1},{"bare":" что "}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	page, err := c.FetchPage(context.Background(), Request{Level: "A1", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, 25, page.Total)
	assert.Equal(t, []string{"не", "что"}, page.Words)
}

func TestClient_FetchPage_Offset(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("start"))
		_, _ = w.Write([]byte(`{"result":{"total":25,"entries":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 0)
	req := Request{Level: "B2", Language: "en"}.At(20)
	page, err := c.FetchPage(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, page.Words)
}

func TestClient_FetchPage_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing result", `{"total":3}`},
		{"missing total", `{"result":{"entries":[]}}`},
		{"string total", `{"result":{"total":"3","entries":[]}}`},
		{"entry without bare", `{"result":{"total":1,"entries":[{"accented":"не"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, 0).FetchPage(context.Background(), Request{Level: "A1", Language: "en"})
			require.Error(t, err)

			var malformed *ErrMalformedPage
			assert.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
		})
	}
}

func TestClient_FetchPage_TooLarge(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"total":1,"entries":[{"bare":"` + strings.Repeat("a", maxBodyBytes) + `"}]}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).FetchPage(context.Background(), Request{Level: "A1", Language: "en"})
	require.Error(t, err)

	var malformed *ErrMalformedPage
	require.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
	assert.Contains(t, err.Error(), "larger than")
}

func TestClient_FetchPage_Status(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).FetchPage(context.Background(), Request{Level: "A1", Language: "en"})
	require.Error(t, err)

	var status *ErrUnexpectedStatus
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusBadGateway, status.StatusCode)
	assert.True(t, status.Retryable())
	assert.Contains(t, err.Error(), "upstream down")
}

func TestRequest_OffsetOrZero(t *testing.T) {
	req := Request{Level: "A1"}
	assert.Equal(t, 0, req.OffsetOrZero())
	assert.Nil(t, req.Offset)

	at := req.At(30)
	assert.Equal(t, 30, at.OffsetOrZero())
	assert.Nil(t, req.Offset, "At must not modify the receiver")
}
