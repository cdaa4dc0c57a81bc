package ladder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEntries(t *testing.T) {
	t.Run("decodes entries and sends the account query", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ladders/Hardcore Settlers", r.URL.Path)
			assert.Equal(t, "pc", r.URL.Query().Get("realm"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			assert.Equal(t, "Exile", r.URL.Query().Get("accountName"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total":2,"entries":[
				{"rank":3,"character":{"name":"FirstOne","level":95}},
				{"rank":7,"character":{"name":"SecondOne","level":90}}
			]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/", 10, time.Second)

		entries, err := client.FetchEntries(context.Background(), "Hardcore Settlers", "Exile")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 3, entries[0].Rank)
		assert.Equal(t, "FirstOne", entries[0].Character.Name)
		assert.Equal(t, 90, entries[1].Character.Level)
	})

	t.Run("unknown league is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 10, time.Second).FetchEntries(context.Background(), "Nope", "Exile")
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("upstream failure is an unclassified error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 10, time.Second).FetchEntries(context.Background(), "Standard", "Exile")
		require.Error(t, err)
		assert.False(t, errs.IsNotFound(err))
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"entries":`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 10, time.Second).FetchEntries(context.Background(), "Standard", "Exile")
		assert.Error(t, err)
	})

	t.Run("empty ladder", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"total":0,"entries":[]}`))
		}))
		defer srv.Close()

		entries, err := NewClient(srv.URL, 10, time.Second).FetchEntries(context.Background(), "Standard", "Exile")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
