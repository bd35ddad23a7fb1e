package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/ace-tracker/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushInvalidation(t *testing.T) {
	t.Run("delivers a decodable push envelope", func(t *testing.T) {
		var got pubsub.InvalidationEvent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)

			data, err := pubsub.DecodePush(body)
			if !assert.NoError(t, err) {
				http.Error(w, "Invalid push message", http.StatusBadRequest)
				return
			}
			assert.NoError(t, pubsub.NewMock("TEST").ProcessMessage(data, &got))
			w.Write([]byte("OK"))
		}))
		defer srv.Close()

		event := pubsub.NewInvalidationEvent("seeder", "import run-1")
		require.NoError(t, pushInvalidation(context.Background(), srv.URL, event))

		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, "seeder", got.Origin)
		assert.Equal(t, "import run-1", got.Reason)
		assert.Equal(t, pubsub.EventInvalidateCache, got.Type)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Invalid push message", http.StatusBadRequest)
		}))
		defer srv.Close()

		err := pushInvalidation(context.Background(), srv.URL, pubsub.NewInvalidationEvent("seeder", ""))
		assert.Error(t, err)
	})
}
