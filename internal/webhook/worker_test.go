package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewWorker(nil, logger, cfg)
	w.sleep = func(context.Context, time.Duration) bool { return true }
	return w
}

func testEvent() (AssignmentEvent, []byte) {
	event := AssignmentEvent{
		AlertID:        uuid.New(),
		UnitID:         uuid.New(),
		Category:       "fire",
		DistanceMeters: 310.5,
		AssignedAt:     time.Now().UTC(),
	}
	payload, _ := json.Marshal(event)
	return event, payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookSecret: "s3cret", WebhookMaxRetries: 3, WebhookTimeout: time.Second})
	event, payload := testEvent()

	require.NoError(t, w.Deliver(context.Background(), event, payload))
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 3, WebhookTimeout: time.Second})
	event, payload := testEvent()

	require.NoError(t, w.Deliver(context.Background(), event, payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 2, WebhookTimeout: time.Second})
	event, payload := testEvent()

	err := w.Deliver(context.Background(), event, payload)
	assert.ErrorContains(t, err, "after 2 attempts")
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	w := newTestWorker(&config.Config{})
	event, payload := testEvent()

	assert.NoError(t, w.Deliver(context.Background(), event, payload))
}
