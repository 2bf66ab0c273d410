package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - доставляет события назначения из очереди Redis на внешний вебхук
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(context.Context, time.Duration) bool
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
}

// Start запускает горутину обработки очереди; останавливается по ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting assignment webhook worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping assignment webhook worker.")
				return
			}

			// BRPOP с таймаутом, чтобы периодически проверять ctx
			result, err := w.redisClient.BRPop(ctx, time.Second, assignmentQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop assignment event from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event AssignmentEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal assignment event from Redis")
				continue
			}

			if err := w.Deliver(ctx, event, []byte(payload)); err != nil {
				w.logger.WithError(err).WithField("alert_id", event.AlertID).Error("Assignment webhook dropped")
			}
		}
	}()
}

// Deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *Worker) Deliver(ctx context.Context, event AssignmentEvent, payload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id": event.AlertID,
		"unit_id":  event.UnitID,
	})
	log.Debug("Processing assignment event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, payload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Webhook delivered successfully.")
			return nil
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", maxRetries-1-i)
		} else {
			log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
		}
		if i == maxRetries-1 {
			break
		}
		if !w.sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	return fmt.Errorf("webhook: delivery failed after %d attempts", maxRetries)
}

func (w *Worker) send(ctx context.Context, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
