package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	assignmentQueueKey = "dispatch:assignment_events"
)

// AssignmentEvent - уведомление о назначении подразделения на тревогу
type AssignmentEvent struct {
	AlertID        uuid.UUID  `json:"alert_id"`
	UnitID         uuid.UUID  `json:"unit_id"`
	StationID      *uuid.UUID `json:"station_id,omitempty"`
	Category       string     `json:"category"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	DistanceMeters float64    `json:"distance_meters"`
	AssignedAt     time.Time  `json:"assigned_at"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Publisher - интерфейс для публикации событий назначения
type Publisher interface {
	Publish(ctx context.Context, event AssignmentEvent) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладёт событие в левую часть очереди; воркер забирает справа
func (p *RedisPublisher) Publish(ctx context.Context, event AssignmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, assignmentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish assignment event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, AssignmentEvent) error { return nil }
