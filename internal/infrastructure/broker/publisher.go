package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"rodut/internal/domain/entity"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends the event to the stream under the "body" field.
func (p *Publisher) Publish(ctx context.Context, event entity.AttachmentEvent) error {
	if p.client == nil || p.client.redis == nil {
		return errors.New("redis not initialized")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{"body": string(body)},
	}

	if p.client.maxLen > 0 {
		args.MaxLen = p.client.maxLen
		args.Approx = true
	}

	return p.client.redis.XAdd(ctx, args).Err()
}
