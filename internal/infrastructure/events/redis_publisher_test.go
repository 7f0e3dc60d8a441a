package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/infrastructure/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	channel string
	payload []byte
	err     error
}

func (f *fakeClient) Publish(_ context.Context, channel string, message interface{}) *goredis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	return goredis.NewIntResult(1, f.err)
}

func TestRedisPublisher_Publish(t *testing.T) {
	fc := &fakeClient{}
	p := &RedisPublisher{rdb: fc, channel: "shopping-events", log: logger.NewNop()}

	evt := entities.ShoppingListEvent{
		Type:       entities.EventShoppingListItemsBulkSet,
		ListID:     "l-1",
		OwnerID:    "u-1",
		Version:    4,
		Affected:   2,
		OccurredAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), evt))
	assert.Equal(t, "shopping-events", fc.channel)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(fc.payload, &decoded))
	assert.Equal(t, "shopping_list.items_bulk_updated", decoded["type"])
	assert.Equal(t, "l-1", decoded["list_id"])
	assert.Equal(t, float64(2), decoded["affected"])
	assert.Equal(t, float64(4), decoded["version"])
}

func TestRedisPublisher_PublishError(t *testing.T) {
	p := &RedisPublisher{rdb: &fakeClient{err: errors.New("connection refused")}, channel: "c", log: logger.NewNop()}
	err := p.Publish(context.Background(), entities.ShoppingListEvent{})
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewRedisPublisher_MissingAddr(t *testing.T) {
	_, err := NewRedisPublisher(context.Background(), "", "c", nil)
	assert.Error(t, err)
}

func TestRedisPublisher_CloseWithoutClient(t *testing.T) {
	assert.NoError(t, (&RedisPublisher{}).Close())
}
