package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("writes one message per event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := NewMockKafkaWriter(ctrl)
		p := NewEventPublisher(writer)

		decided := models.NewEvent(models.EventClaimDecided, "claim-1", map[string]string{"status": "approved"}, now)
		recorded := models.NewEvent(models.EventTransactionRecorded, "agent-1", map[string]string{"type": "credit"}, now)

		var got []kafka.Message
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				got = msgs
				return nil
			})

		p.Publish(ctx, decided, recorded)

		require.Len(t, got, 2)
		assert.Equal(t, "claim-1", string(got[0].Key))
		assert.Equal(t, "agent-1", string(got[1].Key))
		require.Len(t, got[0].Headers, 1)
		assert.Equal(t, "event_type", got[0].Headers[0].Key)
		assert.Equal(t, string(models.EventClaimDecided), string(got[0].Headers[0].Value))

		var body models.Event
		require.NoError(t, json.Unmarshal(got[1].Value, &body))
		assert.Equal(t, recorded.ID, body.ID)
		assert.Equal(t, models.EventTransactionRecorded, body.Type)
	})

	t.Run("writer failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := NewMockKafkaWriter(ctrl)
		p := NewEventPublisher(writer)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

		assert.NotPanics(t, func() {
			p.Publish(ctx, models.NewEvent(models.EventClaimSubmitted, "claim-2", nil, now))
		})
	})

	t.Run("nothing to publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := NewEventPublisher(NewMockKafkaWriter(ctrl))
		p.Publish(ctx)
	})

	t.Run("no writer configured", func(t *testing.T) {
		p := NewEventPublisher(nil)
		assert.NotPanics(t, func() {
			p.Publish(ctx, models.NewEvent(models.EventClaimSubmitted, "claim-3", nil, now))
		})
	})
}
