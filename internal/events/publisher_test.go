package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/events"
)

func TestPublisher_PublishChitChanged(t *testing.T) {
	id := cashbook.NewCashbookID()
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	var published amqp091.Publishing

	p := events.NewTestPublisher("cashbook", "chits", func(_ context.Context, exchange, key string, msg amqp091.Publishing) error {
		assert.Equal(t, "cashbook", exchange)
		assert.Equal(t, "chits", key)

		published = msg

		return nil
	})

	err := p.PublishChitChanged(context.Background(), cashbook.ChitChanged{
		CashbookID: id,
		ChitID:     4,
		Type:       cashbook.ChangeLocked,
		OccurredAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp091.Persistent, published.DeliveryMode)

	msg, err := events.ChitChangedMessageFromJSON(published.Body)
	require.NoError(t, err)
	assert.Equal(t, &events.ChitChangedMessage{
		CashbookID: id.String(),
		ChitID:     4,
		Type:       "locked",
		Timestamp:  at,
	}, msg)
}

func TestPublisher_PublishError(t *testing.T) {
	brokerErr := errors.New("channel closed")
	p := events.NewTestPublisher("cashbook", "chits", func(context.Context, string, string, amqp091.Publishing) error {
		return brokerErr
	})

	err := p.PublishChitChanged(context.Background(), cashbook.ChitChanged{CashbookID: cashbook.NewCashbookID(), ChitID: 1, Type: cashbook.ChangeAdded})
	assert.ErrorIs(t, err, brokerErr)
}
