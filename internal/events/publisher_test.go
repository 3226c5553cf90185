package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"cashflow/internal/models"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	declared   []string
	kinds      []string
	sent       []published
	declareErr error
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	f.declared = append(f.declared, name)
	f.kinds = append(f.kinds, kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if f.publishErr != nil {
		return f.publishErr
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func sampleTransaction() *models.Transaction {
	categoryID := uuid.New()
	return &models.Transaction{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CategoryID: &categoryID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("42.5"),
		CreatedAt:  time.Now(),
	}
}

func TestNewPublisher_DeclaresTopicExchange(t *testing.T) {
	ch := &fakeChannel{}

	p, err := newPublisher(ch, "cashflow.transactions")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, []string{"cashflow.transactions"}, ch.declared)
	assert.Equal(t, []string{"topic"}, ch.kinds)
}

func TestNewPublisher_DeclareFailureClosesChannel(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}

	p, err := newPublisher(ch, "cashflow.transactions")
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "declare exchange")
	assert.True(t, ch.closed)
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "cashflow.transactions")
	require.NoError(t, err)

	tx := sampleTransaction()
	event := NewTransactionEvent(EventCreated, tx)

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "cashflow.transactions", sent.exchange)
	assert.Equal(t, "transaction.created", sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, sent.msg.DeliveryMode)

	decoded, err := TransactionEventFromJSON(sent.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, tx.ID.String(), decoded.TransactionID)
	assert.Equal(t, tx.UserID.String(), decoded.UserID)
	assert.Equal(t, "expense", decoded.Type)
	assert.Equal(t, "42.50", decoded.Amount)
	require.NotNil(t, decoded.CategoryID)
	assert.Equal(t, tx.CategoryID.String(), *decoded.CategoryID)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: amqp091.ErrClosed}
	p, err := newPublisher(ch, "cashflow.transactions")
	require.NoError(t, err)

	err = p.Publish(context.Background(), NewTransactionEvent(EventDeleted, sampleTransaction()))
	assert.ErrorIs(t, err, amqp091.ErrClosed)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "cashflow.transactions")
	require.NoError(t, err)

	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNewTransactionEvent_Uncategorized(t *testing.T) {
	tx := sampleTransaction()
	tx.CategoryID = nil

	event := NewTransactionEvent(EventDeleted, tx)
	assert.Nil(t, event.CategoryID)
	assert.Equal(t, "transaction.deleted", event.RoutingKey())
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), NewTransactionEvent(EventCreated, sampleTransaction())))
	assert.NoError(t, p.Close())
}
