package kafka_test

import (
	"context"
	"fieldservice/config"
	"fieldservice/infras/kafka"
	"fieldservice/infras/otel/mocks"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type quoteEvent struct {
	Event   string  `json:"event"`
	QuoteID int64   `json:"quote_id"`
	Amount  float64 `json:"amount"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "quote:9", Value: quoteEvent{Event: "quote.approved", QuoteID: 9, Amount: 250}}

	kafkaMsg, err := msg.ToKafkaMessage("fieldservice.notifications")
	assert.NoError(t, err)
	assert.Equal(t, "fieldservice.notifications", kafkaMsg.Topic)
	assert.JSONEq(t, `{"event":"quote.approved","quote_id":9,"amount":250}`, string(kafkaMsg.Value))

	key, decoded, err := kafka.DecodeKafkaMessage[quoteEvent](kafkaMsg)
	assert.NoError(t, err)
	assert.Equal(t, "quote:9", key)
	assert.Equal(t, int64(9), decoded.QuoteID)

	_, _, err = kafka.DecodeKafkaMessage[quoteEvent](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: "v"}))
	assert.NoError(t, client.Close())
}
