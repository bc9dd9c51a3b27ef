package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"printshop/internal/events"
	"printshop/pkg/logger"
)

// Producer публикует события заказов best-effort: сбой публикации логируется,
// но не откатывает уже выполненное изменение заказа.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(log logger.Logger, versionStr string, brokers []string, topic string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", topic),
	)

	return &Producer{
		log:      producerLog,
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) PublishOrderStatusChanged(_ context.Context, ev events.OrderStatusChanged) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("order", ev.OrderID),
		).Error("failed to encode order.status.changed event")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		// ключ по заказу: события одного заказа попадают в одну партицию
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("order", ev.OrderID),
			logger.NewField("status", ev.Status),
		).Error("failed to publish order.status.changed event")
		return
	}

	p.log.With(
		logger.NewField("order", ev.OrderID),
		logger.NewField("status", ev.Status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order.status.changed published")
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
