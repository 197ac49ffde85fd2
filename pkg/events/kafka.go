package events

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/pledgesync/pkg/model"
)

// Kafka publishes pledge lifecycle events keyed by pledge ID,
// so all events of one pledge land in the same partition.
type Kafka struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafka(brokers []string, topic string) (*Kafka, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return newKafka(producer, topic), nil
}

func newKafka(producer sarama.SyncProducer, topic string) *Kafka {
	if topic == "" {
		topic = model.DefaultEventsTopic
	}

	return &Kafka{producer: producer, topic: topic}
}

func (k *Kafka) Publish(_ context.Context, event *model.PledgeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal event for pledge %s", event.PledgeID)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(event.PledgeID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event for pledge %s", event.Status, event.PledgeID)
	}

	log.WithFields(log.Fields{
		"pledge_id": event.PledgeID,
		"status":    event.Status,
		"partition": partition,
		"offset":    offset,
	}).Debug("published pledge event")

	return nil
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}
