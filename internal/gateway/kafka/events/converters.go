package events

import (
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"ledger/internal/entities"
	"ledger/internal/pkg/eventcodec"
	"ledger/internal/pkg/kafka"
)

const (
	headerEventType = "ledger-event-type"
	headerSequence  = "ledger-event-sequence"
)

func toMessages(topic string, events []entities.Event) ([]*sarama.ProducerMessage, error) {
	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for i := range events {
		e := &events[i]

		value, err := eventcodec.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("encode event %d: %w", e.Sequence, err)
		}

		sequence := strconv.FormatInt(e.Sequence, 10)
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic:     topic,
			Partition: kafka.LedgerPartition,
			Key:       sarama.StringEncoder(sequence),
			Value:     sarama.ByteEncoder(value),
			Headers: []sarama.RecordHeader{
				{Key: []byte(headerEventType), Value: []byte(e.Type.String())},
				{Key: []byte(headerSequence), Value: []byte(sequence)},
			},
		})
	}
	return msgs, nil
}
