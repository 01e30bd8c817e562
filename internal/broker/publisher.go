package broker

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/config"
	"github.com/lordcript/gestion-achatss.io/internal/model"
)

const (
	EvenementCommandeCreee     = "commande.creee"
	EvenementCommandeSupprimee = "commande.supprimee"
)

type Evenement struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   *model.Commande `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher pushes order events to Kafka. A nil *Publisher is valid and drops
// everything, so the broker stays optional.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// New builds a publisher. Returns nil (events disabled) when no broker is configured.
func New(cfg *config.KafkaConfig, log *zap.Logger) *Publisher {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafka.Hash{},
		},
		logger: log,
	}
}

// Publier emits one event. Failures are logged, never surfaced: events are a
// side channel, not part of the request outcome.
func (p *Publisher) Publier(ctx context.Context, eventType string, commande *model.Commande) {
	if p == nil {
		return
	}
	ev := Evenement{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Payload:   commande,
		Timestamp: time.Now(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("sérialisation de l'événement", zap.Error(err))
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(commande.ID, 10)),
		Value: value,
	})
	if err != nil {
		p.logger.Error("publication de l'événement",
			zap.String("event_type", eventType),
			zap.Int64("commande_id", commande.ID),
			zap.Error(err),
		)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
