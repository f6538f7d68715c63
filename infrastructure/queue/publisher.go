// Package queue publica eventos de campanha no RabbitMQ para o componente
// publicador externo, que executa os posts agendados.
package queue

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"github.com/vfg2006/campaign-manager-api/internal/config"
)

// CampaignActivatedEvent notifica o publicador externo de que uma campanha
// foi ativada e seus posts estão persistidos aguardando conteúdo e execução
type CampaignActivatedEvent struct {
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	PostIDs    []string  `json:"post_ids"`
	StartedAt  time.Time `json:"started_at"`
	EndsAt     time.Time `json:"ends_at"`
}

type Publisher interface {
	PublishCampaignActivated(event CampaignActivatedEvent) error
	Close() error
}

type amqpPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

// NewPublisher conecta no RabbitMQ e declara a fila durável de eventos de
// ativação
func NewPublisher(cfg config.Queue) (Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		cfg.CampaignActivatedQueue, // name
		true,                       // durable
		false,                      // delete when unused
		false,                      // exclusive
		false,                      // no-wait
		nil,                        // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &amqpPublisher{
		conn:      conn,
		channel:   channel,
		queueName: cfg.CampaignActivatedQueue,
	}, nil
}

func (p *amqpPublisher) PublishCampaignActivated(event CampaignActivatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

// noopPublisher é usado quando a fila está desabilitada por configuração
// (ambiente local sem RabbitMQ). Eventos são apenas logados.
type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishCampaignActivated(event CampaignActivatedEvent) error {
	logrus.WithFields(logrus.Fields{
		"campaign_id": event.CampaignID,
		"posts":       len(event.PostIDs),
	}).Info("queue desabilitada, evento de ativação descartado")
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
