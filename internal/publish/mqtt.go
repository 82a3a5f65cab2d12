// Package publish forwards decoded records to an MQTT broker.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/danmuck/rowctl/internal/config"
	"github.com/danmuck/rowctl/internal/ingest"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const connectTimeout = 10 * time.Second

var ErrConnect = errors.New("publish: mqtt connect failed")

// Client is the part of mqtt.Client the publisher uses.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// Message is the JSON body published for each record.
type Message struct {
	Characteristic ident.Characteristic `json:"characteristic"`
	Received       time.Time            `json:"received"`
	Record         any                  `json:"record"`
}

// Publisher is an ingest.Sink publishing on <prefix>/<characteristic name>.
type Publisher struct {
	client Client
	prefix string
	qos    byte
	retain bool
}

func New(client Client, prefix string, qos byte, retain bool) *Publisher {
	return &Publisher{
		client: client,
		prefix: strings.TrimSuffix(strings.TrimSpace(prefix), "/"),
		qos:    qos,
		retain: retain,
	}
}

const connectAttempts = 4

// Connect dials the broker in cfg, retrying with backoff until ctx is done or
// the attempts run out.
func Connect(ctx context.Context, cfg config.MQTTConfig) (*Publisher, error) {
	if err := config.ValidateMQTT(cfg); err != nil {
		return nil, err
	}
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn().Err(err).Str("broker", cfg.Broker).Msg("publish.Connect connection lost")
		})
	client := mqtt.NewClient(opts)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if wait := defaultBackoff.Delay(attempt, rng); wait > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
		tok := client.Connect()
		if !tok.WaitTimeout(connectTimeout) {
			lastErr = fmt.Errorf("%w: %s: timed out", ErrConnect, cfg.Broker)
		} else if err := tok.Error(); err != nil {
			lastErr = fmt.Errorf("%w: %s: %v", ErrConnect, cfg.Broker, err)
		} else {
			log.Info().Str("broker", cfg.Broker).Str("prefix", cfg.TopicPrefix).Int("attempt", attempt).Msg("publish.Connect connected")
			return New(client, cfg.TopicPrefix, byte(cfg.QoS), cfg.Retain), nil
		}
		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("publish.Connect retrying")
	}
	return nil, lastErr
}

// Topic is the topic a record of c is published on.
func (p *Publisher) Topic(c ident.Characteristic) string {
	return p.prefix + "/" + c.Name
}

func (*Publisher) Name() string { return "mqtt" }

func (p *Publisher) Write(ctx context.Context, ev ingest.Event) error {
	body, err := json.Marshal(Message{
		Characteristic: ev.Characteristic,
		Received:       ev.Received.UTC(),
		Record:         ev.Record,
	})
	if err != nil {
		return fmt.Errorf("publish: encode %s: %w", ev.Characteristic, err)
	}
	tok := p.client.Publish(p.Topic(ev.Characteristic), p.qos, p.retain, body)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tok.Done():
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publish: %s: %w", ev.Characteristic, err)
	}
	return nil
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
