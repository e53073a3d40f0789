// Package telemetry is an optional observer: it drains the scheduler's
// sample ring buffer onto an MQTT topic for a remote dashboard. It is
// never required by the core simulation loop -- the scheduler runs
// identically with or without a Publisher attached.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"motorsim/observer"
)

// Publisher batches observer samples and publishes them to a single
// MQTT topic as they become available.
type Publisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewPublisher connects to brokerURL (e.g. "tcp://localhost:1883") and
// returns a Publisher bound to topic. The connect is synchronous:
// callers get a usable Publisher or an error, not a background
// goroutine racing construction.
func NewPublisher(brokerURL, clientID, topic string, qos byte) (*Publisher, error) {
	opts := mqtt.NewClientOptions().AddBroker(brokerURL).SetClientID(clientID)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, fmt.Errorf("telemetry: timed out connecting to %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("telemetry: connect to %s: %w", brokerURL, err)
	}
	return &Publisher{client: client, topic: topic, qos: qos}, nil
}

// PublishBatch serializes every sample currently in buf to JSON and
// publishes it in one message. It is synchronous: it waits on the
// publish token before returning, so its caller blocks for that time.
func (p *Publisher) PublishBatch(buf *observer.Samples) error {
	payload, err := json.Marshal(buf.Ordered())
	if err != nil {
		return fmt.Errorf("telemetry: marshal samples: %w", err)
	}
	token := p.client.Publish(p.topic, p.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects cleanly.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
