package mqtt

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"motor-twin/internal/model"
)

const QoS = 0

// Topic returns the announce topic for a motor: "motors/{id}/live".
func Topic(motorID string) string {
	return "motors/" + motorID + "/live"
}

// Announcer republishes live payloads over MQTT for consumers that do not
// read the dashboard database.
type Announcer struct {
	client mqtt.Client
	topic  string
}

// Connect dials the broker and returns an announcer for motorID.
func Connect(broker, clientID, user, pass, motorID string) (*Announcer, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)
	if user != "" {
		opts.SetUsername(user).SetPassword(pass)
	}
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, token.Error())
	}
	return &Announcer{client: client, topic: Topic(motorID)}, nil
}

// Announce publishes the nested live payload as JSON.
func (a *Announcer) Announce(r model.MotorReading) error {
	payload, err := json.Marshal(r.Live())
	if err != nil {
		return fmt.Errorf("marshal live payload: %w", err)
	}
	token := a.client.Publish(a.topic, QoS, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("publish %s: %w", a.topic, token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (a *Announcer) Close() {
	a.client.Disconnect(250)
}
