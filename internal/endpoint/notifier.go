package endpoint

import (
	"encoding/json"
	"time"

	"github.com/nerrad567/zcl-config-core/internal/infrastructure/mqtt"
)

// Event names carried in endpoint change payloads.
const (
	EventEndpointSaved   = "endpoint_saved"
	EventEndpointDeleted = "endpoint_deleted"
)

// Publisher is the transport the notifier publishes events on.
// mqtt.Client satisfies it; tests use a fake.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Logger is the subset of the logging interface the notifier needs.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Warn(msg string, args ...any)
}

// endpointEvent is the JSON payload for endpoint change events.
type endpointEvent struct {
	Event              string `json:"event"`
	EndpointID         int64  `json:"endpoint_id"`
	SessionID          int64  `json:"session_id,omitempty"`
	EndpointIdentifier int64  `json:"endpoint_identifier,omitempty"`
	EndpointTypeID     int64  `json:"endpoint_type_id,omitempty"`
	Profile            int64  `json:"profile,omitempty"`
	Timestamp          string `json:"timestamp"`
}

// Notifier publishes endpoint configuration change events over MQTT.
//
// Publishing is best-effort: a broker outage must not fail the database
// mutation that triggered the event, so failures are logged and dropped.
type Notifier struct {
	pub Publisher
	qos byte
	log Logger
}

// NewNotifier creates a notifier publishing on the given transport.
func NewNotifier(pub Publisher, qos byte) *Notifier {
	return &Notifier{pub: pub, qos: qos}
}

// SetLogger sets a logger for publish failures.
// If not set, failures are silently dropped.
func (n *Notifier) SetLogger(log Logger) {
	n.log = log
}

// EndpointSaved announces an inserted or replaced endpoint on both the
// endpoint topic and the owning session's change stream.
func (n *Notifier) EndpointSaved(e Endpoint) {
	ev := endpointEvent{
		Event:              EventEndpointSaved,
		EndpointID:         e.ID,
		SessionID:          e.SessionID,
		EndpointIdentifier: e.EndpointIdentifier,
		EndpointTypeID:     e.EndpointTypeID,
		Profile:            e.Profile,
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}
	n.publish(mqtt.Topics{}.Endpoint(e.ID), ev)
	n.publish(mqtt.Topics{}.SessionEndpoints(e.SessionID), ev)
}

// EndpointDeleted announces a deleted endpoint. Only the row id is known at
// deletion time; subscribers tracking sessions use the saved events' ids.
func (n *Notifier) EndpointDeleted(id int64) {
	n.publish(mqtt.Topics{}.Endpoint(id), endpointEvent{
		Event:      EventEndpointDeleted,
		EndpointID: id,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// publish serializes and sends one event, logging failures.
func (n *Notifier) publish(topic string, ev endpointEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		if n.log != nil {
			n.log.Warn("marshalling endpoint event", "event", ev.Event, "error", err)
		}
		return
	}

	if err := n.pub.Publish(topic, payload, n.qos, false); err != nil {
		if n.log != nil {
			n.log.Warn("publishing endpoint event",
				"topic", topic,
				"event", ev.Event,
				"error", err,
			)
		}
	}
}
