// Package mqtt provides the MQTT client for ZCL Config Core.
//
// The service is a publisher only: it announces its own availability on a
// retained system status topic (with a Last Will for crash detection) and
// emits endpoint configuration change events consumed by companion tools.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.Endpoint(id)
//	_ = client.Publish(topic, payload, 1, false)
//
// Reconnection is automatic with exponential backoff; publishes while
// disconnected fail fast with ErrNotConnected rather than queueing.
package mqtt
