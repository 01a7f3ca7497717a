package mqtt

import "fmt"

// Topic prefixes for the ZCL Config Core MQTT hierarchy.
//
// All topics live under the zclconf/ root:
//
//	zclconf/system/status          - retained service online/offline status
//	zclconf/endpoint/{id}          - endpoint configuration change events
//	zclconf/session/{id}/endpoints - per-session endpoint change stream
const (
	// TopicPrefix is the root of all ZCL Config Core topics.
	TopicPrefix = "zclconf"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "zclconf/system"
)

// Topics provides builders for ZCL Config Core MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	eventTopic := topics.Endpoint(12)
//	// Returns: "zclconf/endpoint/12"
type Topics struct{}

// SystemStatus returns the topic for service online/offline status.
//
// Example: zclconf/system/status
func (Topics) SystemStatus() string {
	return TopicPrefixSystem + "/status"
}

// Endpoint returns the topic for change events on a single endpoint row.
//
// Example: zclconf/endpoint/12
func (Topics) Endpoint(id int64) string {
	return fmt.Sprintf("%s/endpoint/%d", TopicPrefix, id)
}

// SessionEndpoints returns the topic for the endpoint change stream of a session.
//
// Example: zclconf/session/3/endpoints
func (Topics) SessionEndpoints(sessionID int64) string {
	return fmt.Sprintf("%s/session/%d/endpoints", TopicPrefix, sessionID)
}
