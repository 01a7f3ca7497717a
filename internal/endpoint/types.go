package endpoint

// Side identifies the client/server role of a cluster instance, attribute,
// or command source within ZCL.
type Side string

// Valid sides.
const (
	SideClient Side = "client"
	SideServer Side = "server"
)

// Cluster is one enabled cluster on an endpoint type, as returned by
// Store.ListClusters. The side comes from the endpoint-type-cluster
// association: the same cluster definition may be enabled on both sides.
type Cluster struct {
	// ID is the cluster's internal row id.
	ID int64

	// EndpointTypeID is the endpoint type the cluster is enabled on.
	EndpointTypeID int64

	// EndpointTypeClusterID is the association row id.
	EndpointTypeClusterID int64

	// Code is the 16-bit ZCL cluster code.
	Code int64

	// HexCode is Code rendered as "0x" + four uppercase hex digits.
	HexCode string

	// Name is the cluster name (e.g., "On/Off").
	Name string

	// ManufacturerCode is set for manufacturer-specific clusters.
	ManufacturerCode *int64

	// Side is the role the cluster is enabled as on this endpoint type.
	Side Side
}

// Attribute is one attribute visible for a (cluster, side, endpoint type)
// combination, merged with its per-endpoint-type overrides.
//
// Fields sourced from the endpoint-type-attribute association are pointers:
// they are nil when the outer join produced no association row.
type Attribute struct {
	// ID is the attribute's internal row id.
	ID int64

	// ClusterID echoes the cluster the listing was requested for. Global
	// attributes (null cluster reference) report the requested cluster here
	// rather than a cluster of their own.
	ClusterID int64

	// Code is the 16-bit ZCL attribute code.
	Code int64

	// ManufacturerCode is set for manufacturer-specific attributes.
	ManufacturerCode *int64

	// HexCode is Code rendered as "0x" + four uppercase hex digits.
	HexCode string

	// Name is the attribute name.
	Name string

	// Side is the attribute's client/server role.
	Side Side

	// Type is the ZCL data type name (e.g., "int16u", "enum8").
	Type string

	// ArrayType is the element type for array attributes, nil otherwise.
	ArrayType *string

	// MinLength and MaxLength bound string/octet attribute lengths.
	MinLength *int64
	MaxLength *int64

	// Min and Max bound numeric attribute values, stored as text.
	Min *string
	Max *string

	// Writable reports whether the attribute accepts writes.
	Writable bool

	// Define is the symbolic C define name for code generation.
	Define string

	// Per-endpoint-type overrides from the association row.

	// StorageOption selects RAM/NVM/external storage.
	StorageOption *string

	// Singleton marks a single shared instance across endpoints.
	Singleton *bool

	// Bounded enables min/max enforcement.
	Bounded *bool

	// Included reports whether the attribute is part of the configuration.
	Included *bool

	// DefaultValue is the configured default, stored as text.
	DefaultValue *string

	// IncludedReportable reports whether reporting is configured.
	IncludedReportable *bool

	// MinInterval and MaxInterval bound the reporting interval (seconds).
	MinInterval *int64
	MaxInterval *int64

	// ReportableChange is the minimum change that triggers a report.
	ReportableChange *int64
}

// Command is one command on a cluster associated with an endpoint type.
type Command struct {
	// ID is the command's internal row id.
	ID int64

	// Name is the command name (e.g., "Toggle").
	Name string

	// Code is the 8-bit ZCL command code.
	Code int64

	// HexCode is Code rendered as "0x" + two uppercase hex digits.
	HexCode string

	// ManufacturerCode is set for manufacturer-specific commands.
	ManufacturerCode *int64

	// Source is the side that sends the command.
	Source Side

	// Optional reports whether the command is optional in the cluster spec.
	Optional bool

	// Incoming and Outgoing are the configured directions on this endpoint type.
	Incoming bool
	Outgoing bool
}

// Endpoint is a configured protocol endpoint within a session.
//
// The (SessionID, EndpointIdentifier) pair is the natural key: inserting a
// second endpoint with the same pair replaces the first.
type Endpoint struct {
	// ID is the internal row id.
	ID int64

	// SessionID is the owning session.
	SessionID int64

	// EndpointIdentifier is the protocol-level endpoint number.
	EndpointIdentifier int64

	// EndpointTypeID references the endpoint type configuration.
	EndpointTypeID int64

	// Profile is the ZCL profile identifier (e.g., 260 for Home Automation).
	Profile int64

	// NetworkIdentifier selects the network the endpoint lives on.
	NetworkIdentifier int64

	// DeviceVersion is the device version advertised on the endpoint.
	DeviceVersion int64

	// DeviceIdentifier is the device identifier advertised on the endpoint.
	DeviceIdentifier int64
}
