// Package endpoint provides the endpoint configuration query service for
// ZCL Config Core.
//
// It exposes typed queries over the relational schema describing ZCL
// endpoint configuration: which clusters an endpoint type enables, which
// attributes and commands those clusters carry for it, and the endpoints a
// session has configured. Each operation issues exactly one parameterized
// SQL statement against a caller-supplied handle and maps the rows into
// plain record types.
//
// # Key Types
//
//   - Store: the query service (six operations, stateless between calls)
//   - Cluster, Attribute, Command: per-endpoint-type listing records
//   - Endpoint: a configured endpoint row (upsert-by-natural-key semantics)
//   - Notifier: optional MQTT change events for mutations
//
// # Usage
//
//	store := endpoint.NewStore(db.DB)
//
//	clusters, err := store.ListClusters(ctx, endpointTypeID)
//	attrs, err := store.ListClusterAttributes(ctx, clusterID, endpoint.SideServer, endpointTypeID)
//	cmds, err := store.ListClusterCommands(ctx, clusterID, endpointTypeID)
//
//	id, err := store.InsertEndpoint(ctx, endpoint.Endpoint{
//	    SessionID:          sessionID,
//	    EndpointIdentifier: 1,
//	    EndpointTypeID:     endpointTypeID,
//	    Profile:            260,
//	    DeviceVersion:      1,
//	})
//	ep, err := store.GetEndpoint(ctx, id) // nil when absent
//	count, err := store.DeleteEndpoint(ctx, id)
//
// # Error Contract
//
// Store failures propagate wrapped with operation context only; there is no
// error translation and no retry. Absence of data is not an error: lists
// come back empty, GetEndpoint returns nil, DeleteEndpoint returns 0.
//
// # Concurrency
//
// The Store holds no mutable state and is safe for concurrent use to the
// extent the underlying *sql.DB is. It performs no locking or transaction
// coordination of its own; callers sequence or wrap operations as needed.
package endpoint
