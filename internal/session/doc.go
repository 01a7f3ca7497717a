// Package session manages configuration workspaces for ZCL Config Core.
//
// A session owns the endpoint types and endpoints a connected tool
// configures. Sessions are identified externally by an opaque UUID key and
// internally by their row id, which the endpoint tables reference with
// cascading deletes.
package session
