package endpoint

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nerrad567/zcl-config-core/internal/binutil"
)

// Store provides the endpoint configuration queries over a shared database
// handle. Every operation is a single round trip with no state between
// calls; transactional scope, if any, is the caller's via the handle.
//
// Absence of data is never an error: list operations return an empty slice,
// GetEndpoint returns nil, and DeleteEndpoint returns a zero count.
type Store struct {
	db       *sql.DB
	notifier *Notifier
}

// NewStore creates a store over an open database handle.
// The store neither opens nor closes the handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SetNotifier attaches a change notifier. Mutations publish best-effort
// events after they succeed; publish failures never fail the mutation.
func (s *Store) SetNotifier(n *Notifier) {
	s.notifier = n
}

// ListClusters returns the enabled clusters attached to an endpoint type,
// sorted ascending by cluster code. An unknown endpoint type or one with no
// enabled clusters yields an empty slice.
func (s *Store) ListClusters(ctx context.Context, endpointTypeID int64) ([]Cluster, error) {
	query := `
		SELECT c.id, etc.id, etc.endpoint_type_id, c.code, c.name, c.manufacturer_code, etc.side
		FROM clusters AS c
		INNER JOIN endpoint_type_clusters AS etc ON c.id = etc.cluster_id
		WHERE etc.enabled = 1 AND etc.endpoint_type_id = ?
		ORDER BY c.code`

	rows, err := s.db.QueryContext(ctx, query, endpointTypeID)
	if err != nil {
		return nil, fmt.Errorf("querying endpoint clusters: %w", err)
	}
	defer rows.Close()

	var clusters []Cluster
	for rows.Next() {
		var c Cluster
		var manufacturerCode sql.NullInt64
		var side string

		if err := rows.Scan(
			&c.ID,
			&c.EndpointTypeClusterID,
			&c.EndpointTypeID,
			&c.Code,
			&c.Name,
			&manufacturerCode,
			&side,
		); err != nil {
			return nil, fmt.Errorf("scanning cluster: %w", err)
		}

		c.ManufacturerCode = int64Ptr(manufacturerCode)
		c.Side = Side(side)
		c.HexCode = "0x" + binutil.HexUint16(uint16(c.Code))
		clusters = append(clusters, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clusters: %w", err)
	}

	return clusters, nil
}

// ListClusterAttributes returns the attributes visible for a (cluster, side,
// endpoint type) combination, merged with the per-endpoint-type overrides
// from the association row. Results are sorted by (manufacturer code, code)
// ascending.
//
// Global attributes (null cluster reference) are eligible under any cluster
// filter. The join to the association table is written as an outer join but
// the endpoint-type conditions in the WHERE clause make it effectively
// inner: an attribute with no association row for this exact (cluster, side,
// endpoint type) is excluded. If the association row itself does not exist,
// the result is empty.
func (s *Store) ListClusterAttributes(ctx context.Context, clusterID int64, side Side, endpointTypeID int64) ([]Attribute, error) {
	query := `
		SELECT
			a.id, a.code, a.name, a.side, a.type, a.array_type,
			a.min_length, a.max_length, a.min, a.max,
			a.manufacturer_code, a.is_writable, a.define,
			eta.storage_option, eta.singleton, eta.bounded, eta.included,
			eta.default_value, eta.included_reportable,
			eta.min_interval, eta.max_interval, eta.reportable_change
		FROM attributes AS a
		LEFT JOIN endpoint_type_attributes AS eta ON a.id = eta.attribute_id
		WHERE (a.cluster_id = ? OR a.cluster_id IS NULL)
			AND a.side = ?
			AND eta.endpoint_type_id = ?
			AND eta.endpoint_type_cluster_id = (
				SELECT id FROM endpoint_type_clusters
				WHERE cluster_id = ? AND side = ? AND endpoint_type_id = ?
			)
		ORDER BY a.manufacturer_code, a.code`

	rows, err := s.db.QueryContext(ctx, query,
		clusterID, string(side), endpointTypeID,
		clusterID, string(side), endpointTypeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying endpoint cluster attributes: %w", err)
	}
	defer rows.Close()

	var attributes []Attribute
	for rows.Next() {
		a, err := scanAttribute(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning attribute: %w", err)
		}
		a.ClusterID = clusterID
		attributes = append(attributes, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attributes: %w", err)
	}

	return attributes, nil
}

// ListClusterCommands returns the commands on a cluster that are associated
// with an endpoint type, sorted ascending by command code.
func (s *Store) ListClusterCommands(ctx context.Context, clusterID, endpointTypeID int64) ([]Command, error) {
	query := `
		SELECT cmd.id, cmd.name, cmd.code, cmd.manufacturer_code,
			cmd.is_optional, cmd.source, etcmd.incoming, etcmd.outgoing
		FROM commands AS cmd
		INNER JOIN endpoint_type_commands AS etcmd ON cmd.id = etcmd.command_id
		WHERE cmd.cluster_id = ? AND etcmd.endpoint_type_id = ?
		ORDER BY cmd.code`

	rows, err := s.db.QueryContext(ctx, query, clusterID, endpointTypeID)
	if err != nil {
		return nil, fmt.Errorf("querying endpoint cluster commands: %w", err)
	}
	defer rows.Close()

	var commands []Command
	for rows.Next() {
		var c Command
		var manufacturerCode sql.NullInt64
		var optional, incoming, outgoing int
		var source string

		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Code,
			&manufacturerCode,
			&optional,
			&source,
			&incoming,
			&outgoing,
		); err != nil {
			return nil, fmt.Errorf("scanning command: %w", err)
		}

		c.ManufacturerCode = int64Ptr(manufacturerCode)
		c.Source = Side(source)
		c.Optional = optional != 0
		c.Incoming = incoming != 0
		c.Outgoing = outgoing != 0
		// Command codes are 8-bit, unlike the 16-bit cluster/attribute codes.
		c.HexCode = "0x" + binutil.HexUint8(uint8(c.Code))
		commands = append(commands, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating commands: %w", err)
	}

	return commands, nil
}

// InsertEndpoint inserts an endpoint row, replacing any existing row with
// the same (session, endpoint identifier) key. It returns the new row's id.
//
// No validation is performed here: foreign key violations and other
// constraint failures propagate from the store.
func (s *Store) InsertEndpoint(ctx context.Context, e Endpoint) (int64, error) {
	query := `
		INSERT OR REPLACE INTO endpoints (
			session_id, endpoint_identifier, endpoint_type_id,
			network_identifier, device_identifier, device_version, profile
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		e.SessionID,
		e.EndpointIdentifier,
		e.EndpointTypeID,
		e.NetworkIdentifier,
		e.DeviceIdentifier,
		e.DeviceVersion,
		e.Profile,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting endpoint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted endpoint id: %w", err)
	}

	if s.notifier != nil {
		e.ID = id
		s.notifier.EndpointSaved(e)
	}

	return id, nil
}

// DeleteEndpoint deletes the endpoint row matching the given id and returns
// the number of rows deleted. A missing id yields count 0, not an error.
func (s *Store) DeleteEndpoint(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM endpoints WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting endpoint: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}

	if count > 0 && s.notifier != nil {
		s.notifier.EndpointDeleted(id)
	}

	return count, nil
}

// GetEndpoint returns the endpoint with the given id, or nil (with a nil
// error) when no row matches.
func (s *Store) GetEndpoint(ctx context.Context, id int64) (*Endpoint, error) {
	query := `
		SELECT id, session_id, endpoint_identifier, endpoint_type_id,
			profile, network_identifier, device_version, device_identifier
		FROM endpoints
		WHERE id = ?`

	row := s.db.QueryRowContext(ctx, query, id)
	e, err := scanEndpoint(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying endpoint by id: %w", err)
	}
	return e, nil
}
