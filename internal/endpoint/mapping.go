package endpoint

import (
	"database/sql"

	"github.com/nerrad567/zcl-config-core/internal/binutil"
)

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEndpoint maps a raw endpoint row into an Endpoint record.
// sql.ErrNoRows propagates to the caller, which converts it to absence.
func scanEndpoint(scanner rowScanner) (*Endpoint, error) {
	var e Endpoint
	err := scanner.Scan(
		&e.ID,
		&e.SessionID,
		&e.EndpointIdentifier,
		&e.EndpointTypeID,
		&e.Profile,
		&e.NetworkIdentifier,
		&e.DeviceVersion,
		&e.DeviceIdentifier,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// scanAttribute maps an attribute row joined with its (possibly absent)
// endpoint-type association into an Attribute record. Association columns
// come through as SQL nulls when the outer join produced no row and are
// mapped to nil pointers.
func scanAttribute(scanner rowScanner) (*Attribute, error) {
	var a Attribute
	var side string
	var arrayType sql.NullString
	var minLength, maxLength sql.NullInt64
	var minValue, maxValue sql.NullString
	var manufacturerCode sql.NullInt64
	var writable int
	var storageOption, defaultValue sql.NullString
	var singleton, bounded, included, includedReportable sql.NullInt64
	var minInterval, maxInterval, reportableChange sql.NullInt64

	err := scanner.Scan(
		&a.ID,
		&a.Code,
		&a.Name,
		&side,
		&a.Type,
		&arrayType,
		&minLength,
		&maxLength,
		&minValue,
		&maxValue,
		&manufacturerCode,
		&writable,
		&a.Define,
		&storageOption,
		&singleton,
		&bounded,
		&included,
		&defaultValue,
		&includedReportable,
		&minInterval,
		&maxInterval,
		&reportableChange,
	)
	if err != nil {
		return nil, err
	}

	a.Side = Side(side)
	a.Writable = writable != 0
	a.HexCode = "0x" + binutil.HexUint16(uint16(a.Code))

	a.ArrayType = stringPtr(arrayType)
	a.MinLength = int64Ptr(minLength)
	a.MaxLength = int64Ptr(maxLength)
	a.Min = stringPtr(minValue)
	a.Max = stringPtr(maxValue)
	a.ManufacturerCode = int64Ptr(manufacturerCode)

	a.StorageOption = stringPtr(storageOption)
	a.Singleton = boolPtr(singleton)
	a.Bounded = boolPtr(bounded)
	a.Included = boolPtr(included)
	a.DefaultValue = stringPtr(defaultValue)
	a.IncludedReportable = boolPtr(includedReportable)
	a.MinInterval = int64Ptr(minInterval)
	a.MaxInterval = int64Ptr(maxInterval)
	a.ReportableChange = int64Ptr(reportableChange)

	return &a, nil
}

// int64Ptr converts a nullable integer column to an optional field.
func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

// stringPtr converts a nullable text column to an optional field.
func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

// boolPtr converts a nullable 0/1 column to an optional flag.
func boolPtr(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}
