// Package database provides the SQLite persistence layer for ZCL Config Core.
//
// It wraps database/sql with lifecycle management, embedded schema
// migrations, and health checks. The endpoint configuration store and the
// session registry operate on the connection this package opens; they never
// open or close connections themselves.
//
// # Usage
//
//	db, err := database.Open(ctx, database.Config{
//	    Path:        "./data/zclconf.db",
//	    WALMode:     true,
//	    BusyTimeout: 5,
//	})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// # Migrations
//
// Migration files are embedded via the migrations package and follow the
// naming convention YYYYMMDD_HHMMSS_description.up.sql (with an optional
// matching .down.sql). Each migration runs in its own transaction and is
// recorded in schema_migrations.
//
// # Concurrency
//
// The pool is limited to a single open connection: SQLite allows one writer,
// and the configuration workload is light. WAL mode keeps readers unblocked
// during writes.
package database
