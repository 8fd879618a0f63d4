// Package database handles database connections for the Products API.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration. A sqlite driver is also
// supported, primarily for tests and local development against an in-memory database.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It configures
// the connection pool, I/O timeouts and verifies connectivity with a ping before
// returning the handle.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
