// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of query execution, error mapping, and data
// mapping between domain entities and database records.
//
// The schema is versioned with goose; the SQL files under migrations/ are
// embedded in the binary and applied through Migrate.
package postgres
