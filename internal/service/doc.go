// Package service contains the application use cases. It orchestrates domain
// objects and the repositories defined in internal/store.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete infrastructure implementation. Transactions are started
// through store.TxRunner so a use case spanning several store calls commits or
// rolls back as a unit.
//
// Store errors are translated to the service errors declared in errors.go,
// which the API layer maps to HTTP status codes.
package service
