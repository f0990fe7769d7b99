// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The central entity is User, which owns exactly one Account. Account
// numbers are unique across all users; that rule is enforced by the service
// and store layers since it requires knowledge of other users.
package domain
