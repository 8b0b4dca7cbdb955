// Package store defines the persistence interfaces the services depend
// on, the sentinel errors implementations must return, and the shared
// transaction helper. Concrete implementations live in
// internal/platform/postgres.
package store
