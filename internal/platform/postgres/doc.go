// Package postgres implements the store interfaces on PostgreSQL via the
// pgx stdlib driver. Each store accepts a store.DBTX so the same code
// runs on a plain connection or inside a transaction.
package postgres
