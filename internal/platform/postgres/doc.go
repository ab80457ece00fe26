// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, together with the
// embedded schema migrations.
//
// Account and supplier writes use hand-written SQL against store.DBTX so they
// can join a caller's transaction. Tour reads are built with goqu because the
// search predicate is assembled from optional filters.
package postgres
