// Package service contains the application use cases of the marketplace:
// account registration and login, and the read-only tour query engine.
//
// Services coordinate domain objects and the store interfaces defined in
// internal/store. They own transaction boundaries (store.RunInTransaction)
// and translate store failures into the sentinel errors declared in
// errors.go, which the API layer maps to HTTP status codes.
//
// Services never depend on a concrete storage implementation.
package service
