// Package shared holds the request context keys, JSON helpers and error
// response format used by both the api package and its middleware.
package shared
