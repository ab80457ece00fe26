// Package middleware contains the HTTP middleware of the API: trace IDs and
// request loggers, per-route metrics, and bearer-token authentication with
// role checks.
package middleware
