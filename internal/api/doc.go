// Package api handles incoming HTTP requests: it decodes and validates
// payloads, calls the account and tour query services, and renders their
// results or errors as JSON.
//
// Error responses always have the shape {"error", "code", "trace_id"} where
// code is one of the stable codes declared in the shared package.
package api
