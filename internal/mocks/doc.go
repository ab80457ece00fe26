// Package mocks provides testify-based mock implementations of the store, auth and
// service interfaces, shared by the service, API and server tests.
//
// Usage:
//
//	accounts := new(mocks.MockAccountStore)
//	accounts.On("GetByEmail", mock.Anything, "jane@example.com").Return(account, nil)
//
// WithTx on the store mocks returns the receiver, so expectations set on a
// mock also apply inside a transaction.
package mocks
