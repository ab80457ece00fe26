// Package auth issues and verifies bearer tokens and owns the credential
// rules: bcrypt hashing and the password policy applied at registration.
package auth
