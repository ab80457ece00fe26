// Package domain defines the marketplace entities (accounts, suppliers, tours,
// reviews) together with the rules that hold regardless of storage: role
// vocabulary, tour eligibility, the derived average rating and reviewer-name
// redaction.
package domain
