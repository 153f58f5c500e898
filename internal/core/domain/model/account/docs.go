// Package account holds the marketplace account entities: customers,
// establishments, and couriers. Every entry point authorizes the caller by
// presenting the owning account's six-digit access code.
package account
