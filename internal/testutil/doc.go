// Package testutil contains helper utilities used across tests to reduce
// boilerplate when constructing events and asserting renderer interactions.
// These helpers are intentionally minimal and avoid adding third‑party
// dependencies. They are not intended for production usage.
package testutil
