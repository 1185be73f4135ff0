// Package errors defines the sentinel errors shared across the SDK's
// internal packages. The root package re-exports them for callers.
package errors
