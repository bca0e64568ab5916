// Package util provides small generic helpers for utilkit applications.
//
// It includes string formatting with optional trimming and lowercasing,
// fail-silent JSON parsing, and pointer/zero-value helpers.
package util
