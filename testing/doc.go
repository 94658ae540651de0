// Package testing provides test helpers for the stratify library:
// a types.Logger that writes to testing.T, and record fixtures for
// building sampling pools in tests.
package testing
