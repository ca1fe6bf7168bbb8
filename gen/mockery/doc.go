// Package mockery holds generated testify mocks. Regenerate with `go tool mockery`
// from the tools module.
package mockery
