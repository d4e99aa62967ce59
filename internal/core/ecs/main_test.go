package ecs

import (
	"os"
	"testing"

	"go.uber.org/zap"
)

// Component types shared by the tests in this package. Component IDs are
// process-wide, so the whole test binary draws from one 64-ID budget.
type testName struct {
	Name string
}

type testPosition struct {
	X, Y float64
}

type testVelocity struct {
	DX, DY float64
}

type testHealth struct {
	Current, Max int
}

type testTag struct {
	Kind int
}

func TestMain(m *testing.M) {
	// Keep expected warnings (exhaustion, out-of-range probes) out of the
	// test output; tests that assert on log lines install observer cores.
	SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

// newTestRegistry returns a registry with the shared test types
// registered.
func newTestRegistry() *Registry {
	r := NewRegistry()
	Register[testName](r)
	Register[testPosition](r)
	Register[testVelocity](r)
	Register[testHealth](r)
	Register[testTag](r)
	return r
}
