package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode selects environment-dependent behavior such as config file discovery.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// ForProduction is used by the hermes command. It provides a nil *testing.T.
func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

type ModuleForProduction struct {
	dscope.Module
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ForTest puts a scope in development mode, so only config files of the
// working directory are read.
func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
