package scheduler

import "testing"

func TestSelectProtocolIntegratedStepNeverWarns(t *testing.T) {
	versions := []Profile{
		{InteractiveStep: true, Major: 20, Minor: 2},
		{InteractiveStep: true, Major: 20, Minor: 11},
		{InteractiveStep: true, Major: 21, Minor: 8},
		{InteractiveStep: true, Major: 23, Minor: 2},
		{InteractiveStep: true}, // unknown version
	}
	for _, prof := range versions {
		strategy, warn := SelectProtocol(prof)
		if strategy != IntegratedStep {
			t.Errorf("SelectProtocol(%+v) strategy = %v; want IntegratedStep", prof, strategy)
		}
		if warn {
			t.Errorf("SelectProtocol(%+v) warn = true; want false", prof)
		}
	}
}

func TestSelectProtocolLegacyWarnsFromTwentyOne(t *testing.T) {
	for _, tc := range []struct{ major, minor int }{
		{21, 0}, {21, 5}, {21, 8}, {22, 0}, {23, 11},
	} {
		prof := Profile{Major: tc.major, Minor: tc.minor}
		strategy, warn := SelectProtocol(prof)
		if strategy != LegacyShellWrap {
			t.Errorf("SelectProtocol(%d.%d) strategy = %v; want LegacyShellWrap", tc.major, tc.minor, strategy)
		}
		if !warn {
			t.Errorf("SelectProtocol(%d.%d) warn = false; want true", tc.major, tc.minor)
		}
	}
}

func TestSelectProtocolTwentyElevenBoundary(t *testing.T) {
	for _, tc := range []struct {
		minor int
		warn  bool
	}{
		{10, false},
		{11, true},
		{12, true},
		{13, false}, // the check is literal: only .11 and .12 of 20.x
	} {
		prof := Profile{Major: 20, Minor: tc.minor}
		strategy, warn := SelectProtocol(prof)
		if strategy != LegacyShellWrap {
			t.Errorf("SelectProtocol(20.%d) strategy = %v; want LegacyShellWrap", tc.minor, strategy)
		}
		if warn != tc.warn {
			t.Errorf("SelectProtocol(20.%d) warn = %v; want %v", tc.minor, warn, tc.warn)
		}
	}
}

func TestSelectProtocolUnknownVersionStaysQuiet(t *testing.T) {
	strategy, warn := SelectProtocol(Profile{})
	if strategy != LegacyShellWrap {
		t.Errorf("strategy = %v; want LegacyShellWrap", strategy)
	}
	if warn {
		t.Error("warn = true; want false for unknown version")
	}
}
