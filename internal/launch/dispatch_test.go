package launch

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lgorenstein/sinteractive/internal/config"
	"github.com/lgorenstein/sinteractive/internal/scheduler"
)

// stubProbe returns a fixed profile without touching scontrol.
type stubProbe struct {
	profile scheduler.Profile
}

func (s stubProbe) ProbeScheduler() scheduler.Profile { return s.profile }

// recordingLauncher captures the plan instead of replacing the process.
type recordingLauncher struct {
	plan     *Plan
	launched bool
}

func (r *recordingLauncher) Launch(plan Plan) error {
	r.plan = &plan
	r.launched = true
	return nil
}

func TestDispatchIntegratedStep(t *testing.T) {
	config.LoadDefaults()

	var rec recordingLauncher
	probe := stubProbe{profile: scheduler.Profile{InteractiveStep: true, Major: 23, Minor: 2}}
	if err := Dispatch(Request{}, probe, &rec); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	want := []string{"salloc", "-J", "interactive", "--bell"}
	if !reflect.DeepEqual(rec.plan.Argv, want) {
		t.Errorf("Argv = %v; want %v", rec.plan.Argv, want)
	}
}

func TestDispatchLegacyShellWrap(t *testing.T) {
	config.LoadDefaults()
	shell := writeFakeShell(t, t.TempDir(), "sh", 0755)
	t.Setenv("SHELL", shell)

	var rec recordingLauncher
	probe := stubProbe{profile: scheduler.Profile{Major: 21, Minor: 8}}
	req := Request{UserTokens: []string{"-t", "1:00:00"}}
	if err := Dispatch(req, probe, &rec); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	want := []string{
		"salloc", "-J", "interactive", "--bell", "-t", "1:00:00",
		"srun", "--pty", "--cpu-bind=none", shell, "-l",
	}
	if !reflect.DeepEqual(rec.plan.Argv, want) {
		t.Errorf("Argv = %v; want %v", rec.plan.Argv, want)
	}
}

func TestDispatchShellFailureBlocksLaunch(t *testing.T) {
	config.LoadDefaults()
	dir := t.TempDir()
	t.Setenv("SHELL", "")
	config.Global.DefaultShell = dir + "/missing"
	defer config.LoadDefaults()

	restore := passwdPath
	passwdPath = writePasswdFixture(t, dir, "somebody-else", "/bin/false")
	defer func() { passwdPath = restore }()

	var rec recordingLauncher
	probe := stubProbe{profile: scheduler.Profile{Major: 20, Minor: 2}}
	err := Dispatch(Request{}, probe, &rec)
	if !errors.Is(err, ErrShellNotExecutable) {
		t.Errorf("err = %v; want ErrShellNotExecutable", err)
	}
	if rec.launched {
		t.Error("launcher ran despite shell resolution failure")
	}
}

func TestDispatchProtocolPinIntegrated(t *testing.T) {
	config.LoadDefaults()
	config.Global.ForceProtocol = config.ProtocolIntegrated
	defer config.LoadDefaults()

	var rec recordingLauncher
	// Probe says legacy; the pin overrides it
	probe := stubProbe{profile: scheduler.Profile{Major: 22, Minor: 5}}
	if err := Dispatch(Request{}, probe, &rec); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	for _, tok := range rec.plan.Argv {
		if tok == "srun" {
			t.Errorf("Argv = %v; pinned integrated protocol must not wrap srun", rec.plan.Argv)
		}
	}
}

func TestDispatchProtocolPinLegacy(t *testing.T) {
	config.LoadDefaults()
	config.Global.ForceProtocol = config.ProtocolLegacy
	defer config.LoadDefaults()
	shell := writeFakeShell(t, t.TempDir(), "sh", 0755)
	t.Setenv("SHELL", shell)

	var rec recordingLauncher
	probe := stubProbe{profile: scheduler.Profile{InteractiveStep: true, Major: 22, Minor: 5}}
	if err := Dispatch(Request{}, probe, &rec); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	found := false
	for _, tok := range rec.plan.Argv {
		if tok == "srun" {
			found = true
		}
	}
	if !found {
		t.Errorf("Argv = %v; pinned legacy protocol must include the srun wrap", rec.plan.Argv)
	}
}
