package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const helperEnv = "CONSTLINT_WANT_HELPER_PROCESS=1"

// TestHelperProcess is not a real test. It stands in for the audit program
// when started by helperTrigger.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("CONSTLINT_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for i, a := range args {
		if a == "--" {
			args = args[i+1:]
			break
		}
	}
	wd, _ := os.Getwd()
	fmt.Fprintf(os.Stdout, "args=%s\n", strings.Join(args, " "))
	fmt.Fprintf(os.Stdout, "dir=%s\n", wd)
	fmt.Fprintln(os.Stderr, "audit: 3 violations")
	if len(args) > 0 && args[0] == "sleep" {
		time.Sleep(time.Minute)
	}
	os.Exit(3)
}

func helperTrigger(dir string, stdout, stderr *bytes.Buffer, extra ...string) *Trigger {
	entry := append([]string{os.Args[0], "-test.run=TestHelperProcess", "--"}, extra...)
	return &Trigger{
		Entrypoint: entry,
		Dir:        dir,
		Env:        []string{helperEnv},
		Stdout:     stdout,
		Stderr:     stderr,
	}
}

func TestTrigger_Command(t *testing.T) {
	tests := []struct {
		name       string
		entrypoint []string
		want       []string
	}{
		{"default", nil, []string{"python", "run_agi_audit.py", "--full", "--target", "."}},
		{"custom", []string{"python3", "-m", "audit"}, []string{"python3", "-m", "audit", "--full", "--target", "."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Trigger{Entrypoint: tt.entrypoint}
			if got := tr.Command(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Command() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrigger_Command_DoesNotAlias(t *testing.T) {
	entry := make([]string, 2, 8)
	entry[0], entry[1] = "python", "x.py"
	tr := &Trigger{Entrypoint: entry}
	tr.Command()
	if got := entry[:cap(entry)][2]; got != "" {
		t.Errorf("Command() wrote %q into the entrypoint backing array", got)
	}
}

func TestTrigger_Start(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	run, err := helperTrigger(dir, &stdout, &stderr).Start(context.Background())
	if err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if run.Pid() <= 0 {
		t.Errorf("Pid() = %d, want positive", run.Pid())
	}

	err = run.Wait()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("Wait() = %v, want exit status 3", err)
	}

	if !strings.Contains(stdout.String(), "args=--full --target .\n") {
		t.Errorf("stdout = %q, want args --full --target .", stdout.String())
	}
	if got := stderr.String(); got != "audit: 3 violations\n" {
		t.Errorf("stderr = %q", got)
	}

	wantDir, _ := filepath.EvalSymlinks(dir)
	var gotDir string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if strings.HasPrefix(line, "dir=") {
			gotDir, _ = filepath.EvalSymlinks(strings.TrimPrefix(line, "dir="))
		}
	}
	if gotDir != wantDir {
		t.Errorf("audit ran in %q, want %q", gotDir, wantDir)
	}

	select {
	case <-run.Done():
	default:
		t.Error("Done() not closed after Wait()")
	}
}

func TestTrigger_StartIsNonBlocking(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	run, err := helperTrigger(t.TempDir(), &stdout, &stderr, "sleep").Start(ctx)
	if err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Start() took %v, want it to return immediately", elapsed)
	}

	select {
	case <-run.Done():
		t.Fatal("audit exited before cancellation")
	default:
	}

	cancel()
	if err := run.Wait(); err == nil {
		t.Error("Wait() = nil after cancellation, want error")
	}
}

func TestTrigger_StartFailure(t *testing.T) {
	tr := &Trigger{
		Entrypoint: []string{filepath.Join(t.TempDir(), "no-such-audit")},
		Dir:        t.TempDir(),
	}
	run, err := tr.Start(context.Background())
	if err == nil {
		t.Fatalf("Start() = %v, nil; want error", run)
	}
	if !strings.Contains(err.Error(), "no-such-audit") {
		t.Errorf("Start() error = %v, want it to name the program", err)
	}
}

func TestCommandName(t *testing.T) {
	if CommandName != "constlint.auditProject" {
		t.Errorf("CommandName = %q", CommandName)
	}
}
