// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd executes the root command with args and stdin, resetting flag state
// left over from earlier runs.
func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	verbose = false
	buildInputFile = ""
	buildOutputFile = ""

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestBuild_PrintsTextDump(t *testing.T) {
	stdout, _, err := runCmd(t, "", "build", "EFCT", "AMPL", "2", "SLNC", "1", "4", "4")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if want := "1 4 4\n0 0 0 0\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestBuild_FromStdin(t *testing.T) {
	stdout, _, err := runCmd(t, "SLNC 0.5 4 2\nBOGUS\n", "build")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if want := "0.5 4 2\n0 0\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestBuild_SaveAndInfo(t *testing.T) {
	dir := t.TempDir()
	cmdFile := filepath.Join(dir, "tone.cmd")
	out := filepath.Join(dir, "tone.wav")

	if err := os.WriteFile(cmdFile, []byte("EFCT NORM 0.5 GNRT SINE 50 1000 0.1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCmd(t, "", "build", "-v", "-f", cmdFile, "-o", out)
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if !strings.Contains(stderr, "graph built") || !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("stderr missing debug log: %s", stderr)
	}
	if !strings.Contains(stderr, "msg=wrote") {
		t.Errorf("stderr missing write log: %s", stderr)
	}

	stdout, _, err := runCmd(t, "", "info", out)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	for _, want := range []string{"Duration:    0.1s", "Sample rate: 1000 Hz", "Samples:     100", "Peak:        0.5000"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("info output missing %q:\n%s", want, stdout)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown command", []string{"build", "BOGUS"}, "unknown command"},
		{"malformed", []string{"build", "SLNC", "x", "1", "1"}, "malformed command"},
		{"args and file", []string{"build", "-f", "x.cmd", "SLNC", "1", "1", "1"}, "not both"},
		{"bad output", []string{"build", "-o", "x.mp3", "SLNC", "1", "1", "1"}, "unsupported format"},
		{"info missing file", []string{"info", "does-not-exist.wav"}, "i/o failure"},
		{"info no args", []string{"info"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, "", tt.args...)
			if err == nil {
				t.Fatalf("%v: error = nil, want %q", tt.args, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("%v: error = %v, want %q", tt.args, err, tt.wantErr)
			}
		})
	}
}
