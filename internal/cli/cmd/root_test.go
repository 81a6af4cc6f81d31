package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "binary default", args: []string{"44040192"}, want: "42.0MiB\n"},
		{name: "fmt subcommand", args: []string{"fmt", "1024"}, want: "1.0KiB\n"},
		{name: "si", args: []string{"--si", "42000000"}, want: "42.0MB\n"},
		{name: "si precision", args: []string{"--si", "-p", "4", "1999999999"}, want: "1.9999GB\n"},
		{name: "zero precision", args: []string{"--si", "-p", "0", "1999999999"}, want: "1GB\n"},
		{name: "comma separator", args: []string{"--si", "--comma", "1999"}, want: "1,9kB\n"},
		{name: "empty unit", args: []string{"--si", "-u", "", "4000"}, want: "4.0k\n"},
		{name: "multiple values", args: []string{"1024", "2048"}, want: "1.0KiB\n2.0KiB\n"},
		{
			name: "custom millimeter scale",
			args: []string{"--scale-base", "1000", "--scale-labels", "m,,k", "-u", "m", "10000000000"},
			want: "10000.0km\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("execute(%v): %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestFormatFromStdin(t *testing.T) {
	got, err := execute(t, "1999\n\n678\n", "--si", "-p", "10")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "1.999kB\n678B\n"; got != want {
		t.Errorf("stdin format = %q, want %q", got, want)
	}
}

func TestLsCommand(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "blob.bin")
	if err := os.WriteFile(file, make([]byte, 1536), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "small.bin"), make([]byte, 512), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := execute(t, "", "ls", file, tmp)
	if err != nil {
		t.Fatalf("execute ls: %v", err)
	}
	want := fmt.Sprintf("%12s  %s\n%12s  %s\n", "1.5KiB", file, "2.0KiB", tmp)
	if got != want {
		t.Errorf("ls output = %q, want %q", got, want)
	}
}

func TestLsVerboseReportsSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cannot make a directory unreadable on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "a.bin"), make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	locked := filepath.Join(tmp, "locked")
	if err := os.Mkdir(locked, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "hidden.bin"), make([]byte, 50), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	run := func(args ...string) (string, string) {
		t.Helper()
		root := newRootCmd()
		var out, errOut bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&errOut)
		root.SetIn(strings.NewReader(""))
		root.SetArgs(args)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("execute(%v): %v", args, err)
		}
		return out.String(), errOut.String()
	}

	out, errOut := run("ls", "-v", tmp)
	if !strings.Contains(out, "100B") {
		t.Errorf("stdout = %q, want readable total", out)
	}
	if !strings.Contains(errOut, "skipped 1 unreadable") {
		t.Errorf("stderr = %q, want skipped-entry report", errOut)
	}

	// Without --verbose the report is suppressed.
	_, errOut = run("ls", tmp)
	if errOut != "" {
		t.Errorf("stderr without --verbose = %q, want empty", errOut)
	}
}

// Output redirected to a buffer is never width-capped, whatever the
// process's stdout happens to be attached to.
func TestLsBufferedOutputNotTruncated(t *testing.T) {
	tmp := t.TempDir()
	long := filepath.Join(tmp, strings.Repeat("d", 120)+".bin")
	if err := os.WriteFile(long, make([]byte, 10), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := execute(t, "", "ls", long)
	if err != nil {
		t.Fatalf("execute ls: %v", err)
	}
	if !strings.Contains(got, long) {
		t.Errorf("ls output = %q, want untruncated path %q", got, long)
	}
}

func TestLsMissingPath(t *testing.T) {
	_, err := execute(t, "", "ls", filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("ls on missing path succeeded, want error")
	}
	var ee *ExitError
	if !errors.As(err, &ee) || ee.Code != ExitScanError {
		t.Errorf("err = %v, want ExitError with code %d", err, ExitScanError)
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "not a number", args: []string{"12x3"}},
		{name: "negative value", args: []string{"-5"}},
		{name: "negative precision", args: []string{"-p", "-1", "1024"}},
		{name: "labels without base", args: []string{"--scale-labels", "m,,k", "1024"}},
		{name: "base without labels", args: []string{"--scale-base", "1000", "1024"}},
		{name: "invalid custom base", args: []string{"--scale-base", "1", "--scale-labels", "a,b", "1024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if err == nil {
				t.Fatalf("execute(%v) succeeded, want error", tt.args)
			}
			var ee *ExitError
			if errors.As(err, &ee) && ee.Code != ExitCLIError {
				t.Errorf("exit code = %d, want %d", ee.Code, ExitCLIError)
			}
		})
	}
}
