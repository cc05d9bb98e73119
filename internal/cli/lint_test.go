package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rootlint/internal/config"
	"rootlint/internal/engine"
	"rootlint/internal/lint"
	_ "rootlint/internal/lint/checks"

	"github.com/spf13/cobra"
)

// buildPassingTree materializes a tree every rule is content with and
// returns its path.
func buildPassingTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mk := func(rel string) {
		if err := os.MkdirAll(filepath.Join(dir, rel), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	write := func(rel, content string) {
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for _, d := range []string{"dev", "proc", "sys", "run", "tmp", "var"} {
		mk(d)
	}
	mk("usr/lib/modules/5.7.2")
	write("usr/lib/modules/5.7.2/vmlinuz", "vmlinuz")
	mk("boot")
	mk("sysroot")
	if err := os.Symlink("sysroot/ostree", filepath.Join(dir, "ostree")); err != nil {
		t.Fatal(err)
	}
	mk("usr/lib/ostree")
	write("usr/lib/ostree/prepare-root.conf", "[composefs]\nenabled = true\n")
	return dir
}

func TestResolveRootType(t *testing.T) {
	cfg := config.New()
	rt, err := resolveRootType(cfg)
	if err != nil {
		t.Fatalf("resolveRootType: %v", err)
	}
	if rt != lint.RootTypeRunning {
		t.Errorf("rootfs / resolved to %s, want running", rt)
	}

	cfg.Target.Rootfs = "/some/unpacked/root"
	rt, err = resolveRootType(cfg)
	if err != nil {
		t.Fatalf("resolveRootType: %v", err)
	}
	if rt != lint.RootTypeAlternative {
		t.Errorf("non-/ rootfs resolved to %s, want alternative", rt)
	}

	// An explicit declaration wins over detection.
	cfg.Target.RootType = "running"
	rt, err = resolveRootType(cfg)
	if err != nil {
		t.Fatalf("resolveRootType: %v", err)
	}
	if rt != lint.RootTypeRunning {
		t.Errorf("explicit root type resolved to %s, want running", rt)
	}

	cfg.Target.RootType = "chroot"
	if _, err := resolveRootType(cfg); err == nil {
		t.Error("expected error for unknown root type")
	}
}

func TestExitCodeForRun(t *testing.T) {
	if code := exitCodeForRun(nil); code != 0 {
		t.Errorf("nil error: code = %d, want 0", code)
	}
	if code := exitCodeForRun(&engine.ChecksFailedError{Count: 3}); code != 1 {
		t.Errorf("checks failed: code = %d, want 1", code)
	}
	if code := exitCodeForRun(errors.New("walking target root: permission denied")); code != 2 {
		t.Errorf("runtime error: code = %d, want 2", code)
	}
}

func TestRunLint(t *testing.T) {
	dir := buildPassingTree(t)
	cfg := config.New()
	cfg.Target.Rootfs = dir

	cmd := &cobra.Command{Use: "lint"}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if code := runLint(cmd, cfg); code != 0 {
		t.Fatalf("exit code = %d, want 0; transcript=%s", code, buf.String())
	}
	if want := "Checks passed: 12\nChecks skipped: 1\n"; buf.String() != want {
		t.Errorf("transcript = %q, want %q", buf.String(), want)
	}

	// A physical /var/run fails the run.
	if err := os.Mkdir(filepath.Join(dir, "var/run"), 0o755); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if code := runLint(cmd, cfg); code != 1 {
		t.Fatalf("exit code = %d, want 1; transcript=%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Failed lint: var-run: Not a symlink: var/run\n") {
		t.Errorf("transcript = %q", buf.String())
	}
}

func TestRunLintMissingTarget(t *testing.T) {
	cfg := config.New()
	cfg.Target.Rootfs = filepath.Join(t.TempDir(), "absent")

	cmd := &cobra.Command{Use: "lint"}
	cmd.SetOut(io.Discard)
	if code := runLint(cmd, cfg); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
