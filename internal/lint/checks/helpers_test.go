package checks

import (
	"os"
	"testing"

	"rootlint/internal/lint"
)

func testRoot(t *testing.T) *os.Root {
	t.Helper()
	root, err := os.OpenRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { root.Close() })
	return root
}

func mkdirAll(t *testing.T, root *os.Root, name string) {
	t.Helper()
	if err := root.MkdirAll(name, 0o755); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, root *os.Root, name, content string) {
	t.Helper()
	if err := root.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func symlink(t *testing.T, root *os.Root, target, link string) {
	t.Helper()
	if err := root.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
}

func removeAll(t *testing.T, root *os.Root, name string) {
	t.Helper()
	if err := root.RemoveAll(name); err != nil {
		t.Fatal(err)
	}
}

// passingFixture builds a minimal tree that every rule is content with.
func passingFixture(t *testing.T) *os.Root {
	t.Helper()
	root := testRoot(t)
	for _, d := range apiDirs {
		mkdirAll(t, root, d)
	}
	mkdirAll(t, root, "usr/lib/modules/5.7.2")
	writeFile(t, root, "usr/lib/modules/5.7.2/vmlinuz", "vmlinuz")
	mkdirAll(t, root, "boot")
	mkdirAll(t, root, "sysroot")
	symlink(t, root, "sysroot/ostree", "ostree")
	mkdirAll(t, root, "usr/lib/ostree")
	writeFile(t, root, "usr/lib/ostree/prepare-root.conf", "[composefs]\nenabled = true\n")
	return root
}

func mustPass(t *testing.T, check lint.CheckFunc, root *os.Root) {
	t.Helper()
	res, err := check(root)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Failed() {
		t.Fatalf("check failed: %s", res.Message)
	}
}

func mustFail(t *testing.T, check lint.CheckFunc, root *os.Root) string {
	t.Helper()
	res, err := check(root)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.Failed() {
		t.Fatal("check passed, want failure")
	}
	return res.Message
}
