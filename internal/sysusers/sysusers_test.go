package sysusers

import (
	"os"
	"reflect"
	"testing"
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

func writeEtc(t *testing.T, root *os.Root, passwd, group string) {
	t.Helper()
	if err := root.MkdirAll("etc", 0o755); err != nil {
		t.Fatal(err)
	}
	if passwd != "" {
		if err := root.WriteFile("etc/passwd", []byte(passwd), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if group != "" {
		if err := root.WriteFile("etc/group", []byte(group), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func writeSysusers(t *testing.T, root *os.Root, name, content string) {
	t.Helper()
	if err := root.MkdirAll(FragmentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := root.WriteFile(FragmentDir+"/"+name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyzeNoEtc(t *testing.T) {
	root := testRoot(t)
	a, err := Analyze(root)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !a.Empty() {
		t.Errorf("expected empty analysis, got %+v", a)
	}
}

func TestAnalyzeMissingDeclarations(t *testing.T) {
	root := testRoot(t)
	writeEtc(t, root,
		"root:x:0:0:root:/root:/bin/bash\nbin:x:1:1:bin:/bin:/sbin/nologin\n",
		"root:x:0:\nbin:x:1:\nwheel:x:10:\n")
	writeSysusers(t, root, "base.conf", "u root 0 \"Super User\" /root /bin/bash\n")

	a, err := Analyze(root)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if want := []string{"bin"}; !reflect.DeepEqual(a.MissingUsers, want) {
		t.Errorf("MissingUsers = %v, want %v", a.MissingUsers, want)
	}
	// The u line for root covers the root group too.
	if want := []string{"bin", "wheel"}; !reflect.DeepEqual(a.MissingGroups, want) {
		t.Errorf("MissingGroups = %v, want %v", a.MissingGroups, want)
	}
}

func TestAnalyzeFullCoverage(t *testing.T) {
	root := testRoot(t)
	writeEtc(t, root,
		"root:x:0:0:root:/root:/bin/bash\ndaemon:x:2:2::/:/sbin/nologin\n",
		"root:x:0:\ndaemon:x:2:\nutmp:x:22:\n")
	writeSysusers(t, root, "base.conf", `u root 0 "Super User" /root /bin/bash
u! daemon 2 "Daemon" / /sbin/nologin
g utmp 22
m root utmp
`)

	a, err := Analyze(root)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !a.Empty() {
		t.Errorf("expected coverage, got %+v", a)
	}
}

func TestAnalyzeIgnoresNonConfFiles(t *testing.T) {
	root := testRoot(t)
	writeEtc(t, root, "svc:x:90:90::/:/sbin/nologin\n", "")
	writeSysusers(t, root, "notes.txt", "u svc 90\n")

	a, err := Analyze(root)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if want := []string{"svc"}; !reflect.DeepEqual(a.MissingUsers, want) {
		t.Errorf("MissingUsers = %v, want %v", a.MissingUsers, want)
	}
}
