package checks

import (
	"bytes"
	"sort"
	"testing"

	"rootlint/internal/lint"

	"gopkg.in/yaml.v3"
)

func TestRegisteredRules(t *testing.T) {
	rules := lint.All()
	if len(rules) != 13 {
		t.Fatalf("registered %d rules, want 13", len(rules))
	}
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
		if r.Description == "" {
			t.Errorf("rule %s has no description", r.Name)
		}
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("registration order is not name order: %v", names)
	}

	byName := make(map[string]lint.Rule, len(rules))
	for _, r := range rules {
		byName[r.Name] = r
	}
	if r := byName["utf8"]; !r.PerNode() {
		t.Error("utf8 should be a per-entry rule")
	}
	if r := byName["buildah-injected"]; r.RootType == nil || *r.RootType != lint.RootTypeAlternative {
		t.Error("buildah-injected should only apply to alternative roots")
	}
	if r := byName["var-tmpfiles"]; r.RootType == nil || *r.RootType != lint.RootTypeRunning {
		t.Error("var-tmpfiles should only apply to the running root")
	}
	if r := byName["var-run"]; r.Severity != lint.SeverityFatal {
		t.Error("var-run should be fatal")
	}
	if r := byName["var-log"]; r.Severity != lint.SeverityWarning {
		t.Error("var-log should be a warning")
	}
}

func TestListCoversEveryRule(t *testing.T) {
	var buf bytes.Buffer
	if err := lint.WriteList(&buf); err != nil {
		t.Fatalf("WriteList: %v", err)
	}
	var listed []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &listed); err != nil {
		t.Fatalf("unmarshal listing: %v", err)
	}
	if len(listed) != len(lint.All()) {
		t.Errorf("listing has %d entries, want %d", len(listed), len(lint.All()))
	}
}
