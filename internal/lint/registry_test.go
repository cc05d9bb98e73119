package lint

import (
	"os"
	"strings"
	"testing"

	"rootlint/internal/fswalk"
)

// resetRegistry clears registration state so tests compose freely.
func resetRegistry() {
	mu.Lock()
	registry = nil
	names = make(map[string]struct{})
	mu.Unlock()
}

func passCheck(root *os.Root) (Result, error) {
	return PassResult(), nil
}

func passEntryCheck(e *fswalk.Entry) (Result, error) {
	return PassResult(), nil
}

func TestRegistry(t *testing.T) {
	resetRegistry()

	Register(NewFatal("rule-b", "b", passCheck))
	Register(NewWarning("rule-a", "a", passCheck))
	Register(Rule{Name: "rule-c", Severity: SeverityFatal, Description: "c", CheckEntry: passEntryCheck})

	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(all))
	}
	// Registration order is preserved; the engine sorts when it needs to.
	if all[0].Name != "rule-b" || all[1].Name != "rule-a" || all[2].Name != "rule-c" {
		t.Errorf("unexpected order: %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}
	if !all[2].PerNode() {
		t.Error("rule-c should be per-node")
	}
	if all[0].PerNode() {
		t.Error("rule-b should be whole-tree")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry()
	Register(NewFatal("dup", "first", passCheck))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate registration")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "dup") {
			t.Errorf("panic message %v does not name the rule", r)
		}
	}()
	Register(NewFatal("dup", "second", passCheck))
}

func TestRegisterRejectsMalformedShape(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{name: "no check", rule: Rule{Name: "shapeless"}},
		{name: "both checks", rule: Rule{Name: "twofold", Check: passCheck, CheckEntry: passEntryCheck}},
		{name: "empty name", rule: Rule{Check: passCheck}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetRegistry()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tc.rule)
		})
	}
}

func TestAppliesTo(t *testing.T) {
	both := NewFatal("both", "", passCheck)
	running := NewFatal("run-only", "", passCheck).WithRootType(RootTypeRunning)
	alt := NewWarning("alt-only", "", passCheck).WithRootType(RootTypeAlternative)

	if !both.AppliesTo(RootTypeRunning) || !both.AppliesTo(RootTypeAlternative) {
		t.Error("unrestricted rule should apply to both root types")
	}
	if !running.AppliesTo(RootTypeRunning) || running.AppliesTo(RootTypeAlternative) {
		t.Error("running-only rule misclassified")
	}
	if alt.AppliesTo(RootTypeRunning) || !alt.AppliesTo(RootTypeAlternative) {
		t.Error("alternative-only rule misclassified")
	}
}

func TestParseRootType(t *testing.T) {
	if rt, err := ParseRootType("running"); err != nil || rt != RootTypeRunning {
		t.Errorf("ParseRootType(running) = %v, %v", rt, err)
	}
	if rt, err := ParseRootType("alternative"); err != nil || rt != RootTypeAlternative {
		t.Errorf("ParseRootType(alternative) = %v, %v", rt, err)
	}
	if _, err := ParseRootType("bogus"); err == nil {
		t.Error("expected error for unknown root type")
	}
}
