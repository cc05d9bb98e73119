package checks

import (
	"strings"
	"testing"
)

func TestAPIBaseDirectories(t *testing.T) {
	empty := testRoot(t)
	if msg := mustFail(t, checkAPIDirs, empty); msg != "Missing API filesystem base directory: /dev" {
		t.Errorf("message = %q", msg)
	}

	root := passingFixture(t)
	mustPass(t, checkAPIDirs, root)

	removeAll(t, root, "var")
	if msg := mustFail(t, checkAPIDirs, root); msg != "Missing API filesystem base directory: /var" {
		t.Errorf("message = %q", msg)
	}

	writeFile(t, root, "var", "")
	msg := mustFail(t, checkAPIDirs, root)
	if !strings.HasPrefix(msg, "Expected directory for API filesystem base directory: /var") {
		t.Errorf("message = %q", msg)
	}
}
