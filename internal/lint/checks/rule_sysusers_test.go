package checks

import (
	"strings"
	"testing"

	"rootlint/internal/sysusers"
)

func TestSysusers(t *testing.T) {
	root := testRoot(t)
	mustPass(t, checkSysusers, root)

	mkdirAll(t, root, "etc")
	writeFile(t, root, "etc/passwd", "root:x:0:0:root:/root:/bin/bash\n")
	writeFile(t, root, "etc/group", "root:x:0:\n")
	msg := mustFail(t, checkSysusers, root)
	for _, want := range []string{
		"Found /etc/passwd entry without corresponding systemd sysusers.d:",
		"Found /etc/group entry without corresponding systemd sysusers.d:",
		"  root",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not contain %q", msg, want)
		}
	}

	mkdirAll(t, root, sysusers.FragmentDir)
	writeFile(t, root, sysusers.FragmentDir+"/root.conf", "u root 0 \"Super User\" /root /bin/bash\n")
	mustPass(t, checkSysusers, root)
}
