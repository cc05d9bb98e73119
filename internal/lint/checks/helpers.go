// Package checks holds every built-in rule. Each file registers its rule
// from init, so importing this package (blank import in main) populates
// the registry.
package checks

import (
	"fmt"
	"strings"
)

// baseimageRef is where base images embed a documentation copy of the
// expected root layout. When present, the layout rules descend into it and
// hold it to the same requirements.
const baseimageRef = "usr/share/doc/bootc/baseimage/base"

// andNMore renders the suffix for messages that show only the first of
// several findings.
func andNMore(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(" (and %d more)", n)
}

// headAndRest splits a list into its first n items and the count left over.
func headAndRest[T any](s []T, n int) ([]T, int) {
	if len(s) <= n {
		return s, 0
	}
	return s[:n], len(s) - n
}

// appendSection writes a heading, up to five sample lines and an overflow
// marker into msg. No-op for an empty list.
func appendSection(msg *strings.Builder, heading string, items []string) {
	samples, rest := headAndRest(items, 5)
	if len(samples) == 0 {
		return
	}
	msg.WriteString(heading)
	msg.WriteByte('\n')
	for _, item := range samples {
		fmt.Fprintf(msg, "  %s\n", item)
	}
	if rest > 0 {
		fmt.Fprintf(msg, "  ...and %d more\n", rest)
	}
}
