package engine

import (
	"sort"

	"rootlint/internal/lint"
)

// filterRules classifies every rule for one run: rules named in skip or
// restricted to a different kind of root are set aside and only counted,
// everything else runs. Applicable rules come back sorted by name, split by
// check shape, so runs over identical input produce identical transcripts.
func filterRules(all []lint.Rule, rootType lint.RootType, skip []string) (wholeTree, perNode []lint.Rule, skipped int) {
	skipSet := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipSet[name] = struct{}{}
	}

	var applicable []lint.Rule
	for _, r := range all {
		if _, ok := skipSet[r.Name]; ok {
			skipped++
			continue
		}
		if !r.AppliesTo(rootType) {
			skipped++
			continue
		}
		applicable = append(applicable, r)
	}
	sort.Slice(applicable, func(i, j int) bool { return applicable[i].Name < applicable[j].Name })

	for _, r := range applicable {
		if r.PerNode() {
			perNode = append(perNode, r)
		} else {
			wholeTree = append(wholeTree, r)
		}
	}
	return wholeTree, perNode, skipped
}
