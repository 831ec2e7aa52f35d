// Package mining implements frequent-itemset (Apriori) and
// association-rule mining over receipt baskets: which menu items are
// bought together, and how strongly one implies the other.
package mining

import (
	"sort"
	"strings"
)

// Dashboard defaults for small single-restaurant datasets.
const (
	DefaultMinSupport    = 0.005
	DefaultMinConfidence = 0.7
)

// keySep joins itemset members into lookup keys. The unit separator
// never appears in menu names.
const keySep = "\x1f"

// Itemset is a set of menu names with the fraction of baskets that
// contain all of them.
type Itemset struct {
	Items   []string `json:"items"`
	Support float64  `json:"support"`
}

// Apriori returns every itemset present in at least minSupport of the
// baskets. Classic level-wise search: candidate k-itemsets are joined
// from frequent (k-1)-itemsets and pruned before counting. Baskets may
// contain duplicate items; each basket is reduced to a set first.
func Apriori(baskets [][]string, minSupport float64) []Itemset {
	n := len(baskets)
	if n == 0 {
		return nil
	}

	sets := make([]map[string]bool, n)
	for i, basket := range baskets {
		set := make(map[string]bool, len(basket))
		for _, item := range basket {
			set[item] = true
		}
		sets[i] = set
	}

	counts := make(map[string]int)
	for _, set := range sets {
		for item := range set {
			counts[item]++
		}
	}

	var frequent []Itemset
	var level [][]string
	for item, c := range counts {
		support := float64(c) / float64(n)
		if support >= minSupport {
			level = append(level, []string{item})
			frequent = append(frequent, Itemset{Items: []string{item}, Support: support})
		}
	}

	for len(level) > 1 {
		candidates := joinLevel(level)
		level = level[:0]
		for _, cand := range candidates {
			support := float64(countContaining(sets, cand)) / float64(n)
			if support >= minSupport {
				level = append(level, cand)
				frequent = append(frequent, Itemset{Items: cand, Support: support})
			}
		}
	}

	sort.Slice(frequent, func(i, j int) bool {
		if len(frequent[i].Items) != len(frequent[j].Items) {
			return len(frequent[i].Items) < len(frequent[j].Items)
		}
		if frequent[i].Support != frequent[j].Support {
			return frequent[i].Support > frequent[j].Support
		}
		return itemsetKey(frequent[i].Items) < itemsetKey(frequent[j].Items)
	})
	return frequent
}

// joinLevel builds candidate (k+1)-itemsets from frequent k-itemsets
// sharing their first k-1 members, pruning any candidate with an
// infrequent k-subset.
func joinLevel(level [][]string) [][]string {
	prev := make(map[string]bool, len(level))
	for _, set := range level {
		prev[itemsetKey(set)] = true
	}

	sorted := make([][]string, len(level))
	for i, set := range level {
		s := append([]string(nil), set...)
		sort.Strings(s)
		sorted[i] = s
	}
	sort.Slice(sorted, func(i, j int) bool {
		return itemsetKey(sorted[i]) < itemsetKey(sorted[j])
	})

	k := len(sorted[0])
	var candidates [][]string
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if !samePrefix(sorted[i], sorted[j], k-1) {
				break
			}
			cand := append(append([]string(nil), sorted[i]...), sorted[j][k-1])
			if allSubsetsFrequent(cand, prev) {
				candidates = append(candidates, cand)
			}
		}
	}
	return candidates
}

func samePrefix(a, b []string, upTo int) bool {
	for i := 0; i < upTo; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allSubsetsFrequent(cand []string, prev map[string]bool) bool {
	sub := make([]string, 0, len(cand)-1)
	for drop := range cand {
		sub = sub[:0]
		for i, item := range cand {
			if i != drop {
				sub = append(sub, item)
			}
		}
		if !prev[strings.Join(sub, keySep)] {
			return false
		}
	}
	return true
}

func countContaining(sets []map[string]bool, items []string) int {
	count := 0
	for _, set := range sets {
		all := true
		for _, item := range items {
			if !set[item] {
				all = false
				break
			}
		}
		if all {
			count++
		}
	}
	return count
}

func itemsetKey(items []string) string {
	s := append([]string(nil), items...)
	sort.Strings(s)
	return strings.Join(s, keySep)
}
