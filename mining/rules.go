package mining

import (
	"sort"
	"strings"
)

// Rule is an association "antecedents => consequents" with its quality
// measures. Support is the support of the combined itemset, confidence
// the conditional probability of the consequent given the antecedent,
// and lift the confidence relative to the consequent's base rate.
type Rule struct {
	Antecedent []string `json:"antecedents"`
	Consequent []string `json:"consequents"`
	Support    float64  `json:"support"`
	Confidence float64  `json:"confidence"`
	Lift       float64  `json:"lift"`
}

// Rules derives association rules from the frequent itemsets, keeping
// those with confidence >= minConfidence. Every non-empty proper subset
// of each itemset is tried as an antecedent. Results are sorted by lift
// descending, then confidence descending, then antecedent label.
func Rules(itemsets []Itemset, minConfidence float64) []Rule {
	support := make(map[string]float64, len(itemsets))
	for _, set := range itemsets {
		support[itemsetKey(set.Items)] = set.Support
	}

	var rules []Rule
	for _, set := range itemsets {
		if len(set.Items) < 2 {
			continue
		}
		items := append([]string(nil), set.Items...)
		sort.Strings(items)

		// Each bitmask selects the antecedent side.
		for mask := 1; mask < (1 << len(items)); mask++ {
			if mask == (1<<len(items))-1 {
				continue
			}
			var ante, cons []string
			for i, item := range items {
				if mask&(1<<i) != 0 {
					ante = append(ante, item)
				} else {
					cons = append(cons, item)
				}
			}

			anteSupport, ok := support[itemsetKey(ante)]
			if !ok || anteSupport == 0 {
				continue
			}
			confidence := set.Support / anteSupport
			if confidence < minConfidence {
				continue
			}

			consSupport := support[itemsetKey(cons)]
			lift := 0.0
			if consSupport > 0 {
				lift = confidence / consSupport
			}
			rules = append(rules, Rule{
				Antecedent: ante,
				Consequent: cons,
				Support:    set.Support,
				Confidence: confidence,
				Lift:       lift,
			})
		}
	}

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Lift != rules[j].Lift {
			return rules[i].Lift > rules[j].Lift
		}
		if rules[i].Confidence != rules[j].Confidence {
			return rules[i].Confidence > rules[j].Confidence
		}
		return strings.Join(rules[i].Antecedent, keySep) < strings.Join(rules[j].Antecedent, keySep)
	})
	return rules
}
