package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureBaskets() [][]string {
	return [][]string{
		{"Americano", "Brownie"},
		{"Americano", "Brownie"},
		{"Americano", "Brownie", "Cheesecake"},
		{"Americano", "Cheesecake"},
		{"Brownie"},
	}
}

func TestAprioriSupports(t *testing.T) {
	itemsets := Apriori(fixtureBaskets(), 0.3)
	require.Len(t, itemsets, 5)

	got := make(map[string]float64, len(itemsets))
	for _, set := range itemsets {
		got[itemsetKey(set.Items)] = set.Support
	}

	assert.InDelta(t, 0.8, got["Americano"], 1e-9)
	assert.InDelta(t, 0.8, got["Brownie"], 1e-9)
	assert.InDelta(t, 0.4, got["Cheesecake"], 1e-9)
	assert.InDelta(t, 0.6, got[itemsetKey([]string{"Americano", "Brownie"})], 1e-9)
	assert.InDelta(t, 0.4, got[itemsetKey([]string{"Americano", "Cheesecake"})], 1e-9)

	// Brownie+Cheesecake co-occurs only once (0.2) and must be pruned.
	_, ok := got[itemsetKey([]string{"Brownie", "Cheesecake"})]
	assert.False(t, ok)
}

func TestAprioriOrdering(t *testing.T) {
	itemsets := Apriori(fixtureBaskets(), 0.3)
	require.Len(t, itemsets, 5)

	// Singles before pairs, support descending within a size.
	assert.Equal(t, []string{"Americano"}, itemsets[0].Items)
	assert.Equal(t, []string{"Brownie"}, itemsets[1].Items)
	assert.Equal(t, []string{"Cheesecake"}, itemsets[2].Items)
	assert.Len(t, itemsets[3].Items, 2)
	assert.Len(t, itemsets[4].Items, 2)
}

func TestAprioriDuplicateItemsInBasket(t *testing.T) {
	baskets := [][]string{
		{"Americano", "Americano", "Brownie"},
		{"Brownie"},
	}
	itemsets := Apriori(baskets, 0.4)

	got := make(map[string]float64, len(itemsets))
	for _, set := range itemsets {
		got[itemsetKey(set.Items)] = set.Support
	}
	assert.InDelta(t, 0.5, got["Americano"], 1e-9)
	assert.InDelta(t, 1.0, got["Brownie"], 1e-9)
}

func TestAprioriEmpty(t *testing.T) {
	assert.Nil(t, Apriori(nil, 0.1))
	assert.Nil(t, Apriori([][]string{}, 0.1))
}

func TestRules(t *testing.T) {
	itemsets := Apriori(fixtureBaskets(), 0.3)
	rules := Rules(itemsets, 0.6)
	require.Len(t, rules, 3)

	// Cheesecake => Americano: confidence 0.4/0.4 = 1.0, lift 1.0/0.8.
	assert.Equal(t, []string{"Cheesecake"}, rules[0].Antecedent)
	assert.Equal(t, []string{"Americano"}, rules[0].Consequent)
	assert.InDelta(t, 0.4, rules[0].Support, 1e-9)
	assert.InDelta(t, 1.0, rules[0].Confidence, 1e-9)
	assert.InDelta(t, 1.25, rules[0].Lift, 1e-9)

	// The two directions of Americano/Brownie tie on lift and
	// confidence; antecedent label breaks the tie.
	assert.Equal(t, []string{"Americano"}, rules[1].Antecedent)
	assert.Equal(t, []string{"Brownie"}, rules[1].Consequent)
	assert.InDelta(t, 0.75, rules[1].Confidence, 1e-9)
	assert.InDelta(t, 0.9375, rules[1].Lift, 1e-9)

	assert.Equal(t, []string{"Brownie"}, rules[2].Antecedent)
	assert.Equal(t, []string{"Americano"}, rules[2].Consequent)
	assert.InDelta(t, 0.75, rules[2].Confidence, 1e-9)
	assert.InDelta(t, 0.9375, rules[2].Lift, 1e-9)
}

func TestRulesConfidenceFloor(t *testing.T) {
	itemsets := Apriori(fixtureBaskets(), 0.3)

	// Americano => Cheesecake sits at confidence 0.5 and must drop out.
	rules := Rules(itemsets, 0.6)
	for _, rule := range rules {
		assert.GreaterOrEqual(t, rule.Confidence, 0.6)
	}

	// Lowering the floor lets it through.
	rules = Rules(itemsets, 0.4)
	found := false
	for _, rule := range rules {
		if len(rule.Antecedent) == 1 && rule.Antecedent[0] == "Americano" &&
			len(rule.Consequent) == 1 && rule.Consequent[0] == "Cheesecake" {
			found = true
			assert.InDelta(t, 0.5, rule.Confidence, 1e-9)
		}
	}
	assert.True(t, found)
}

func TestRulesSkipsSingletons(t *testing.T) {
	rules := Rules([]Itemset{{Items: []string{"Americano"}, Support: 0.8}}, 0.1)
	assert.Empty(t, rules)
}
