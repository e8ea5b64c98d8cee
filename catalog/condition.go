package catalog

// Conditions maps seller shorthand to eBay's Card Condition option strings.
var Conditions = PhraseTable{
	{Value: "Near mint or better: Comparable to a fresh pack",
		Triggers: []string{"near mint or better", "near mint", "nm-mt", "nm", "mint"}},
	{Value: "Excellent: Has clearly visible signs of wear",
		Triggers: []string{"excellent", "ex"}},
	{Value: "Very good: Has moderate-to-heavy damage all over",
		Triggers: []string{"very good", "vg", "good"}},
	{Value: "Poor: Is extremely worn and displays flaws all over",
		Triggers: []string{"poor", "fair"}},
}
