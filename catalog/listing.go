package catalog

import "strings"

// PricingTypes resolves the seller's pricing input to eBay's listing format
// names.
var PricingTypes = PhraseTable{
	{Value: "Auction", Triggers: []string{"auction"}},
	{Value: "Buy It Now", Triggers: []string{"buy it now", "fixed price", "bin", "fixed"}},
}

// Item category paths on the eBay listing form. Autographed wrestling cards
// list under original autographs rather than trading card singles.
const (
	ItemCategoryDefault       = "Sports Mem, Cards & Fan Shop>Sports Trading Cards>Trading Card Singles"
	ItemCategoryWrestlingAuto = "Sports Mem, Cards & Fan Shop > Autographs-Original > Wrestling > Other Autographed Wrestling"
)

// ItemCategory returns the listing-form category path for a card.
func ItemCategory(sport string, autographed bool) string {
	if strings.ToLower(strings.TrimSpace(sport)) == "wrestling" && autographed {
		return ItemCategoryWrestlingAuto
	}
	return ItemCategoryDefault
}

// StoreCategory returns the seller store category. Wrestling cards shelve by
// promotion, everything else goes unfiled.
func StoreCategory(sport, team string) string {
	if strings.ToLower(strings.TrimSpace(sport)) != "wrestling" {
		return "All categories"
	}

	t := strings.ToLower(team)
	switch {
	case strings.Contains(t, "aew"), strings.Contains(t, "all elite"):
		return "AEW"
	case strings.Contains(t, "wwe"), strings.Contains(t, "world wrestling"):
		return "WWE"
	}
	return "Other"
}
