package catalog

// Parallels covers the most commonly listed Parallel/Variety values from
// eBay's 783-entry option list. Multi-word triggers outrank their
// single-word components under longest-match, so "flux auto red" beats both
// "flux auto" and "red prizm".
var Parallels = PhraseTable{
	{Value: "[Base]", Triggers: []string{"base", "base card"}},

	// Color parallels
	{Value: "Black", Triggers: []string{"black"}},
	{Value: "Blue", Triggers: []string{"blue"}},
	{Value: "Gold", Triggers: []string{"gold"}},
	{Value: "Green", Triggers: []string{"green"}},
	{Value: "Orange", Triggers: []string{"orange"}},
	{Value: "Pink", Triggers: []string{"pink"}},
	{Value: "Purple", Triggers: []string{"purple"}},
	{Value: "Red", Triggers: []string{"red"}},
	{Value: "Silver", Triggers: []string{"silver"}},
	{Value: "White", Triggers: []string{"white"}},
	{Value: "Yellow", Triggers: []string{"yellow"}},

	// Refractor family
	{Value: "Refractor", Triggers: []string{"refractor"}},
	{Value: "Black Refractor", Triggers: []string{"black refractor"}},
	{Value: "Blue Refractor", Triggers: []string{"blue refractor"}},
	{Value: "Gold Refractor", Triggers: []string{"gold refractor"}},
	{Value: "Green Refractor", Triggers: []string{"green refractor"}},
	{Value: "Orange Refractor", Triggers: []string{"orange refractor"}},
	{Value: "Pink Refractor", Triggers: []string{"pink refractor"}},
	{Value: "Purple Refractor", Triggers: []string{"purple refractor"}},
	{Value: "Red Refractor", Triggers: []string{"red refractor"}},
	{Value: "Silver Refractor", Triggers: []string{"silver refractor"}},
	{Value: "White Refractor", Triggers: []string{"white refractor"}},

	// Prizm family
	{Value: "Prizm", Triggers: []string{"prizm"}},
	{Value: "Black Prizm", Triggers: []string{"black prizm"}},
	{Value: "Blue Prizm", Triggers: []string{"blue prizm"}},
	{Value: "Gold Prizm", Triggers: []string{"gold prizm"}},
	{Value: "Green Prizm", Triggers: []string{"green prizm"}},
	{Value: "Orange Prizm", Triggers: []string{"orange prizm"}},
	{Value: "Pink Prizm", Triggers: []string{"pink prizm"}},
	{Value: "Purple Prizm", Triggers: []string{"purple prizm"}},
	{Value: "Red Prizm", Triggers: []string{"red prizm"}},
	{Value: "Silver Prizm", Triggers: []string{"silver prizm"}},
	{Value: "White Prizm", Triggers: []string{"white prizm"}},

	// Special finishes
	{Value: "Cracked Ice", Triggers: []string{"cracked ice"}},
	{Value: "Disco", Triggers: []string{"disco"}},
	{Value: "Holographic", Triggers: []string{"holographic", "holo"}},
	{Value: "Rainbow", Triggers: []string{"rainbow"}},
	{Value: "Shimmer", Triggers: []string{"shimmer"}},
	{Value: "Spectrum", Triggers: []string{"spectrum"}},

	{Value: "Serial Numbered", Triggers: []string{"numbered", "serial"}},

	// Special editions
	{Value: "1st Edition", Triggers: []string{"1st edition", "first edition"}},
	{Value: "Limited Edition", Triggers: []string{"limited edition", "limited"}},
	{Value: "Chrome", Triggers: []string{"chrome"}},
	{Value: "Finite", Triggers: []string{"finite"}},
	{Value: "Prime", Triggers: []string{"prime"}},
	{Value: "Mojo", Triggers: []string{"mojo"}},
	{Value: "Mosaic", Triggers: []string{"mosaic"}},
	{Value: "Pulsar", Triggers: []string{"pulsar"}},
	{Value: "Wave", Triggers: []string{"wave"}},

	// Common insert sets
	{Value: "Flux Auto Red", Triggers: []string{"flux auto red"}},
	{Value: "Flux Auto", Triggers: []string{"flux auto"}},
	{Value: "Flux", Triggers: []string{"flux"}},
	{Value: "Auto", Triggers: []string{"auto", "autograph"}},
	{Value: "Patch", Triggers: []string{"patch"}},
	{Value: "Memorabilia", Triggers: []string{"memorabilia", "relic"}},
	{Value: "Jersey", Triggers: []string{"jersey"}},
	{Value: "Rookie", Triggers: []string{"rookie", "rc"}},
}
