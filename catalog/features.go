package catalog

// Features holds eBay's Features field options with their trigger phrases.
var Features = PhraseTable{
	{Value: "10th Anniversary Issue", Triggers: []string{"10th anniversary"}},
	{Value: "1st Edition", Triggers: []string{"1st edition", "first edition"}},
	{Value: "60th Anniversary Issue", Triggers: []string{"60th anniversary"}},
	{Value: "65th Anniversary Issue", Triggers: []string{"65th anniversary"}},
	{Value: "Base Set", Triggers: []string{"base", "base set"}},
	{Value: "Box Topper", Triggers: []string{"box topper", "topper"}},
	{Value: "Chase", Triggers: []string{"chase"}},
	{Value: "Checklist", Triggers: []string{"checklist"}},
	{Value: "Collectors Edition", Triggers: []string{"collectors edition", "collector"}},
	{Value: "Digital", Triggers: []string{"digital"}},
	{Value: "Embossed", Triggers: []string{"embossed"}},
	{Value: "Exchange/Redemption", Triggers: []string{"exchange", "redemption", "redeem"}},
	{Value: "Exclusive", Triggers: []string{"exclusive"}},
	{Value: "Framed", Triggers: []string{"framed"}},
	{Value: "Hologram", Triggers: []string{"hologram", "holo"}},
	{Value: "Insert", Triggers: []string{"insert"}},
	{Value: "Lenticular", Triggers: []string{"lenticular"}},
	{Value: "Limited Edition", Triggers: []string{"limited edition", "limited"}},
	{Value: "Memorabilia", Triggers: []string{"memorabilia", "patch", "jersey", "relic"}},
	{Value: "Miscut", Triggers: []string{"miscut"}},
	{Value: "Misprint", Triggers: []string{"misprint"}},
	{Value: "One of One", Triggers: []string{"1/1", "one of one", "1of1"}},
	{Value: "Parallel/Variety", Triggers: []string{"parallel", "variety", "prizm", "refractor"}},
	{Value: "Printing Plate", Triggers: []string{"printing plate", "plate"}},
	{Value: "Promo", Triggers: []string{"promo", "promotional"}},
	{Value: "Puzzle", Triggers: []string{"puzzle"}},
	{Value: "Rookie", Triggers: []string{"rookie", "rc"}},
	{Value: "Sell Sheet", Triggers: []string{"sell sheet"}},
	{Value: "Serial Numbered", Triggers: []string{"serial", "numbered"}},
	{Value: "Short Print", Triggers: []string{"short print"}},
	{Value: "Sketch", Triggers: []string{"sketch"}},
	{Value: "Stamped", Triggers: []string{"stamped"}},
	{Value: "Sticker", Triggers: []string{"sticker"}},
	{Value: "AU", Triggers: []string{"auto", "autograph", "signed", "signature"}},
}

// RookieTriggers and MemorabiliaTriggers back the Yes/No item specifics.
var (
	RookieTriggers      = PhraseTable{{Value: "Yes", Triggers: []string{"rookie", "rc"}}}
	MemorabiliaTriggers = PhraseTable{{Value: "Yes", Triggers: []string{"memorabilia", "mem", "patch", "jersey", "relic"}}}
	AutographTriggers   = PhraseTable{{Value: "Yes", Triggers: []string{"auto", "autograph", "signed", "signature"}}}
)

// Reprints resolves the Original/Licensed Reprint field. Cards with no
// reprint cue default to Original.
var Reprints = PhraseTable{
	{Value: "Original", Triggers: []string{"original", "authentic", "genuine"}},
	{Value: "Licensed Reprint", Triggers: []string{"reprint", "licensed reprint", "reproduction"}},
}

// DefaultReprint is the Original/Licensed Reprint fallback.
const DefaultReprint = "Original"

// VintageCutoffYear: cards from this year and earlier count as vintage.
const VintageCutoffYear = 1990
