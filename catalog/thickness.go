package catalog

// Thicknesses holds eBay's 14 Card Thickness options. Most raw singles are
// 55 Pt., so that is the documented fallback when no cue is present.
var Thicknesses = PhraseTable{
	{Value: "20 Pt.", Triggers: []string{"20pt", "20 pt", "thin", "paper"}},
	{Value: "35 Pt.", Triggers: []string{"35pt", "35 pt", "regular"}},
	{Value: "55 Pt.", Triggers: []string{"55pt", "55 pt", "standard", "normal"}},
	{Value: "59 Pt.", Triggers: []string{"59pt", "59 pt"}},
	{Value: "75 Pt.", Triggers: []string{"75pt", "75 pt", "thick"}},
	{Value: "79 Pt.", Triggers: []string{"79pt", "79 pt"}},
	{Value: "100 Pt.", Triggers: []string{"100pt", "100 pt", "very thick"}},
	{Value: "108 Pt.", Triggers: []string{"108pt", "108 pt"}},
	{Value: "130 Pt.", Triggers: []string{"130pt", "130 pt", "extra thick"}},
	{Value: "138 Pt.", Triggers: []string{"138pt", "138 pt"}},
	{Value: "180 Pt.", Triggers: []string{"180pt", "180 pt", "super thick"}},
	{Value: "197 Pt.", Triggers: []string{"197pt", "197 pt"}},
	{Value: "240 Pt.", Triggers: []string{"240pt", "240 pt", "ultra thick"}},
	{Value: "360 Pt.", Triggers: []string{"360pt", "360 pt", "maximum thick"}},
}

// DefaultThickness is used when no thickness cue matches.
const DefaultThickness = "55 Pt."
