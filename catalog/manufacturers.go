package catalog

import "strings"

// Manufacturers canonicalizes free-form manufacturer input to eBay's
// Manufacturer option names. The list follows eBay's option set, trimmed to
// brands that actually appear on sports cards.
var Manufacturers = PhraseTable{
	{Value: "Unbranded", Triggers: []string{"unbranded", "generic"}},
	{Value: "Action Packed", Triggers: []string{"action packed"}},
	{Value: "American Caramel", Triggers: []string{"american caramel"}},
	{Value: "Bandai", Triggers: []string{"bandai"}},
	{Value: "Bazooka", Triggers: []string{"bazooka"}},
	{Value: "Bench Warmer", Triggers: []string{"bench warmer"}},
	{Value: "Bowman", Triggers: []string{"bowman"}},
	{Value: "Bushiroad", Triggers: []string{"bushiroad"}},
	{Value: "Calbee", Triggers: []string{"calbee"}},
	{Value: "Classic Games, Inc", Triggers: []string{"classic games"}},
	{Value: "Collector's Edge", Triggers: []string{"collectors edge", "collector's edge"}},
	{Value: "Comic Images", Triggers: []string{"comic images"}},
	{Value: "Cracker Jack", Triggers: []string{"cracker jack"}},
	{Value: "Cryptozoic", Triggers: []string{"cryptozoic"}},
	{Value: "Diamond Stars", Triggers: []string{"diamond stars"}},
	{Value: "Disney", Triggers: []string{"disney"}},
	{Value: "Donruss", Triggers: []string{"donruss"}},
	{Value: "Donruss/Playoff", Triggers: []string{"donruss/playoff", "donruss playoff"}},
	{Value: "Fleer", Triggers: []string{"fleer"}},
	{Value: "Fleer/SkyBox International", Triggers: []string{"fleer/skybox", "fleer skybox"}},
	{Value: "Futera", Triggers: []string{"futera"}},
	{Value: "Goudey", Triggers: []string{"goudey"}},
	{Value: "Hasbro", Triggers: []string{"hasbro"}},
	{Value: "Impel", Triggers: []string{"impel"}},
	{Value: "In the Game", Triggers: []string{"in the game"}},
	{Value: "Kellogg's", Triggers: []string{"kelloggs", "kellogg's"}},
	{Value: "Kenner", Triggers: []string{"kenner"}},
	{Value: "Konami", Triggers: []string{"konami"}},
	{Value: "Leaf", Triggers: []string{"leaf"}},
	{Value: "Marvel", Triggers: []string{"marvel"}},
	{Value: "Meiji", Triggers: []string{"meiji"}},
	{Value: "Merlin", Triggers: []string{"merlin"}},
	{Value: "National Chicle", Triggers: []string{"national chicle"}},
	{Value: "NBA Properties", Triggers: []string{"nba properties"}},
	{Value: "NFL Properties", Triggers: []string{"nfl properties"}},
	{Value: "Nintendo", Triggers: []string{"nintendo"}},
	{Value: "O-Pee-Chee", Triggers: []string{"o-pee-chee", "o pee chee"}},
	{Value: "Pacific", Triggers: []string{"pacific"}},
	{Value: "Panini", Triggers: []string{"panini"}},
	{Value: "Parkhurst", Triggers: []string{"parkhurst"}},
	{Value: "Parkside", Triggers: []string{"parkside"}},
	{Value: "Philadelphia Gum", Triggers: []string{"philadelphia gum"}},
	{Value: "Pinnacle", Triggers: []string{"pinnacle"}},
	{Value: "Playoff", Triggers: []string{"playoff"}},
	{Value: "Post", Triggers: []string{"post"}},
	{Value: "Press Pass", Triggers: []string{"press pass"}},
	{Value: "Pro Set", Triggers: []string{"pro set"}},
	{Value: "Razor", Triggers: []string{"razor"}},
	{Value: "Ringside", Triggers: []string{"ringside"}},
	{Value: "Rittenhouse", Triggers: []string{"rittenhouse"}},
	{Value: "SAGE", Triggers: []string{"sage"}},
	{Value: "SCORE", Triggers: []string{"score"}},
	{Value: "Select", Triggers: []string{"select"}},
	{Value: "Signature Rookies", Triggers: []string{"signature rookies"}},
	{Value: "SkyBox", Triggers: []string{"skybox"}},
	{Value: "Sportflics", Triggers: []string{"sportflics"}},
	{Value: "Sport Kings", Triggers: []string{"sport kings"}},
	{Value: "Sports Illustrated", Triggers: []string{"sports illustrated"}},
	{Value: "Square Enix", Triggers: []string{"square enix"}},
	{Value: "Star Pics", Triggers: []string{"star pics"}},
	{Value: "TCMA", Triggers: []string{"tcma"}},
	{Value: "Team Issue", Triggers: []string{"team issue"}},
	{Value: "Topps", Triggers: []string{"topps"}},
	{Value: "Topps Supreme", Triggers: []string{"topps supreme"}},
	{Value: "Tristar", Triggers: []string{"tristar"}},
	{Value: "Ultimate Trading Card Co.", Triggers: []string{"ultimate trading card"}},
	{Value: "Ultra PRO", Triggers: []string{"ultra pro"}},
	{Value: "Upper Deck", Triggers: []string{"upper deck", "upperdeck"}},
	{Value: "Wheaties", Triggers: []string{"wheaties"}},
	{Value: "Wild Card", Triggers: []string{"wild card"}},
	{Value: "Wizards of the Coast", Triggers: []string{"wizards of the coast"}},
}

// manufacturerCountries maps canonical manufacturers to their country of
// manufacture. Everything unlisted resolves to DefaultCountry.
var manufacturerCountries = map[string]string{
	"Panini":               "Italy",
	"Topps":                "United States",
	"Upper Deck":           "United States",
	"Fleer":                "United States",
	"Donruss":              "United States",
	"Leaf":                 "United States",
	"Bowman":               "United States",
	"SCORE":                "United States",
	"Konami":               "Japan",
	"Bandai":               "Japan",
	"Meiji":                "Japan",
	"Calbee":               "Japan",
	"Bushiroad":            "Japan",
	"Square Enix":          "Japan",
	"Nintendo":             "Japan",
	"Marvel":               "United States",
	"Disney":               "United States",
	"Hasbro":               "United States",
	"Wizards of the Coast": "United States",
	"Cryptozoic":           "United States",
}

// DefaultCountry is the Country/Region of Manufacture fallback.
const DefaultCountry = "United States"

// CanonicalManufacturer resolves a free-form manufacturer to the eBay
// option name. Empty input means Unbranded; unrecognized input is
// title-cased and passed through.
func CanonicalManufacturer(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "Unbranded"
	}
	if value, ok := Manufacturers.Match(trimmed); ok {
		return value
	}
	return titleCase(trimmed)
}

// CountryForManufacturer maps a manufacturer input to its country of
// manufacture, defaulting to DefaultCountry for unknown or absent brands.
func CountryForManufacturer(input string) string {
	if country, ok := manufacturerCountries[CanonicalManufacturer(input)]; ok {
		return country
	}
	return DefaultCountry
}
