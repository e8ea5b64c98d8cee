package catalog

import "strings"

// DefaultCategoryID is the generic trading-card category used for every
// sport without a dedicated eBay category.
const DefaultCategoryID = "261328"

// sportCategories maps canonical eBay sport names to category IDs. Sports
// not listed here fall back to DefaultCategoryID.
var sportCategories = map[string]string{
	"Baseball":   "213",
	"Basketball": "214",
	"Football":   "215",
	"Ice Hockey": "216",
	"Soccer":     "261328",
	"Wrestling":  "261328",
}

// sportKeywords canonicalizes common lowercase sport inputs to the eBay
// sport name used on the listing form.
var sportKeywords = map[string]string{
	"baseball":           "Baseball",
	"basketball":         "Basketball",
	"football":           "Football",
	"hockey":             "Ice Hockey",
	"ice hockey":         "Ice Hockey",
	"soccer":             "Soccer",
	"wrestling":          "Wrestling",
	"multi-sport":        "Multi-Sport",
	"mma":                "Mixed Martial Arts (MMA)",
	"mixed martial arts": "Mixed Martial Arts (MMA)",
	"tennis":             "Tennis",
	"golf":               "Golf",
	"boxing":             "Boxing",
	"cricket":            "Cricket",
	"rugby":              "Rugby Union",
	"rugby league":       "Rugby League",
	"rugby union":        "Rugby Union",
	"volleyball":         "Volleyball",
	"swimming":           "Swimming",
	"cycling":            "Cycling",
	"running":            "Running",
	"athletics":          "Athletics",
	"track and field":    "Athletics",
	"auto racing":        "Auto Racing",
	"motorcycle racing":  "Motorcycle Racing",
	"horse racing":       "Horse Racing",
	"poker":              "Poker",
	"esports":            "eSports",
	"e-sports":           "eSports",
	"electronic sports":  "eSports",
}

// sportLeagues maps lowercase sport keys to the league value reported in
// the item specifics when the sport implies one.
var sportLeagues = map[string]string{
	"wrestling": "WWE",
}

// CanonicalSport resolves a free-form sport input to the eBay sport name.
// Unrecognized inputs are title-cased and passed through rather than
// rejected.
func CanonicalSport(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if name, ok := sportKeywords[key]; ok {
		return name
	}
	for name := range sportCategories {
		if key == strings.ToLower(name) {
			return name
		}
	}
	if strings.Contains(key, "wwe") || strings.Contains(key, "wrestling") {
		return "Wrestling"
	}
	return titleCase(input)
}

// CategoryForSport returns the eBay category ID and canonical sport name
// for a sport input. Unknown sports get DefaultCategoryID, never an error.
func CategoryForSport(input string) (id, name string) {
	name = CanonicalSport(input)
	if catID, ok := sportCategories[name]; ok {
		return catID, name
	}
	return DefaultCategoryID, name
}

// LeagueForSport returns the league constant for sports that designate one
// (e.g. wrestling → WWE). The second return is false otherwise.
func LeagueForSport(sport string) (string, bool) {
	league, ok := sportLeagues[strings.ToLower(strings.TrimSpace(sport))]
	return league, ok
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
