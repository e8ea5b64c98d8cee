package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"card-lister/catalog"
	"card-lister/models"
)

// serialRegexp catches serial numbering like "25/99" or "1/1"
var serialRegexp = regexp.MustCompile(`\d+/\d+`)

// InferSpecifics derives the eBay item-specifics mapping for one card. It
// never fails: unknown or ambiguous inputs degrade to omission or to the
// documented defaults, so a best-effort mapping always comes back.
func InferSpecifics(card *models.CardAttributes) models.InferredSpecifics {
	s := models.InferredSpecifics{}

	// Direct pass-through fields
	s["Player/Athlete"] = card.Player
	s["Year Manufactured"] = card.Year
	s["Set"] = card.CardSet
	s["Card Number"] = card.CardNumber
	s["Sport"] = capitalize(card.Sport)
	s["Type"] = "Sports Trading Card"
	s["Language"] = "English"

	text := specificsSearchText(card)

	// Phrase-matched fields: longest trigger wins, no match means omitted
	// unless the field documents a fallback.
	if v, ok := catalog.Parallels.Match(text); ok && v != "[Base]" {
		s["Parallel/Variety"] = v
	}
	if v, ok := catalog.Features.Match(text); ok {
		s["Features"] = v
	} else if serialRegexp.MatchString(text) {
		s["Features"] = "Serial Numbered"
	}
	if v, ok := catalog.Thicknesses.Match(text + " " + strings.ToLower(card.CardType)); ok {
		s["Card Thickness"] = v
	} else {
		s["Card Thickness"] = catalog.DefaultThickness
	}
	reprintText := strings.ToLower(card.Attributes + " " + card.CardSet + " " + card.ParallelVariety)
	if v, ok := catalog.Reprints.Match(reprintText); ok {
		s["Original/Licensed Reprint"] = v
	} else {
		s["Original/Licensed Reprint"] = catalog.DefaultReprint
	}

	// Boolean-derived fields always resolve to Yes or No.
	autographed := isYes(card.Autographed) || catalog.AutographTriggers.Contains(text)
	s["Rookie"] = yesNo(catalog.RookieTriggers.Contains(text))
	s["Memorabilia"] = yesNo(catalog.MemorabiliaTriggers.Contains(text))
	s["Autographed"] = yesNo(autographed)
	s["Graded"] = yesNo(card.Grader != "")
	s["Vintage"] = vintageStatus(card.Year)

	// Derived values, computed from inputs and the passes above.
	if autographed {
		s["Signed By"] = card.Player
		if v, ok := catalog.AutographAuths.Match(card.AutographAuth); ok {
			s["Autograph Authentication"] = v
		} else {
			s["Autograph Authentication"] = catalog.DefaultAutographAuth
		}
		if v, ok := catalog.AutographFormats.Match(text); ok {
			s["Autograph Format"] = v
		} else {
			s["Autograph Format"] = catalog.DefaultAutographFormat
		}
	}
	if league, ok := catalog.LeagueForSport(card.Sport); ok {
		s["League"] = league
	}
	s["Country/Region of Manufacture"] = catalog.CountryForManufacturer(card.Manufacturer)
	s["Item Category"] = catalog.ItemCategory(card.Sport, autographed)
	s["Store Category"] = catalog.StoreCategory(card.Sport, card.Team)
	if v, ok := catalog.PricingTypes.Match(card.PricingType); ok {
		s["Pricing"] = v
	}
	if v, ok := allowOffersValue(card.AllowOffers); ok {
		s["Allow Offers"] = v
	}

	if card.Manufacturer != "" {
		s["Manufacturer"] = catalog.CanonicalManufacturer(card.Manufacturer)
	}
	if card.Team != "" {
		s["Team"] = card.Team
	}
	if card.InsertSet != "" {
		s["Insert Set"] = card.InsertSet
	}
	if card.Grader != "" {
		s["Grader"] = card.Grader
		if card.Grade != "" {
			s["Grade"] = card.Grade
		}
	}
	if card.Grader != "" && card.Grade != "" {
		s["Condition Type"] = "Graded: Professionally graded"
	} else {
		s["Condition Type"] = "Ungraded: Not in original packaging or professionally graded"
	}
	if card.CardCondition != "" {
		if v, ok := catalog.Conditions.Match(card.CardCondition); ok {
			s["Card Condition"] = v
		}
	}
	if card.CardType != "" {
		s["Card Size"] = card.CardType
	}
	if card.EventTournament != "" {
		if v, ok := catalog.Events.Match(card.EventTournament); ok {
			s["Event/Tournament"] = v
		}
	}

	return s
}

// specificsSearchText joins the free-text fields the phrase matchers scan.
func specificsSearchText(card *models.CardAttributes) string {
	return strings.ToLower(strings.TrimSpace(
		card.Attributes + " " + card.ParallelVariety + " " + card.InsertSet))
}

// vintageStatus compares the year against the vintage cutoff. A year that
// doesn't parse means "cannot determine", which reports as No.
func vintageStatus(year string) string {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return "No"
	}
	return yesNo(y <= catalog.VintageCutoffYear)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// allowOffersValue normalizes the seller's allow-offers input to Yes/No.
// Anything else leaves the field omitted.
func allowOffersValue(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return "Yes", true
	case "no", "n", "false":
		return "No", true
	}
	return "", false
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true
	}
	return false
}

// capitalize uppercases the first rune only, matching how eBay renders
// the Sport specific.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
