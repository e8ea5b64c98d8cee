package services

import (
	"strings"
	"unicode/utf8"

	"card-lister/models"
)

// Scoring rubric. Components are independent and sum to at most 100.
const (
	scoreLengthOptimal = 30 // 60–80 characters
	scoreLengthShort   = 20 // under 60 characters
	scoreYear          = 20
	scoreSet           = 20
	scorePlayer        = 20
	scoreAttributes    = 10
)

// ValidateTitle re-parses a built title against the source attributes and
// produces the optimization report: score, keyword density, and advisory
// recommendations. Pure function, no side effects; recommendations never
// affect the score.
func ValidateTitle(title string, card *models.CardAttributes) *models.OptimizationReport {
	length := utf8.RuneCountInString(title)
	report := &models.OptimizationReport{
		Title:          title,
		Length:         length,
		Under80:        length <= MaxTitleLength,
		KeywordDensity: map[string]int{},
	}

	lowerTitle := strings.ToLower(title)
	for _, keyword := range []string{card.Year, card.CardSet, card.Player, card.Attributes} {
		if keyword != "" {
			report.KeywordDensity[keyword] = strings.Count(lowerTitle, strings.ToLower(keyword))
		}
	}

	score := 0
	switch {
	case length >= 60 && length <= MaxTitleLength:
		score += scoreLengthOptimal
	case length < 60:
		score += scoreLengthShort
		report.Recommendations = append(report.Recommendations,
			"Title could be longer for better SEO")
	default:
		report.Recommendations = append(report.Recommendations,
			"Title is too long - consider shortening")
	}

	if card.Year != "" && strings.Contains(title, card.Year) {
		score += scoreYear
	}
	if card.CardSet != "" && strings.Contains(title, card.CardSet) {
		score += scoreSet
	}
	if card.Player != "" && strings.Contains(lowerTitle, strings.ToLower(card.Player)) {
		score += scorePlayer
	}
	if card.Attributes != "" && strings.Contains(title, card.Attributes) {
		score += scoreAttributes
	}
	report.Score = score

	if score < 70 {
		report.Recommendations = append(report.Recommendations,
			"Consider adding more keywords for better visibility")
	}
	if score >= 80 {
		report.Recommendations = append(report.Recommendations,
			"Excellent title optimization!")
	}

	return report
}
