package services

import (
	"strings"
	"unicode/utf8"

	"card-lister/models"
)

// MaxTitleLength is eBay's hard cap on listing titles, in characters.
// Accented player names are routine input, so lengths count runes, not
// bytes.
const MaxTitleLength = 80

// Segment names, in priority order. Year through CardNumber are never
// dropped during truncation.
const (
	segYear       = "year"
	segSet        = "set"
	segPlayer     = "player"
	segCardNumber = "card_number"
	segAttributes = "attributes"
	segGrader     = "grader"
	segGrade      = "grade"
)

// dropOp is one step of the truncation policy. Each op rewrites the
// segment list; ops run in order until the joined title fits.
type dropOp struct {
	name  string
	apply func(segs []models.TitleSegment, card *models.CardAttributes) []models.TitleSegment
}

// truncationOps is the fixed drop priority: shorten the grade pair, drop
// grading entirely, then drop the attributes. Nothing below attributes is
// droppable.
var truncationOps = []dropOp{
	{name: "shorten-grade", apply: shortenGrade},
	{name: "drop-grading", apply: dropSegments(segGrader, segGrade)},
	{name: "drop-attributes", apply: dropSegments(segAttributes)},
}

// BuildTitle assembles the search-optimized title for a card: segments in
// fixed keyword-priority order, joined with single spaces, greedily
// truncated to MaxTitleLength. When the four core segments alone exceed
// the limit the candidate comes back over length with OverLimit set; that
// is reported, not treated as an error.
func BuildTitle(card *models.CardAttributes) *models.TitleCandidate {
	segs := titleSegments(card)

	for _, op := range truncationOps {
		if joinedLen(segs) <= MaxTitleLength {
			break
		}
		segs = op.apply(segs, card)
	}

	title := joinSegments(segs)
	length := utf8.RuneCountInString(title)
	return &models.TitleCandidate{
		Segments:  segs,
		Title:     title,
		Length:    length,
		OverLimit: length > MaxTitleLength,
	}
}

// titleSegments produces the present segments in Cassini keyword-priority
// order: Year, Brand/Set, Player, Card#, Attributes, Grader, Grade.
func titleSegments(card *models.CardAttributes) []models.TitleSegment {
	var segs []models.TitleSegment
	add := func(name, text string) {
		if text != "" {
			segs = append(segs, models.TitleSegment{Name: name, Text: text})
		}
	}

	add(segYear, card.Year)
	add(segSet, card.CardSet)
	add(segPlayer, card.Player)
	if card.CardNumber != "" {
		add(segCardNumber, "#"+card.CardNumber)
	}
	add(segAttributes, card.Attributes)
	add(segGrader, card.Grader)
	switch {
	case card.Grade != "" && card.Grader != "":
		add(segGrade, "Grade "+card.Grade)
	case card.Grade != "":
		add(segGrade, card.Grade)
	}
	return segs
}

// shortenGrade replaces "<Grader> Grade <G>" with "<Grader> <G>". A no-op
// when either half is missing.
func shortenGrade(segs []models.TitleSegment, card *models.CardAttributes) []models.TitleSegment {
	if card.Grader == "" || card.Grade == "" {
		return segs
	}
	out := make([]models.TitleSegment, len(segs))
	copy(out, segs)
	for i, seg := range out {
		if seg.Name == segGrade {
			out[i].Text = card.Grade
		}
	}
	return out
}

// dropSegments removes the named segments outright.
func dropSegments(names ...string) func([]models.TitleSegment, *models.CardAttributes) []models.TitleSegment {
	return func(segs []models.TitleSegment, _ *models.CardAttributes) []models.TitleSegment {
		out := segs[:0:0]
		for _, seg := range segs {
			dropped := false
			for _, name := range names {
				if seg.Name == name {
					dropped = true
					break
				}
			}
			if !dropped {
				out = append(out, seg)
			}
		}
		return out
	}
}

func joinSegments(segs []models.TitleSegment) string {
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}

func joinedLen(segs []models.TitleSegment) int {
	return utf8.RuneCountInString(joinSegments(segs))
}
