package services

import (
	"strings"
	"testing"

	"card-lister/models"
)

func gradedRookieCard() *models.CardAttributes {
	return &models.CardAttributes{
		Player:     "Michael Jordan",
		Year:       "1986",
		CardSet:    "Fleer",
		CardNumber: "57",
		Sport:      "basketball",
		Attributes: "Rookie RC",
		Grader:     "PSA",
		Grade:      "10",
	}
}

func TestBuildTitleOrdering(t *testing.T) {
	got := BuildTitle(gradedRookieCard())

	want := "1986 Fleer Michael Jordan #57 Rookie RC PSA Grade 10"
	if got.Title != want {
		t.Errorf("BuildTitle = %q, want %q", got.Title, want)
	}
	if got.Length != 52 {
		t.Errorf("Length = %d, want 52", got.Length)
	}
	if got.OverLimit {
		t.Error("OverLimit = true for a 52-character title")
	}
}

func TestBuildTitleOmitsEmptySegments(t *testing.T) {
	card := &models.CardAttributes{
		Player:  "Oscar Wilde",
		Year:    "2021",
		CardSet: "Prizm",
		Sport:   "football",
	}

	got := BuildTitle(card)
	if want := "2021 Prizm Oscar Wilde"; got.Title != want {
		t.Errorf("BuildTitle = %q, want %q", got.Title, want)
	}
}

func TestBuildTitleBareGradeWithoutGrader(t *testing.T) {
	card := gradedRookieCard()
	card.Grader = ""

	got := BuildTitle(card)
	if want := "1986 Fleer Michael Jordan #57 Rookie RC 10"; got.Title != want {
		t.Errorf("BuildTitle = %q, want %q", got.Title, want)
	}
}

func TestBuildTitleTruncation(t *testing.T) {
	tests := []struct {
		name string
		card *models.CardAttributes
		want string
	}{
		{
			name: "grade pair shortened",
			card: &models.CardAttributes{
				Player:     "Fernando Tatis Jr",
				Year:       "2023",
				CardSet:    "Topps Chrome Update Series",
				CardNumber: "100",
				Attributes: "Rookie Debut RC SP",
				Grader:     "PSA",
				Grade:      "10",
			},
			want: "2023 Topps Chrome Update Series Fernando Tatis Jr #100 Rookie Debut RC SP PSA 10",
		},
		{
			name: "grading dropped",
			card: &models.CardAttributes{
				Player:     "Fernando Tatis Jr",
				Year:       "2023",
				CardSet:    "Topps Chrome Update Series",
				CardNumber: "100",
				Attributes: "Rookie Debut Variations",
				Grader:     "PSA",
				Grade:      "10",
			},
			want: "2023 Topps Chrome Update Series Fernando Tatis Jr #100 Rookie Debut Variations",
		},
		{
			name: "attributes dropped",
			card: &models.CardAttributes{
				Player:     "Mike Trout",
				Year:       "2023",
				CardSet:    "Topps",
				CardNumber: "27",
				Attributes: strings.Repeat("Superfractor ", 6) + "SSP",
			},
			want: "2023 Topps Mike Trout #27",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTitle(tt.card)
			if got.Title != tt.want {
				t.Errorf("BuildTitle = %q (len %d), want %q", got.Title, got.Length, tt.want)
			}
			if got.OverLimit {
				t.Errorf("OverLimit = true, title %q should fit", got.Title)
			}
			if got.Length > MaxTitleLength {
				t.Errorf("Length = %d, exceeds %d", got.Length, MaxTitleLength)
			}
		})
	}
}

func TestBuildTitleCountsCharactersNotBytes(t *testing.T) {
	card := &models.CardAttributes{
		Player:     "Joséé Hernándéz Vásquéz Péréz",
		Year:       "2023",
		CardSet:    "Topps Chrome Sériés",
		CardNumber: "100",
		Sport:      "baseball",
		Attributes: "RC",
		Grader:     "PSA",
		Grade:      "10",
	}

	got := BuildTitle(card)
	want := "2023 Topps Chrome Sériés Joséé Hernándéz Vásquéz Péréz #100 RC PSA Grade 10"
	if got.Title != want {
		t.Errorf("BuildTitle = %q, want %q (nothing should be truncated)", got.Title, want)
	}
	if got.Length != 75 {
		t.Errorf("Length = %d, want 75 characters", got.Length)
	}
	if got.OverLimit {
		t.Error("OverLimit = true for a 75-character title")
	}
	// The UTF-8 encoding is over 80 bytes; only the character count matters.
	if len(got.Title) <= MaxTitleLength {
		t.Fatalf("fixture encodes to %d bytes, need more than %d", len(got.Title), MaxTitleLength)
	}
}

func TestBuildTitleCoreSegmentsNeverDropped(t *testing.T) {
	card := &models.CardAttributes{
		Player:     "Giannis Sina Ugo Antetokounmpo Jr The Greek Freak Of Milwaukee",
		Year:       "2019",
		CardSet:    "Panini National Treasures Collegiate Edition",
		CardNumber: "34",
		Attributes: "Rookie RC",
		Grader:     "BGS",
		Grade:      "9.5",
	}

	got := BuildTitle(card)
	if !got.OverLimit {
		t.Fatalf("OverLimit = false for length %d", got.Length)
	}
	for _, must := range []string{"2019", card.CardSet, card.Player, "#34"} {
		if !strings.Contains(got.Title, must) {
			t.Errorf("core segment %q missing from %q", must, got.Title)
		}
	}
	if strings.Contains(got.Title, "BGS") || strings.Contains(got.Title, "Rookie") {
		t.Errorf("droppable segments survived in over-limit title %q", got.Title)
	}
}
