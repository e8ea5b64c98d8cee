package services

import (
	"strings"
	"testing"

	"card-lister/models"
)

func TestRenderDescriptionGraded(t *testing.T) {
	card := gradedRookieCard()
	html, err := RenderDescription(card, "1986 Fleer Michael Jordan #57 Rookie RC PSA Grade 10", "CARD-20260831-1405-JORDAN-ROOKIE")
	if err != nil {
		t.Fatalf("RenderDescription: %v", err)
	}

	for _, want := range []string{
		"Michael Jordan",
		"#57",
		"PSA Grade 10",
		"professionally graded by PSA",
		"CARD-20260831-1405-JORDAN-ROOKIE",
		"basketball card, NBA",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("description missing %q", want)
		}
	}
	if strings.Contains(html, "Raw/Ungraded") {
		t.Error("graded card rendered the raw/ungraded block")
	}
}

func TestRenderDescriptionRawCard(t *testing.T) {
	card := &models.CardAttributes{
		Player: "Oscar Wilde", Year: "2021", CardSet: "Prizm",
		CardNumber: "12", Sport: "football",
	}
	html, err := RenderDescription(card, "2021 Prizm Oscar Wilde #12", "CARD-X")
	if err != nil {
		t.Fatalf("RenderDescription: %v", err)
	}

	if !strings.Contains(html, "Raw/Ungraded") {
		t.Error("raw card missing the Raw/Ungraded grading line")
	}
	if !strings.Contains(html, "raw/ungraded. Please examine photos") {
		t.Error("raw card missing the ungraded authenticity text")
	}
}

func TestRenderDescriptionStripsMarkup(t *testing.T) {
	card := gradedRookieCard()
	card.Player = `Michael <script>alert("x")</script> Jordan`

	html, err := RenderDescription(card, "title", "sku")
	if err != nil {
		t.Fatalf("RenderDescription: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("script tag survived sanitization")
	}
}

func TestSportKeywordSuffix(t *testing.T) {
	tests := []struct {
		sport string
		want  string
	}{
		{"basketball", ", basketball card, NBA"},
		{"wrestling", ", wrestling card, WWE card, WWE"},
		{"cricket", ", Cricket card"},
	}

	for _, tt := range tests {
		if got := sportKeywordSuffix(tt.sport); got != tt.want {
			t.Errorf("sportKeywordSuffix(%q) = %q, want %q", tt.sport, got, tt.want)
		}
	}
}
