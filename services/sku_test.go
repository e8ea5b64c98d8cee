package services

import (
	"testing"
	"time"

	"card-lister/models"
)

func TestGenerateTrackingSKU(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name string
		card *models.CardAttributes
		want string
	}{
		{
			name: "last name and first attribute word",
			card: gradedRookieCard(),
			want: "CARD-20260831-1405-JORDAN-ROOKIE",
		},
		{
			name: "no attributes falls back to BASE",
			card: &models.CardAttributes{Player: "Oscar Wilde"},
			want: "CARD-20260831-1405-WILDE-BASE",
		},
		{
			name: "single-word player",
			card: &models.CardAttributes{Player: "Ronaldinho", Attributes: "Refractor /99"},
			want: "CARD-20260831-1405-RONALDINHO-REFRACTOR",
		},
		{
			name: "missing player",
			card: &models.CardAttributes{Attributes: "RC"},
			want: "CARD-20260831-1405-UNKNOWN-RC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateTrackingSKU(tt.card, now); got != tt.want {
				t.Errorf("GenerateTrackingSKU = %q, want %q", got, tt.want)
			}
		})
	}
}
