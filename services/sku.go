package services

import (
	"fmt"
	"strings"
	"time"

	"card-lister/models"
)

// GenerateTrackingSKU builds the custom SKU used for analytics tracking:
// CARD-<timestamp>-<player last name>-<first attribute word>. Cards with no
// attributes get the BASE slug.
func GenerateTrackingSKU(card *models.CardAttributes, now time.Time) string {
	playerSlug := "UNKNOWN"
	if parts := strings.Fields(card.Player); len(parts) > 0 {
		playerSlug = strings.ToUpper(parts[len(parts)-1])
	}

	attrSlug := "BASE"
	if parts := strings.Fields(card.Attributes); len(parts) > 0 {
		attrSlug = strings.ToUpper(parts[0])
	}

	return fmt.Sprintf("CARD-%s-%s-%s",
		now.Format("20060102-1504"), playerSlug, attrSlug)
}
