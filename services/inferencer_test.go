package services

import (
	"testing"

	"card-lister/catalog"
	"card-lister/models"
)

func TestInferSpecificsGradedRookie(t *testing.T) {
	got := InferSpecifics(gradedRookieCard())

	want := map[string]string{
		"Player/Athlete":                "Michael Jordan",
		"Year Manufactured":             "1986",
		"Set":                           "Fleer",
		"Card Number":                   "57",
		"Sport":                         "Basketball",
		"Type":                          "Sports Trading Card",
		"Language":                      "English",
		"Features":                      "Rookie",
		"Rookie":                        "Yes",
		"Memorabilia":                   "No",
		"Autographed":                   "No",
		"Graded":                        "Yes",
		"Grader":                        "PSA",
		"Grade":                         "10",
		"Vintage":                       "Yes",
		"Card Thickness":                "55 Pt.",
		"Original/Licensed Reprint":     "Original",
		"Condition Type":                "Graded: Professionally graded",
		"Country/Region of Manufacture": "United States",
	}
	for field, value := range want {
		if got[field] != value {
			t.Errorf("specifics[%q] = %q, want %q", field, got[field], value)
		}
	}
	if _, ok := got["Signed By"]; ok {
		t.Error("Signed By present on an unsigned card")
	}
}

func TestInferSpecificsRawCardDefaults(t *testing.T) {
	card := &models.CardAttributes{
		Player:     "Oscar Wilde",
		Year:       "2021",
		CardSet:    "Prizm",
		CardNumber: "12",
		Sport:      "football",
	}
	got := InferSpecifics(card)

	for field, want := range map[string]string{
		"Rookie":                    "No",
		"Memorabilia":               "No",
		"Autographed":               "No",
		"Graded":                    "No",
		"Vintage":                   "No",
		"Card Thickness":            "55 Pt.",
		"Original/Licensed Reprint": "Original",
		"Condition Type":            "Ungraded: Not in original packaging or professionally graded",
		"Item Category":             catalog.ItemCategoryDefault,
		"Store Category":            "All categories",
	} {
		if got[field] != want {
			t.Errorf("specifics[%q] = %q, want %q", field, got[field], want)
		}
	}
	for _, absent := range []string{"Features", "Parallel/Variety", "Grader", "Grade", "Signed By", "Pricing", "Allow Offers"} {
		if v, ok := got[absent]; ok {
			t.Errorf("specifics[%q] = %q, want omitted", absent, v)
		}
	}
}

func TestInferSpecificsInsertParallel(t *testing.T) {
	card := &models.CardAttributes{
		Player:     "Jey Uso",
		Year:       "2023",
		CardSet:    "Panini Chronicles",
		CardNumber: "FX-JWD",
		Sport:      "wrestling",
		InsertSet:  "Flux Auto Red",
	}
	got := InferSpecifics(card)

	if got["Parallel/Variety"] != "Flux Auto Red" {
		t.Errorf("Parallel/Variety = %q, want Flux Auto Red", got["Parallel/Variety"])
	}
	if got["Insert Set"] != "Flux Auto Red" {
		t.Errorf("Insert Set = %q, want Flux Auto Red", got["Insert Set"])
	}
	if got["League"] != "WWE" {
		t.Errorf("League = %q, want WWE", got["League"])
	}
	// "auto" in the insert name implies a signature.
	if got["Autographed"] != "Yes" || got["Signed By"] != "Jey Uso" {
		t.Errorf("Autographed = %q, Signed By = %q", got["Autographed"], got["Signed By"])
	}
}

func TestInferSpecificsSerialNumberFallback(t *testing.T) {
	card := &models.CardAttributes{
		Player:     "Luka Doncic",
		Year:       "2022",
		CardSet:    "Select",
		CardNumber: "88",
		Sport:      "basketball",
		Attributes: "25/99",
	}
	got := InferSpecifics(card)

	if got["Features"] != "Serial Numbered" {
		t.Errorf("Features = %q, want Serial Numbered", got["Features"])
	}
}

func TestInferSpecificsAutographDefaults(t *testing.T) {
	card := &models.CardAttributes{
		Player:      "Bianca Belair",
		Year:        "2024",
		CardSet:     "Panini Prizm",
		CardNumber:  "55",
		Sport:       "wrestling",
		Autographed: "Yes",
	}
	got := InferSpecifics(card)

	if got["Autographed"] != "Yes" {
		t.Errorf("Autographed = %q, want Yes", got["Autographed"])
	}
	if got["Signed By"] != "Bianca Belair" {
		t.Errorf("Signed By = %q, want Bianca Belair", got["Signed By"])
	}
	if got["Autograph Authentication"] != "Panini Authentic" {
		t.Errorf("Autograph Authentication = %q, want default", got["Autograph Authentication"])
	}
	if got["Autograph Format"] != "Label or Sticker" {
		t.Errorf("Autograph Format = %q, want default", got["Autograph Format"])
	}
}

func TestInferSpecificsListingPreferences(t *testing.T) {
	tests := []struct {
		name              string
		card              *models.CardAttributes
		wantPricing       string
		wantOffers        string
		wantItemCategory  string
		wantStoreCategory string
	}{
		{
			name: "autographed wrestling card",
			card: &models.CardAttributes{
				Player: "Jey Uso", Year: "2023", CardSet: "Panini Chronicles",
				CardNumber: "1", Sport: "wrestling", Team: "WWE",
				Autographed: "Yes", PricingType: "Auction", AllowOffers: "no",
			},
			wantPricing:       "Auction",
			wantOffers:        "No",
			wantItemCategory:  catalog.ItemCategoryWrestlingAuto,
			wantStoreCategory: "WWE",
		},
		{
			name: "fixed-price basketball card",
			card: &models.CardAttributes{
				Player: "Luka Doncic", Year: "2022", CardSet: "Select",
				CardNumber: "88", Sport: "basketball",
				PricingType: "BIN", AllowOffers: "y",
			},
			wantPricing:       "Buy It Now",
			wantOffers:        "Yes",
			wantItemCategory:  catalog.ItemCategoryDefault,
			wantStoreCategory: "All categories",
		},
		{
			name: "unsigned AEW wrestling card",
			card: &models.CardAttributes{
				Player: "Kenny Omega", Year: "2021", CardSet: "Upper Deck",
				CardNumber: "7", Sport: "wrestling", Team: "All Elite Wrestling",
			},
			wantItemCategory:  catalog.ItemCategoryDefault,
			wantStoreCategory: "AEW",
		},
		{
			name: "wrestling card with no promotion",
			card: &models.CardAttributes{
				Player: "Dusty Rhodes", Year: "1988", CardSet: "Wonderama",
				CardNumber: "12", Sport: "wrestling",
			},
			wantItemCategory:  catalog.ItemCategoryDefault,
			wantStoreCategory: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferSpecifics(tt.card)

			if v, ok := got["Pricing"]; v != tt.wantPricing || ok != (tt.wantPricing != "") {
				t.Errorf("Pricing = %q (ok=%v), want %q", v, ok, tt.wantPricing)
			}
			if v, ok := got["Allow Offers"]; v != tt.wantOffers || ok != (tt.wantOffers != "") {
				t.Errorf("Allow Offers = %q (ok=%v), want %q", v, ok, tt.wantOffers)
			}
			if got["Item Category"] != tt.wantItemCategory {
				t.Errorf("Item Category = %q, want %q", got["Item Category"], tt.wantItemCategory)
			}
			if got["Store Category"] != tt.wantStoreCategory {
				t.Errorf("Store Category = %q, want %q", got["Store Category"], tt.wantStoreCategory)
			}
		})
	}
}

func TestInferSpecificsCapitalizesSportByRune(t *testing.T) {
	card := &models.CardAttributes{
		Player: "P", Year: "2023", CardSet: "S", CardNumber: "1", Sport: "ésports",
	}
	if got := InferSpecifics(card)["Sport"]; got != "Ésports" {
		t.Errorf("Sport = %q, want Ésports", got)
	}
}

func TestInferSpecificsVintage(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{"1986", "Yes"},
		{"1990", "Yes"},
		{"1991", "No"},
		{"2023", "No"},
		{"198?", "No"},
		{"", "No"},
	}

	for _, tt := range tests {
		card := &models.CardAttributes{
			Player: "P", Year: tt.year, CardSet: "S", CardNumber: "1", Sport: "baseball",
		}
		if got := InferSpecifics(card)["Vintage"]; got != tt.want {
			t.Errorf("Vintage for year %q = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestInferSpecificsManufacturerCountry(t *testing.T) {
	card := &models.CardAttributes{
		Player: "P", Year: "2023", CardSet: "S", CardNumber: "1", Sport: "baseball",
		Manufacturer: "panini",
	}
	got := InferSpecifics(card)

	if got["Manufacturer"] != "Panini" {
		t.Errorf("Manufacturer = %q, want Panini", got["Manufacturer"])
	}
	if got["Country/Region of Manufacture"] != "Italy" {
		t.Errorf("Country = %q, want Italy", got["Country/Region of Manufacture"])
	}
}

func TestInferSpecificsIdempotent(t *testing.T) {
	card := gradedRookieCard()
	first := InferSpecifics(card)
	second := InferSpecifics(card)

	if len(first) != len(second) {
		t.Fatalf("field count changed: %d vs %d", len(first), len(second))
	}
	for field, value := range first {
		if second[field] != value {
			t.Errorf("specifics[%q] changed: %q vs %q", field, value, second[field])
		}
	}
}
