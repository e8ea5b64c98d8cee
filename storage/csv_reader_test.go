package storage

import (
	"os"
	"path/filepath"
	"testing"

	"card-lister/utils"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestCSVReaderLoad(t *testing.T) {
	path := writeTempCSV(t,
		"player,year,card_set,card_number,sport,attributes,grader,grade\n"+
			"Michael Jordan,1986,Fleer,57,Basketball,Rookie RC,psa,10\n"+
			"Oscar Wilde,2021,Prizm,12,football,,,\n")

	cards, err := NewCSVReader(utils.NewLogger()).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("loaded %d cards, want 2", len(cards))
	}

	first := cards[0]
	if first.Player != "Michael Jordan" || first.Year != "1986" || first.CardNumber != "57" {
		t.Errorf("first card = %+v", first)
	}
	if first.Sport != "basketball" {
		t.Errorf("Sport = %q, want lowercased basketball", first.Sport)
	}
	if first.Grader != "PSA" {
		t.Errorf("Grader = %q, want uppercased PSA", first.Grader)
	}
}

func TestCSVReaderDropsInvalidRows(t *testing.T) {
	path := writeTempCSV(t,
		"player,year,card_set,card_number,sport\n"+
			"Michael Jordan,1986,Fleer,57,basketball\n"+
			",1990,Topps,12,baseball\n"+
			"LeBron James,,,,\n")

	cards, err := NewCSVReader(utils.NewLogger()).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("loaded %d cards, want 1", len(cards))
	}
}

func TestCSVReaderSkipsDuplicates(t *testing.T) {
	path := writeTempCSV(t,
		"player,year,card_set,card_number,sport\n"+
			"Michael Jordan,1986,Fleer,57,basketball\n"+
			"MICHAEL JORDAN,1986,fleer,57,basketball\n"+
			"Michael Jordan,1986,Fleer,58,basketball\n")

	cards, err := NewCSVReader(utils.NewLogger()).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("loaded %d cards, want 2 (duplicate dropped)", len(cards))
	}
}

func TestCSVReaderToleratesRaggedRows(t *testing.T) {
	path := writeTempCSV(t,
		"player,year,card_set,card_number,sport,attributes\n"+
			"Michael Jordan,1986,Fleer,57,basketball\n")

	cards, err := NewCSVReader(utils.NewLogger()).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("loaded %d cards, want 1", len(cards))
	}
	if cards[0].Attributes != "" {
		t.Errorf("Attributes = %q, want empty for short row", cards[0].Attributes)
	}
}

func TestCSVReaderMissingFile(t *testing.T) {
	if _, err := NewCSVReader(utils.NewLogger()).Load("/no/such/file.csv"); err == nil {
		t.Fatal("Load on missing file succeeded")
	}
}

func TestCSVReaderHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "player,year,card_set,card_number,sport\n")
	if _, err := NewCSVReader(utils.NewLogger()).Load(path); err == nil {
		t.Fatal("Load with no data rows succeeded")
	}
}
