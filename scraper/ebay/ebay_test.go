package ebay

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"$120.00", 120, true},
		{"$1,299.99", 1299.99, true},
		{"USD 45.50", 45.50, true},
		{"$10.00 to $15.00", 10, true},
		{"$8.99 TO $12.99", 8.99, true},
		{"Free shipping", 0, false},
		{"", 0, false},
		{"$0.00", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parsePrice(%q) = (%v, %v), want (%v, %v)",
				tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractPrices(t *testing.T) {
	html := `<html><body>
		<span class="s-item__price">$120.00</span>
		<span class="s-item__price">$95.50 to $110.00</span>
		<span class="s-item__price">$1,250.00</span>
		<span class="s-item__title">1986 Fleer Michael Jordan</span>
		<span class="s-item__price"></span>
	</body></html>`

	prices, err := ExtractPrices(html)
	if err != nil {
		t.Fatalf("ExtractPrices: %v", err)
	}

	want := []float64{120, 95.50, 1250}
	if len(prices) != len(want) {
		t.Fatalf("got %d prices %v, want %d", len(prices), prices, len(want))
	}
	for i, p := range want {
		if prices[i] != p {
			t.Errorf("prices[%d] = %v, want %v", i, prices[i], p)
		}
	}
}

func TestExtractPricesNoResults(t *testing.T) {
	prices, err := ExtractPrices("<html><body><p>No exact matches found</p></body></html>")
	if err != nil {
		t.Fatalf("ExtractPrices: %v", err)
	}
	if len(prices) != 0 {
		t.Errorf("got %v, want no prices", prices)
	}
}
