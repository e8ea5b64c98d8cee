// Package ebay scrapes eBay sold/completed listings to collect the prices
// recently paid for a comparable card. The caller only sees a slice of
// numeric observations; everything about the page structure stays here.
package ebay

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"card-lister/config"
	"card-lister/utils"
)

const soldListingsURL = "https://www.ebay.com/sch/i.html?_nkw=%s&_sacat=0&LH_Complete=1&LH_Sold=1"

// nonPriceChars strips currency symbols and thousands separators.
var nonPriceChars = regexp.MustCompile(`[^\d.]`)

// Scraper fetches sold-listing prices for search queries.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig
}

// New creates a ready-to-use eBay price Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// SoldPrices fetches the sold-listings results for query and returns every
// price it can parse out of the page. An empty slice means no recent sales
// were found; that is not an error.
func (s *Scraper) SoldPrices(ctx context.Context, query string) ([]float64, error) {
	url := fmt.Sprintf(soldListingsURL, query)
	s.logger.Debug("[ebay] Fetching sold listings: %s", url)

	html, err := s.fetchPage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("ebay: fetch sold listings: %w", err)
	}

	prices, err := ExtractPrices(html)
	if err != nil {
		return nil, fmt.Errorf("ebay: parse sold listings: %w", err)
	}

	s.logger.Info("[ebay] Found %d sold prices for query %q", len(prices), query)
	return prices, nil
}

// fetchPage renders the results page in headless Chrome and returns its
// HTML. The browser path handles eBay's bot checks better than a raw GET.
func (s *Scraper) fetchPage(ctx context.Context, url string) (string, error) {
	chromeBin := findChromeBinary()
	if s.cfg.ChromeBin != "" {
		chromeBin = s.cfg.ChromeBin
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	var html string
	err := s.retry.Do(ctx, "fetch-sold-listings", func() error {
		tabCtx, cancel := chromedp.NewContext(allocCtx,
			chromedp.WithLogf(func(string, ...interface{}) {}))
		defer cancel()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx,
			time.Duration(s.cfg.ScrapeTimeoutSec)*time.Second)
		defer cancelTimeout()

		// Rate-limit delay before each attempt
		time.Sleep(time.Duration(s.cfg.RateLimitMs) * time.Millisecond)

		return chromedp.Run(tabCtx,
			chromedp.Navigate(url),
			chromedp.Sleep(3*time.Second),
			chromedp.OuterHTML("html", &html),
		)
	})
	return html, err
}

// ExtractPrices pulls every sold price out of a results page. Price ranges
// like "$10.00 to $15.00" contribute their low bound.
func ExtractPrices(html string) ([]float64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var prices []float64
	doc.Find("span.s-item__price").Each(func(_ int, sel *goquery.Selection) {
		if price, ok := parsePrice(sel.Text()); ok {
			prices = append(prices, price)
		}
	})
	return prices, nil
}

// parsePrice converts one price element's text to a number.
func parsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if idx := strings.Index(strings.ToLower(raw), " to "); idx >= 0 {
		raw = raw[:idx]
	}

	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

// findChromeBinary locates a Chrome/Chromium binary.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
