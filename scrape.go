package morningscraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnknownPage is returned when a url is not one of the supported pages.
var ErrUnknownPage = errors.New("unsupported page")

// extractors holds the extraction rules of each page.
var extractors = map[Page]func(*goquery.Document, *Record) error{
	Funds: extractFunds,
	Stock: extractStock,
	ETF:   extractETF,
}

// Scrape downloads url with the default Fetcher and extracts its Record.
func Scrape(ctx context.Context, url string) (Record, error) {
	return defaultFetcher.Scrape(ctx, url)
}

// Scrape classifies url, downloads it and extracts its Record.
func (f *Fetcher) Scrape(ctx context.Context, url string) (Record, error) {
	page := Classify(url)
	if page == Unknown {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownPage, url)
	}
	doc, err := f.Fetch(ctx, url)
	if err != nil {
		return Record{}, err
	}
	return Extract(page, url, doc)
}

// Extract reads the Record of a page already parsed in doc. url is only
// recorded, it is not fetched.
//
// Extract does not modify doc, extracting the same document twice yields the same Record.
func Extract(page Page, url string, doc *goquery.Document) (Record, error) {
	extract, ok := extractors[page]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownPage, url)
	}
	r := newRecord(page, url)
	if err := extract(doc, &r); err != nil {
		return Record{}, fmt.Errorf("cannot extract %v page %q: %w", page, url, err)
	}
	return r, nil
}
