package morningscraper

import (
	"fmt"
	"strings"
)

// Page identifies one of the page layouts of the Morningstar UK site.
type Page int

const (
	Unknown Page = iota // not a supported page
	Funds               // fund snapshot page
	Stock               // stock report page
	ETF                 // exchange traded fund page
)

// pagePatterns is ordered: the first pattern contained in the URL wins.
var pagePatterns = []struct {
	pattern string
	page    Page
}{
	{"/uk/funds/snapshot/snapshot", Funds},
	{"/uk/stockreport/", Stock},
	{"/uk/etf/", ETF},
}

// Classify returns the page layout of url, or Unknown if url is not a supported page.
//
// Fund pages take precedence over stock pages, which take precedence over
// ETF pages, should a url contain several patterns.
func Classify(url string) Page {
	for _, p := range pagePatterns {
		if strings.Contains(url, p.pattern) {
			return p.page
		}
	}
	return Unknown
}

// String returns the security type name, as it appears in a Record.
func (p Page) String() string {
	switch p {
	case Funds:
		return "Funds"
	case Stock:
		return "Stock"
	case ETF:
		return "ETF"
	default:
		return "Unknown"
	}
}

// ParsePage parses a security type name as returned by String.
func ParsePage(s string) (Page, error) {
	for _, p := range []Page{Funds, Stock, ETF} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return Unknown, fmt.Errorf("invalid page type %q, want one of Funds, Stock or ETF", s)
}

func (p Page) MarshalJSON() ([]byte, error) {
	if p == Unknown {
		return nil, fmt.Errorf("cannot marshal an unknown page type")
	}
	return []byte(`"` + p.String() + `"`), nil
}
