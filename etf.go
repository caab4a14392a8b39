package morningscraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractETF reads an ETF page. Exchange, ISIN and currency are optional,
// they are left unset when the page does not show them.
func extractETF(doc *goquery.Document, r *Record) error {
	title, err := titleText(doc)
	if err != nil {
		return err
	}
	parts := strings.Split(title, "|")
	if len(parts) < 2 {
		return fmt.Errorf("invalid ETF title %q, want '<name> | <ticker>'", title)
	}
	r.setText(FieldName, strings.TrimSpace(parts[0]))
	r.setText(FieldTicker, strings.TrimSpace(parts[1]))

	for _, f := range []Field{FieldExchange, FieldISIN} {
		text, ok, err := labelledText(doc, f.String())
		if err != nil {
			return err
		}
		if ok {
			r.setText(f, text)
		}
	}

	closing, ok, err := labelledText(doc, "Closing Price")
	if err != nil {
		return err
	}
	if ok {
		r.setText(FieldCurrency, prefix(closing, 3))
	}
	return nil
}

// prefix returns the first n runes of s, or s if shorter.
func prefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
