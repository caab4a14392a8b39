package morningscraper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// stockCurrencyRE matches the currency code following the date in the price time line.
// Pages often separate them with a non-breaking space.
var stockCurrencyRE = regexp.MustCompile(`\|[\s\p{Zs}]([A-Z]{3,4})\b`)

// stockDateOffset is where the date starts in the price time line, after "Price:".
// It counts characters, not bytes.
const stockDateOffset = 6

// extractStock reads a stock report page.
func extractStock(doc *goquery.Document, r *Record) error {
	name, err := firstText(doc.Selection, "span.securityName")
	if err != nil {
		return err
	}

	price, err := firstText(doc.Selection, "span#Col0Price")
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}

	detail, err := firstText(doc.Selection, "span#Col0PriceDetail")
	if err != nil {
		return err
	}
	parts := strings.Split(detail, "|")
	if len(parts) < 2 {
		return fmt.Errorf("invalid price detail %q, want '<percent> | <change>'", detail)
	}
	change := strings.TrimSpace(parts[1])

	priceTime, err := firstText(doc.Selection, "p#Col0PriceTime")
	if err != nil {
		return err
	}
	on, err := ParsePageDate(stockDate(priceTime))
	if err != nil {
		return fmt.Errorf("invalid price time %q: %w", priceTime, err)
	}
	m := stockCurrencyRE.FindStringSubmatch(priceTime)
	if m == nil {
		return fmt.Errorf("no currency in price time %q", priceTime)
	}

	isin, err := firstText(doc.Selection, "td#Col0Isin")
	if err != nil {
		return err
	}

	r.setText(FieldName, name)
	r.setValue(value)
	r.setText(FieldCurrency, m[1])
	r.setText(FieldChange, change)
	r.setDate(on)
	r.setText(FieldISIN, isin)
	return nil
}

// stockDate returns the date part of a price time line like "Price:03/04/2021 | GBX".
// Spaces between the prefix and the date are skipped.
func stockDate(priceTime string) string {
	rs := []rune(priceTime)
	if len(rs) < stockDateOffset {
		return ""
	}
	rs = []rune(strings.TrimLeftFunc(string(rs[stockDateOffset:]), unicode.IsSpace))
	if len(rs) > len(PageDateFormat) {
		rs = rs[:len(PageDateFormat)]
	}
	return string(rs)
}
