package morningscraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// extractFunds reads a fund snapshot page, like
// http://www.morningstar.co.uk/uk/funds/snapshot/snapshot.aspx?id=F00000NGEH
//
// The key stats table holds rows of three cells: label, empty, value.
// When several rows share a label, the last one wins.
func extractFunds(doc *goquery.Document, r *Record) error {
	name, err := titleText(doc)
	if err != nil {
		return err
	}

	table, err := first(doc.Selection, "table.overviewKeyStatsTable")
	if err != nil {
		return err
	}

	var (
		navDate, navCurrency, navValue string
		change, isin                   string
		hasNAV, hasChange, hasISIN     bool
		rowErr                         error
	)
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() != 3 {
			return true
		}
		label := tds.Eq(0).Text()
		switch {
		case strings.HasPrefix(label, "NAV"):
			navDate, rowErr = firstText(tds.Eq(0), "span")
			if rowErr != nil {
				rowErr = fmt.Errorf("NAV date: %w", rowErr)
				return false
			}
			fields := strings.Fields(tds.Eq(2).Text())
			if len(fields) != 2 {
				rowErr = fmt.Errorf("invalid NAV %q, want '<currency> <value>'", tds.Eq(2).Text())
				return false
			}
			navCurrency, navValue = fields[0], fields[1]
			hasNAV = true
		case strings.HasPrefix(label, "Day Change"):
			change = strings.TrimSpace(tds.Eq(2).Text())
			hasChange = true
		case strings.HasPrefix(label, "ISIN"):
			isin = strings.TrimSpace(tds.Eq(2).Text())
			hasISIN = true
		}
		return true
	})
	if rowErr != nil {
		return rowErr
	}

	switch {
	case !hasNAV:
		return fmt.Errorf("%w: no NAV row in key stats", ErrMissingElement)
	case !hasChange:
		return fmt.Errorf("%w: no Day Change row in key stats", ErrMissingElement)
	case !hasISIN:
		return fmt.Errorf("%w: no ISIN row in key stats", ErrMissingElement)
	}

	value, err := decimal.NewFromString(navValue)
	if err != nil {
		return fmt.Errorf("invalid NAV value %q: %w", navValue, err)
	}
	on, err := ParsePageDate(navDate)
	if err != nil {
		return fmt.Errorf("invalid NAV date: %w", err)
	}

	r.setText(FieldName, name)
	r.setValue(value)
	r.setText(FieldCurrency, navCurrency)
	r.setText(FieldChange, change)
	r.setDate(on)
	r.setText(FieldISIN, isin)
	return nil
}
