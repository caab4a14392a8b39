package morningscraper

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Field names one entry of a Record.
type Field int

// Fields in their canonical order, the order used to encode a Record.
const (
	FieldType Field = iota
	FieldURL
	FieldName
	FieldTicker
	FieldValue
	FieldCurrency
	FieldChange
	FieldDate
	FieldISIN
	FieldExchange

	numFields
)

var fieldNames = [numFields]string{
	FieldType:     "type",
	FieldURL:      "url",
	FieldName:     "name",
	FieldTicker:   "ticker",
	FieldValue:    "value",
	FieldCurrency: "currency",
	FieldChange:   "change",
	FieldDate:     "date",
	FieldISIN:     "ISIN",
	FieldExchange: "Exchange",
}

// String returns the key of the field in the encoded Record.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "invalid"
	}
	return fieldNames[f]
}

// Record holds the facts extracted from a single security page.
//
// Type and URL are always set. Every other field is set only when the page
// provided it, use Has to tell a missing field from an empty one.
type Record struct {
	Type     Page
	URL      string
	Name     string
	Ticker   string          // ETF only.
	Value    decimal.Decimal // Latest price, exact.
	Currency string          // Price currency code, like GBP or GBX.
	Change   string          // Day change as displayed.
	Date     Date            // Price date.
	ISIN     string
	Exchange string // ETF only.

	present uint16 // bit set of Fields.
}

// newRecord returns a record with the metadata common to all pages.
func newRecord(page Page, url string) Record {
	r := Record{Type: page, URL: url}
	r.mark(FieldType)
	r.mark(FieldURL)
	return r
}

func (r *Record) mark(f Field) { r.present |= 1 << f }

// setText sets one of the string fields.
func (r *Record) setText(f Field, s string) {
	switch f {
	case FieldURL:
		r.URL = s
	case FieldName:
		r.Name = s
	case FieldTicker:
		r.Ticker = s
	case FieldCurrency:
		r.Currency = s
	case FieldChange:
		r.Change = s
	case FieldISIN:
		r.ISIN = s
	case FieldExchange:
		r.Exchange = s
	default:
		panic("not a text field: " + f.String())
	}
	r.mark(f)
}

func (r *Record) setValue(v decimal.Decimal) {
	r.Value = v
	r.mark(FieldValue)
}

func (r *Record) setDate(d Date) {
	r.Date = d
	r.mark(FieldDate)
}

// Has reports whether the field f was set.
func (r Record) Has(f Field) bool { return f >= 0 && f < numFields && r.present&(1<<f) != 0 }

// Fields returns the fields set in r, in canonical order.
func (r Record) Fields() []Field {
	var fields []Field
	for f := Field(0); f < numFields; f++ {
		if r.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// Get returns the value of the field f, and whether it was set.
func (r Record) Get(f Field) (any, bool) {
	if !r.Has(f) {
		return nil, false
	}
	switch f {
	case FieldType:
		return r.Type, true
	case FieldURL:
		return r.URL, true
	case FieldName:
		return r.Name, true
	case FieldTicker:
		return r.Ticker, true
	case FieldValue:
		return r.Value, true
	case FieldCurrency:
		return r.Currency, true
	case FieldChange:
		return r.Change, true
	case FieldDate:
		return r.Date, true
	case FieldISIN:
		return r.ISIN, true
	case FieldExchange:
		return r.Exchange, true
	}
	return nil, false
}

// MarshalJSON encodes the fields set in r, in canonical order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, f := range r.Fields() {
		v, _ := r.Get(f)
		w.Append(f.String(), v)
	}
	return w.MarshalJSON()
}

var _ json.Marshaler = Record{}
