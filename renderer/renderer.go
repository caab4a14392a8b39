// Package renderer renders security records as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/morningscraper"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// row is a line of the record table.
type row struct {
	Label string
	Value string
}

// recordView is the data rendered by record.md.
type recordView struct {
	Title string
	Rows  []row
}

// RenderRecord renders r to a markdown string: its name as a title, and a
// table of every other field it holds.
func RenderRecord(r morningscraper.Record) string {
	v := recordView{Title: oneLine(r.Name)}
	if !r.Has(morningscraper.FieldName) || v.Title == "" {
		v.Title = oneLine(r.URL)
	}
	for _, f := range r.Fields() {
		if f == morningscraper.FieldName {
			continue
		}
		v.Rows = append(v.Rows, row{Label: label(f), Value: escape(value(r, f))})
	}
	return renderTemplate("record", "record.md", v)
}

// oneLine collapses every run of white space in s into a single space, so
// that s fits on a heading line.
func oneLine(s string) string { return strings.Join(strings.Fields(s), " ") }

// label returns the human name of a field.
func label(f morningscraper.Field) string {
	switch f {
	case morningscraper.FieldType:
		return "Type"
	case morningscraper.FieldURL:
		return "URL"
	case morningscraper.FieldTicker:
		return "Ticker"
	case morningscraper.FieldValue:
		return "Price"
	case morningscraper.FieldCurrency:
		return "Currency"
	case morningscraper.FieldChange:
		return "Day Change"
	case morningscraper.FieldDate:
		return "Date"
	}
	return f.String()
}

// value formats the field f of r.
func value(r morningscraper.Record, f morningscraper.Field) string {
	switch f {
	case morningscraper.FieldValue:
		if r.Has(morningscraper.FieldCurrency) {
			return Price(r.Value.String(), r.Currency)
		}
		return r.Value.String()
	case morningscraper.FieldCurrency:
		return Currency(r.Currency)
	}
	v, _ := r.Get(f)
	return fmt.Sprint(v)
}

// Price formats an amount in currency code, using the currency symbol when known.
// The amount is printed with all its digits: fund prices are quoted with more
// digits than the currency's minor unit.
func Price(amount, code string) string {
	cur := currency(code)
	if cur.Grapheme == "" {
		return amount + " " + code
	}
	return cur.Grapheme + amount
}

// Currency formats a currency code, with its symbol when known.
func Currency(code string) string {
	cur := currency(code)
	if cur.Grapheme == "" || cur.Grapheme == code {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, cur.Grapheme)
}

// currency returns the currency for code, with an empty Grapheme if unknown.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// escape prevents a value from breaking the table.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// renderTemplate renders the template file with data.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
