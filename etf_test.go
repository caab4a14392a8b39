package morningscraper

import (
	"strings"
	"testing"
)

func TestExtractETF(t *testing.T) {
	r, err := Extract(ETF, etfURL, parse(t, etfPage))
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}

	want := map[Field]string{
		FieldName:     "MyETF",
		FieldTicker:   "MYE",
		FieldCurrency: "USD",
		FieldExchange: "London Stock Exchange",
		FieldISIN:     "IE00B3XXRP09",
	}
	for f, w := range want {
		got, ok := r.Get(f)
		if !ok {
			t.Errorf("field %v is missing", f)
			continue
		}
		if got != w {
			t.Errorf("field %v = %q, want %q", f, got, w)
		}
	}
	if r.Has(FieldValue) || r.Has(FieldDate) || r.Has(FieldChange) {
		t.Errorf("unexpected fields in an ETF record: %v", r.Fields())
	}
}

func TestExtractETF_OptionalFields(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		missing Field
	}{
		{"no exchange", "Exchange", FieldExchange},
		{"no isin", "ISIN", FieldISIN},
		{"no closing price", "Closing Price", FieldCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := strings.Replace(etfPage, ">"+tt.label+"<", ">Something else<", 1)
			r, err := Extract(ETF, etfURL, parse(t, page))
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if r.Has(tt.missing) {
				t.Errorf("field %v should be missing, got %v", tt.missing, r.Fields())
			}
			if !r.Has(FieldName) || !r.Has(FieldTicker) {
				t.Errorf("name and ticker should be present, got %v", r.Fields())
			}
		})
	}
}

func TestExtractETF_LabelMustMatchExactly(t *testing.T) {
	page := strings.Replace(etfPage, ">Exchange<", "> Exchange <", 1)
	r, err := Extract(ETF, etfURL, parse(t, page))
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}
	if r.Has(FieldExchange) {
		t.Errorf("a padded label should not match, got Exchange=%q", r.Exchange)
	}
}

func TestExtractETF_Errors(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		wantErr string
	}{
		{"no title", strings.Replace(etfPage, "snapshotTitleBox", "otherBox", 1), "div.snapshotTitleBox"},
		{"no ticker", strings.Replace(etfPage, "MyETF | MYE", "MyETF", 1), "invalid ETF title"},
		{"label without value", strings.Replace(etfPage, "\n<span class=\"value\">London Stock Exchange</span>", "", 1), "no value next to label"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Extract(ETF, etfURL, parse(t, tc.page))
			if err == nil {
				t.Fatalf("Extract() expected an error, but got none")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Extract() error = %q, want to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"USD 10.00", 3, "USD"},
		{"US", 3, "US"},
		{"", 3, ""},
		{"£10", 1, "£"},
	}
	for _, tt := range tests {
		if got := prefix(tt.s, tt.n); got != tt.want {
			t.Errorf("prefix(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
