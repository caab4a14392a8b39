package morningscraper

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractStock(t *testing.T) {
	r, err := Extract(Stock, stockURL, parse(t, stockPage))
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}

	if r.Type != Stock || r.URL != stockURL {
		t.Errorf("metadata = %v %q, want Stock %q", r.Type, r.URL, stockURL)
	}
	if r.Name != "Acme plc" {
		t.Errorf("Name = %q, want %q", r.Name, "Acme plc")
	}
	if want := decimal.RequireFromString("101.50"); !r.Value.Equal(want) {
		t.Errorf("Value = %v, want %v", r.Value, want)
	}
	if r.Change != "+1.20" {
		t.Errorf("Change = %q, want +1.20", r.Change)
	}
	if want := NewDate(2021, 4, 3); r.Date != want {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
	if r.Currency != "GBX" {
		t.Errorf("Currency = %q, want GBX", r.Currency)
	}
	if r.ISIN != "GB1111111111" {
		t.Errorf("ISIN = %q, want GB1111111111", r.ISIN)
	}
}

func TestExtractStock_Variants(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		wantChange   string
		wantCurrency string
	}{
		{"trailing detail segment", strings.Replace(stockPage, "+1.2% | +1.20", "+1.2% | +1.20 | 15:30", 1), "+1.20", "GBX"},
		{"nbsp before currency", strings.Replace(stockPage, "| GBX", "|&nbsp;GBX", 1), "+1.20", "GBX"},
		{"nbsp before date", strings.Replace(stockPage, "Price: 03/04/2021", "Price:&nbsp;03/04/2021", 1), "+1.20", "GBX"},
		{"four letter currency", strings.Replace(stockPage, "| GBX", "| GBXP", 1), "+1.20", "GBXP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Extract(Stock, stockURL, parse(t, tc.page))
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if r.Change != tc.wantChange {
				t.Errorf("Change = %q, want %q", r.Change, tc.wantChange)
			}
			if r.Currency != tc.wantCurrency {
				t.Errorf("Currency = %q, want %q", r.Currency, tc.wantCurrency)
			}
			if want := NewDate(2021, 4, 3); r.Date != want {
				t.Errorf("Date = %v, want %v", r.Date, want)
			}
		})
	}
}

func TestStockDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Price: 03/04/2021 | GBX", "03/04/2021"},
		{"Price:03/04/2021 | GBX", "03/04/2021"},
		{"Price:03/04/2021", "03/04/2021"},
		{"Price", ""},
		{"Price: 03/04", "03/04"},
		{"Price:\u00a003/04/2021 |\u00a0GBX", "03/04/2021"},
		{"Prix£:03/04/2021", "03/04/2021"},
	}
	for _, tt := range tests {
		if got := stockDate(tt.in); got != tt.want {
			t.Errorf("stockDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractStock_Errors(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		missing bool
		wantErr string
	}{
		{"no name", strings.Replace(stockPage, "securityName", "other", 1), true, "span.securityName"},
		{"no price", strings.Replace(stockPage, `id="Col0Price"`, `id="other"`, 1), true, "span#Col0Price"},
		{"no price detail", strings.Replace(stockPage, "Col0PriceDetail", "other", 1), true, "span#Col0PriceDetail"},
		{"no price time", strings.Replace(stockPage, "Col0PriceTime", "other", 1), true, "p#Col0PriceTime"},
		{"no isin", strings.Replace(stockPage, "Col0Isin", "other", 1), true, "td#Col0Isin"},
		{"bad price", strings.Replace(stockPage, "101.50", "n/a", 1), false, "invalid price"},
		{"detail without separator", strings.Replace(stockPage, "+1.2% | +1.20", "+1.2%", 1), false, "invalid price detail"},
		{"bad date", strings.Replace(stockPage, "03/04/2021", "3 Apr 2021", 1), false, "invalid price time"},
		{"no currency", strings.Replace(stockPage, "| GBX", "| gbx", 1), false, "no currency"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Extract(Stock, stockURL, parse(t, tc.page))
			if err == nil {
				t.Fatalf("Extract() expected an error, but got none")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Extract() error = %q, want to contain %q", err, tc.wantErr)
			}
			if got := errors.Is(err, ErrMissingElement); got != tc.missing {
				t.Errorf("errors.Is(err, ErrMissingElement) = %v, want %v", got, tc.missing)
			}
		})
	}
}
