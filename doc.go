// Package morningscraper extracts security facts from the public pages of the
// Morningstar UK site.
//
// Three page layouts are supported, told apart by their url:
//   - Funds: fund snapshot pages (/uk/funds/snapshot/snapshot).
//   - Stock: stock reports (/uk/stockreport/).
//   - ETF: exchange traded fund pages (/uk/etf/).
//
// Scrape downloads a page and returns its Record: name, price, currency, day
// change, price date and ISIN, plus the ticker and exchange of ETFs. Fields
// missing from the page are missing from the Record, see Record.Has.
//
// Extract performs the same extraction on a document already parsed, it does
// no I/O.
//
// This package serves as the foundational logic for the `msc` command-line
// tool.
package morningscraper
