package morningscraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const fundsURL = "http://www.morningstar.co.uk/uk/funds/snapshot/snapshot.aspx?id=F00000NGEH"
const stockURL = "http://www.morningstar.co.uk/uk/stockreport/default.aspx?SecurityToken=0P000090MJ"
const etfURL = "http://www.morningstar.co.uk/uk/etf/snapshot/snapshot.aspx?id=0P0000M7ZP"

// fundsPage is a trimmed down fund snapshot page.
const fundsPage = `<!DOCTYPE html>
<html><head><title>Some Fund</title></head>
<body>
<div class="snapshotTitleBox"><h1>Some Fund Acc</h1></div>
<table class="overviewKeyStatsTable">
<tr><td colspan="3">Key Stats</td></tr>
<tr><td class="line heading">NAV<span class="heading">01/02/2020</span></td><td class="line"></td><td class="line text">GBP 1.2345</td></tr>
<tr><td class="line heading">Day Change</td><td class="line"></td><td class="line text"> +0.50% </td></tr>
<tr><td class="line heading">ISIN</td><td class="line"></td><td class="line text">GB0000000000</td></tr>
</table>
</body></html>`

// stockPage is a trimmed down stock report page.
const stockPage = `<!DOCTYPE html>
<html><body>
<h1><span class="securityName">Acme plc</span></h1>
<div><span id="Col0Price">101.50</span><span id="Col0PriceDetail">+1.2% | +1.20</span></div>
<p id="Col0PriceTime">Price: 03/04/2021 | GBX</p>
<table><tr><td>ISIN</td><td id="Col0Isin">GB1111111111</td></tr></table>
</body></html>`

// etfPage is a trimmed down ETF page.
const etfPage = `<!DOCTYPE html>
<html><body>
<div class="snapshotTitleBox"><h1>MyETF | MYE</h1></div>
<div class="row"><span class="label">Closing Price</span>
<span class="value">USD 10.00</span></div>
<div class="row"><span class="label">Exchange</span>
<span class="value">London Stock Exchange</span></div>
<div class="row"><span class="label">ISIN</span>
<span class="value">IE00B3XXRP09</span></div>
</body></html>`

// parse parses an html page or fails the test.
func parse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(page), "text/html; charset=utf-8", HTMLParser)
	if err != nil {
		t.Fatalf("ParseDocument() unexpected error: %v", err)
	}
	return doc
}
