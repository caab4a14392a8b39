package morningscraper

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Parser names the markup parser used to build documents.
type Parser string

const (
	// HTMLParser is the default, lenient, HTML parser.
	HTMLParser Parser = "html.parser"
	// HTML5Parser and LXMLParser are accepted aliases of HTMLParser: all
	// documents are parsed by the same HTML5 tree builder.
	HTML5Parser Parser = "html5lib"
	LXMLParser  Parser = "lxml"
)

// ErrUnknownParser is returned for an unsupported Parser name.
var ErrUnknownParser = errors.New("unknown parser")

func (p Parser) validate() error {
	switch p {
	case "", HTMLParser, HTML5Parser, LXMLParser:
		return nil
	}
	return fmt.Errorf("%w %q, want one of %q, %q or %q", ErrUnknownParser, string(p), HTMLParser, HTML5Parser, LXMLParser)
}

// logTransport logs every response going through it.
type logTransport struct {
	base http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	return resp, nil
}

// newClient returns a client logging its responses.
func newClient() *http.Client {
	client := new(http.Client)
	client.Transport = &logTransport{http.DefaultTransport}
	return client
}

// Fetcher downloads and parses security pages. Its zero value is ready to use.
type Fetcher struct {
	Client    *http.Client // Defaults to a client logging each response.
	Parser    Parser       // Defaults to HTMLParser.
	UserAgent string       // Sent as the User-Agent header when not empty.
}

var defaultFetcher = &Fetcher{}

// Fetch downloads url using the default Fetcher.
func Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	return defaultFetcher.Fetch(ctx, url)
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return newClient()
}

// Fetch performs an HTTP GET on url and parses the response body.
//
// A response status other than 2xx is an error. Nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := f.Parser.validate(); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", url, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	doc, err := ParseDocument(resp.Body, resp.Header.Get("Content-Type"), f.Parser)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", url, err)
	}
	doc.Url = resp.Request.URL
	return doc, nil
}

// ParseDocument decodes r to UTF-8 and parses it with parser.
//
// contentType is the optional Content-Type header of the document, it helps
// detecting its encoding. When empty, the encoding is sniffed from the content.
func ParseDocument(r io.Reader, contentType string, parser Parser) (*goquery.Document, error) {
	if err := parser.validate(); err != nil {
		return nil, err
	}
	br := bufio.NewReader(r)
	// Peek returns what is available, an error here only means a short document.
	head, _ := br.Peek(1024)
	enc, name, _ := charset.DetermineEncoding(head, contentType)

	utf8 := transform.NewReader(br, enc.NewDecoder())
	doc, err := goquery.NewDocumentFromReader(utf8)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s document: %w", name, err)
	}
	return doc, nil
}
