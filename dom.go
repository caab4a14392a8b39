package morningscraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrMissingElement is returned when a page lacks an element an extractor requires.
var ErrMissingElement = errors.New("missing element")

// first returns the first element matching selector under s.
func first(s *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w %q", ErrMissingElement, selector)
	}
	return found, nil
}

// firstText returns the text of the first element matching selector under s.
func firstText(s *goquery.Selection, selector string) (string, error) {
	found, err := first(s, selector)
	if err != nil {
		return "", err
	}
	return found.Text(), nil
}

// titleText returns the text of the page title heading, common to fund and ETF pages.
func titleText(doc *goquery.Document) (string, error) {
	box, err := first(doc.Selection, "div.snapshotTitleBox")
	if err != nil {
		return "", err
	}
	return firstText(box, "h1")
}

// findTextNode returns the first text node, in document order, whose content is exactly text.
func findTextNode(doc *goquery.Document, text string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
			if c.Type == html.TextNode && c.Data == text {
				found = c
				return
			}
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return found
}

// labelledText returns the text displayed next to label.
//
// The label is a text node, its value is held by the second sibling of the
// label's parent: the first one being usually the whitespace between both.
// ok is false if the page has no such label.
func labelledText(doc *goquery.Document, label string) (text string, ok bool, err error) {
	n := findTextNode(doc, label)
	if n == nil {
		return "", false, nil
	}
	value := n.Parent.NextSibling
	if value != nil {
		value = value.NextSibling
	}
	if value == nil {
		return "", false, fmt.Errorf("%w: no value next to label %q", ErrMissingElement, label)
	}
	return nodeText(value), true, nil
}

// nodeText returns the text content of n and its descendants.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
