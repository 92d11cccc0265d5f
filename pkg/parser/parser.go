// Package parser cleans HTML markup out of exported text cells.
package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type Parser struct{}

// StripMarkup returns the text content of s with tags removed and entities
// decoded ("Tom &amp; Jerry<br>" -> "Tom & Jerry"). Block-level tags and
// <br> are replaced by a space so adjacent words do not fuse. Text without
// '<' or '&' is returned unchanged.
func (p *Parser) StripMarkup(s string) (string, error) {
	if !strings.ContainsAny(s, "<&") {
		return s, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", err
	}

	doc.Find("script,style,noscript").Remove()

	var b strings.Builder
	for _, n := range doc.Nodes {
		writeText(&b, n)
	}
	return strings.Join(strings.Fields(b.String()), " "), nil
}

var breaking = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "tr": true, "td": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func writeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	brk := n.Type == html.ElementNode && breaking[n.Data]
	if brk {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if brk {
		b.WriteByte(' ')
	}
}

// StripAll applies StripMarkup to every value, keeping order.
func (p *Parser) StripAll(values []string) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		clean, err := p.StripMarkup(v)
		if err != nil {
			return nil, err
		}
		out[i] = clean
	}
	return out, nil
}
