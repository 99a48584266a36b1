package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brunesco/tenderwatch"
	"golang.org/x/net/html"
)

// flattenText returns all visible text of the document, space-joined and
// normalized. Script, style and noscript subtrees are skipped.
func flattenText(doc *goquery.Document) string {
	var sb strings.Builder
	for _, root := range doc.Nodes {
		visitText(root, &sb)
	}
	return tenderwatch.Normalize(sb.String())
}

func visitText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visitText(c, sb)
	}
}
