package textparser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var markupPattern = regexp.MustCompile(`(?i)<\s*(html|body|p|div|br|li|ul|ol|h[1-6]|tr|td|table|span|strong|b|a)\b[^>]*>`)

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "tr": true, "section": true,
	"article": true, "header": true, "footer": true, "ul": true, "ol": true,
	"table": true, "blockquote": true, "pre": true,
}

// looksLikeHTML reports whether the posting was pasted as markup.
func looksLikeHTML(text string) bool {
	return markupPattern.MatchString(text)
}

// htmlToLines renders markup as text with one line per block element so the
// line-oriented extractors keep working.
func htmlToLines(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, template").Remove()

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "br" {
				b.WriteByte('\n')
				return
			}
		}
		block := n.Type == html.ElementNode && blockElements[n.Data]
		if block {
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
