package scanner

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParsedPage holds everything extracted from a single HTML parse.
type ParsedPage struct {
	Title           string
	MetaDescription string
	Text            string // visible text, lower-cased, single-space separated
}

// Parse extracts the title, meta description, and visible text from an HTML
// document. The meta description falls back to the og:description property
// when the description tag is absent.
func Parse(body io.Reader) (*ParsedPage, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	page := &ParsedPage{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: metaDescription(doc),
	}

	// Strip non-visible elements before flattening to text.
	doc.Find("script, style, noscript, iframe, template").Remove()
	page.Text = strings.ToLower(strings.Join(strings.Fields(doc.Text()), " "))

	return page, nil
}

func metaDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if desc = strings.TrimSpace(desc); desc != "" {
			return desc
		}
	}

	desc, _ := doc.Find(`meta[property="og:description"]`).First().Attr("content")
	return strings.TrimSpace(desc)
}
