package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	html := `<!DOCTYPE html>
	<html>
	<head>
		<title>  Joe's Lawn Care | Fort Worth  </title>
		<meta name="description" content=" Reliable lawn mowing in Fort Worth. ">
		<script>var hidden = "should not appear";</script>
		<style>.x { color: red; }</style>
	</head>
	<body>
		<h1>Lawn Mowing</h1>
		<p>We offer Lawn Mowing
		and trimming.</p>
		<noscript>enable javascript</noscript>
	</body>
	</html>`

	page, err := Parse(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Joe's Lawn Care | Fort Worth", page.Title)
	assert.Equal(t, "Reliable lawn mowing in Fort Worth.", page.MetaDescription)
	assert.Contains(t, page.Text, "we offer lawn mowing and trimming.")
	assert.NotContains(t, page.Text, "should not appear")
	assert.NotContains(t, page.Text, "color: red")
	assert.NotContains(t, page.Text, "enable javascript")
}

func TestParse_OGDescriptionFallback(t *testing.T) {
	html := `<html><head>
	<meta property="og:description" content="From the social card.">
	</head><body></body></html>`

	page, err := Parse(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "From the social card.", page.MetaDescription)
}

func TestParse_DescriptionPreferredOverOG(t *testing.T) {
	html := `<html><head>
	<meta name="description" content="Primary.">
	<meta property="og:description" content="Secondary.">
	</head><body></body></html>`

	page, err := Parse(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Primary.", page.MetaDescription)
}

func TestParse_MissingEverything(t *testing.T) {
	page, err := Parse(strings.NewReader("<html><body><p>just text</p></body></html>"))
	require.NoError(t, err)

	assert.Empty(t, page.Title)
	assert.Empty(t, page.MetaDescription)
	assert.Equal(t, "just text", page.Text)
}

func TestParse_TextIsSingleSpaced(t *testing.T) {
	html := "<html><body><p>One</p>\n\n<p>Two\t\tThree</p></body></html>"

	page, err := Parse(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "one two three", page.Text)
}
