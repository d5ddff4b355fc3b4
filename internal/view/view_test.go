package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/arcanaland/perch-docs/internal/catalog"
	"github.com/arcanaland/perch-docs/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func collect(n *html.Node, tag string, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.Data == tag {
		*out = append(*out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, tag, out)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestCardListKeepsCatalogOrder(t *testing.T) {
	cards := catalog.LeadManagement()
	doc, err := html.Parse(strings.NewReader(render(t, Page("Lead management", CardList(cards)))))
	require.NoError(t, err)

	var links []*html.Node
	collect(doc, "a", &links)
	require.Len(t, links, len(cards))
	for i, l := range links {
		assert.Equal(t, cards[i].Href, attr(l, "href"))
	}

	var items []*html.Node
	collect(doc, "li", &items)
	require.Len(t, items, len(cards))
	assert.Equal(t, "building", attr(items[0], "data-icon"))
	assert.Equal(t, "user", attr(items[1], "data-icon"))
}

func TestPageEmbedsWidget(t *testing.T) {
	out := render(t, Page("Tool <1>", widget.Frame(widget.Params{WidgetID: "abc123"})))
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Tool &lt;1&gt;</title>")
	assert.Contains(t, out, `id="perch-widget-abc123"`)
}

func TestPageWithoutBody(t *testing.T) {
	out := render(t, Page("Empty", nil))
	assert.Contains(t, out, "<main></main>")
}
