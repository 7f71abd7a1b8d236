// Package htmltomarkdown renders HTML, such as search result markup or
// site pages, as Markdown for terminal output.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitesearch"
)

// Ensure Converter implements sitesearch.Converter at compile time.
var _ sitesearch.Converter = (*Converter)(nil)

// highlights turns <mark> into strong emphasis, which Markdown can express.
var highlights = strings.NewReplacer("<mark>", "<strong>", "</mark>", "</strong>")

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
// Highlighted text is rendered bold.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(highlights.Replace(html))
	if err != nil {
		return "", err
	}

	return result, nil
}
