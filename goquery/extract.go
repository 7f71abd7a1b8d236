// Package goquery implements document handling on top of goquery:
// fragment extraction, anchor resolution, deep-link resolution,
// the page map and the translation pass.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
)

// TranslationAttr marks an element whose text is looked up by key.
const TranslationAttr = "data-i18n"

const (
	mainSelector    = "main"
	headingSelector = "h1, h2, h3, h4, h5, h6"
	imageSelector   = "img[alt]"
	summarySelector = "summary"
	figureSelector  = "figure"
	sectionSelector = "section, article"
)

// textSelectors lists the text-bearing tags in extraction order.
// Images and summaries follow them.
var textSelectors = []string{
	headingSelector,
	"p",
	"li",
	"blockquote",
	"figcaption",
}

var _ sitesearch.FragmentExtractor = (*Extractor)(nil)

// Extractor extracts searchable fragments from the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns its fragments in extraction order.
func (e *Extractor) Extract(html string) ([]sitesearch.Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}
	return ExtractFragments(doc), nil
}

// ExtractFragments returns the fragments of a parsed document.
// Headings come first, then paragraphs, list items, quotations, captions,
// image descriptions and summaries, each group in document order.
// Fragments without a resolvable anchor receive a synthesized one whose
// counter runs across the whole page.
func ExtractFragments(doc *goquery.Document) []sitesearch.Fragment {
	root := doc.Find(mainSelector).First()
	if root.Length() == 0 {
		return nil
	}

	var fragments []sitesearch.Fragment
	synthesized := 0

	add := func(sel, target *goquery.Selection, text string) {
		anchor := idOf(sel)
		if anchor == "" {
			anchor = ResolveAnchor(target, root)
		}
		if anchor == "" {
			if base := sitesearch.Slugify(text); base != "" {
				anchor = sitesearch.SynthesizedAnchor(base, synthesized)
				synthesized++
			}
		}
		key, _ := sel.Attr(TranslationAttr)
		fragments = append(fragments, sitesearch.Fragment{
			Text:           text,
			TranslationKey: key,
			Anchor:         anchor,
		})
	}

	for _, selector := range textSelectors {
		root.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				add(sel, sel, text)
			}
		})
	}

	root.Find(imageSelector).Each(func(_ int, sel *goquery.Selection) {
		alt, _ := sel.Attr("alt")
		if alt = strings.TrimSpace(alt); alt != "" {
			target := sel
			if fig := sel.Closest(figureSelector); fig.Length() > 0 {
				target = fig
			}
			add(sel, target, alt)
		}
	})

	root.Find(summarySelector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			add(sel, sel, text)
		}
	})

	return fragments
}
