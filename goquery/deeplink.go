package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
)

// HighlightClass is added to an element while it is highlighted.
const HighlightClass = "resaltado-busqueda"

// MaterializeAnchor resolves a fragment identifier that no element carries
// yet. The trailing counter is stripped and every content element's slug is
// compared against the remaining base slug; the first element whose slug
// matches (see sitesearch.SlugMatches) receives the identifier. Images hand
// the identifier to their enclosing figure when they have one.
//
// Returns the identified element and true on a match. Returns false when
// the identifier already exists in the document or nothing matches.
func MaterializeAnchor(doc *goquery.Document, fragment string) (*goquery.Selection, bool) {
	if fragment == "" || findByID(doc, fragment).Length() > 0 {
		return nil, false
	}

	base := sitesearch.StripDisambiguator(fragment)
	if base == "" {
		return nil, false
	}

	scope := doc.Find(mainSelector).First()
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var target *goquery.Selection
	matchFirst := func(selector string, text func(*goquery.Selection) string) {
		if target != nil {
			return
		}
		scope.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if sitesearch.SlugMatches(sitesearch.Slugify(text(sel)), base) {
				target = sel
				return false
			}
			return true
		})
	}

	for _, selector := range textSelectors {
		matchFirst(selector, textContent)
	}
	matchFirst(imageSelector, altText)
	matchFirst(summarySelector, textContent)

	if target == nil {
		return nil, false
	}

	if goquery.NodeName(target) == "img" {
		if figure := target.Closest(figureSelector); figure.Length() > 0 {
			target = figure
		}
	}
	target.SetAttr("id", fragment)
	return target, true
}

func textContent(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

func altText(sel *goquery.Selection) string {
	alt, _ := sel.Attr("alt")
	return strings.TrimSpace(alt)
}

var _ sitesearch.DeepLinkTarget = (*Page)(nil)

// Page is a parsed document that deep links and highlights act upon.
// Its methods are safe for concurrent use.
type Page struct {
	mu       sync.Mutex
	doc      *goquery.Document
	scrolled string
}

// NewPage parses HTML into a Page.
func NewPage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc}, nil
}

// MaterializeAnchor implements sitesearch.DeepLinkTarget.
func (p *Page) MaterializeAnchor(fragment string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := MaterializeAnchor(p.doc, fragment)
	return ok
}

// ScrollIntoView records id as the element brought into view.
func (p *Page) ScrollIntoView(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scrolled = id
}

// SetHighlighted toggles HighlightClass on the element carrying id.
func (p *Page) SetHighlighted(id string, highlighted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel := findByID(p.doc, id)
	if highlighted {
		sel.AddClass(HighlightClass)
	} else {
		sel.RemoveClass(HighlightClass)
	}
}

// ScrolledTo returns the id of the element last brought into view.
func (p *Page) ScrolledTo() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrolled
}

// Element returns the outer HTML of the element carrying id.
func (p *Page) Element(id string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel := findByID(p.doc, id)
	if sel.Length() == 0 {
		return "", false
	}
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", false
	}
	return out, true
}

// Highlighted reports whether the element carrying id is highlighted.
func (p *Page) Highlighted(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return findByID(p.doc, id).HasClass(HighlightClass)
}

// HTML renders the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Html()
}

// Do runs fn with exclusive access to the underlying document.
func (p *Page) Do(fn func(doc *goquery.Document)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.doc)
}
