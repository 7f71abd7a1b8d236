package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
)

// ApplyTranslations replaces the content of every element carrying a
// translation key with its translation. Inputs receive the translation as
// placeholder and images as alternative text. The header language selector
// and the document language follow the translator's active language.
func ApplyTranslations(doc *goquery.Document, tr sitesearch.Translator) {
	doc.Find("[" + TranslationAttr + "]").Each(func(_ int, sel *goquery.Selection) {
		key, _ := sel.Attr(TranslationAttr)
		text := tr.Translate(key)

		switch goquery.NodeName(sel) {
		case "input":
			sel.SetAttr("placeholder", text)
		case "img":
			sel.SetAttr("alt", text)
		default:
			sel.SetText(text)
		}
	})

	lang := tr.Language()
	doc.Find("header select option").Each(func(_ int, opt *goquery.Selection) {
		if v, _ := opt.Attr("value"); v == lang {
			opt.SetAttr("selected", "")
		} else {
			opt.RemoveAttr("selected")
		}
	})
	doc.Find("html").SetAttr("lang", lang)
}

// EnhancePage applies the client-side enhancements to a page: it adds the
// page map and then translates the document into tr's language.
func EnhancePage(html string, tr sitesearch.Translator) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}
	RenderOutline(doc)
	ApplyTranslations(doc, tr)
	return doc.Html()
}
