package goquery_test

import (
	gq "github.com/PuerkitoBio/goquery"
)

func gqNodeName(sel *gq.Selection) string {
	return gq.NodeName(sel)
}

func attr(sel *gq.Selection, name string) string {
	v, _ := sel.Attr(name)
	return v
}
