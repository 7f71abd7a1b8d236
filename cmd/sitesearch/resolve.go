package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/search"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	name, fragment, ok := strings.Cut(c.Link, "#")
	if !ok || fragment == "" {
		err := sitesearch.Errorf(sitesearch.EINVALID, "link %q has no fragment", c.Link)
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	name = sitesearch.CurrentPage(name)

	page, err := fetchPage(deps, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	id := fragment
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}

	linker := search.NewDeepLinker(page, deps.Config.Highlight, deps.Logger)
	defer linker.Stop()

	if linker.Follow(fragment) {
		el, _ := page.Element(id)
		fmt.Fprintf(deps.Stdout, "%s#%s resolved to:\n%s\n", name, id, el)
		return nil
	}

	if el, ok := page.Element(id); ok {
		fmt.Fprintf(deps.Stdout, "%s#%s already exists:\n%s\n", name, id, el)
		return nil
	}

	err = sitesearch.Errorf(sitesearch.ENOTFOUND, "nothing on %s matches #%s", name, id)
	fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
	return err
}
