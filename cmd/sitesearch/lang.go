package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Run executes the lang get command.
func (c *LangGetCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "%s (available: %s)\n", deps.Language.Language(), strings.Join(deps.Catalog.Languages(), ", "))

	at, err := deps.Preferences.UpdatedAt(deps.Ctx, sitesearch.LanguagePreferenceKey)
	switch {
	case err == nil:
		fmt.Fprintf(deps.Stdout, "Saved %s.\n", at.Local().Format(time.DateTime))
	case sitesearch.ErrorCode(err) != sitesearch.ENOTFOUND:
		deps.Logger.Warn("reading language preference failed", "error", err)
	}
	return nil
}

// Run executes the lang set command.
func (c *LangSetCmd) Run(deps *Dependencies) error {
	code := strings.ToLower(strings.TrimSpace(c.Code))
	if err := deps.Language.SetLanguage(deps.Ctx, code); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Language set to %s.\n", deps.Language.Language())
	return nil
}

// Run executes the lang reset command.
func (c *LangResetCmd) Run(deps *Dependencies) error {
	if err := deps.Preferences.DeletePreference(deps.Ctx, sitesearch.LanguagePreferenceKey); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Saved language cleared.")
	return nil
}
