package validator

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/arcanaland/perch-docs/internal/card"
	"github.com/arcanaland/perch-docs/internal/catalog"
)

// StaticBaseURL is where portal entry points are hosted
const StaticBaseURL = "https://embeds.myperch.io/static/"

// KnownIcons are the icon names the docs site can draw
var KnownIcons = []string{"building", "user"}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate loads the catalog file and checks every card. The returned error is
// set only when the file cannot be read or parsed.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.CatalogPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("catalog not found: %s", v.CatalogPath)
	}

	cards, err := catalog.Load(v.CatalogPath)
	if err != nil {
		return v.Results, err
	}

	v.Results = ValidateCards(cards)
	return v.Results, nil
}

// ValidateCards checks cards already in memory
func ValidateCards(cards []card.Card) ValidationResults {
	var results ValidationResults

	if len(cards) == 0 {
		results.Errors = append(results.Errors, "catalog has no cards")
		return results
	}

	seen := make(map[string]int)
	for i, c := range cards {
		label := fmt.Sprintf("cards[%d]", i)
		if c.Title != "" {
			label = fmt.Sprintf("cards[%d] (%s)", i, c.Title)
		}

		if strings.TrimSpace(c.Title) == "" {
			results.Errors = append(results.Errors, fmt.Sprintf("%s: title is required", label))
		} else if first, ok := seen[c.Title]; ok {
			results.Warnings = append(results.Warnings,
				fmt.Sprintf("%s: duplicate title, first used by cards[%d]", label, first))
		} else {
			seen[c.Title] = i
		}

		if strings.TrimSpace(c.Description) == "" {
			results.Errors = append(results.Errors, fmt.Sprintf("%s: description is required", label))
		}

		validateHref(&results, label, c.Href)
		validateIcon(&results, label, c.Icon)
	}

	return results
}

func validateHref(results *ValidationResults, label, href string) {
	if href == "" {
		results.Errors = append(results.Errors, fmt.Sprintf("%s: href is required", label))
		return
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme == "" || u.Host == "" {
		results.Errors = append(results.Errors,
			fmt.Sprintf("%s: href is not an absolute URL: %s", label, href))
		return
	}

	if u.Scheme != "https" {
		results.Warnings = append(results.Warnings,
			fmt.Sprintf("%s: href does not use https: %s", label, href))
	}
	if !strings.HasPrefix(href, StaticBaseURL) {
		results.Warnings = append(results.Warnings,
			fmt.Sprintf("%s: href is outside %s", label, StaticBaseURL))
	}
}

func validateIcon(results *ValidationResults, label, icon string) {
	if icon == "" {
		results.Errors = append(results.Errors, fmt.Sprintf("%s: icon is required", label))
		return
	}

	for _, known := range KnownIcons {
		if icon == known {
			return
		}
	}
	results.Warnings = append(results.Warnings,
		fmt.Sprintf("%s: unknown icon %q (known: %s)", label, icon, strings.Join(KnownIcons, ", ")))
}
