// Package i18n renders user-facing messages for coded command rejections.
//
// Message templates are embedded per locale; lookups fall back to the base
// locale through language matching so a "pt" request resolves to the closest
// shipped catalog instead of failing.
package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog maps error codes to message templates for a single locale.
type Catalog struct {
	locale   string
	messages map[string]string
}

type bundle struct {
	catalogs map[string]*Catalog
	matcher  language.Matcher
	locales  []string
}

var defaultBundle = mustLoadEmbedded()

func mustLoadEmbedded() *bundle {
	b, err := loadFromFS(localeFS)
	if err != nil {
		panic(fmt.Sprintf("load embedded locale catalogs: %v", err))
	}
	return b
}

func loadFromFS(catalogFS fs.FS) (*bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &bundle{catalogs: map[string]*Catalog{}}
	var tags []language.Tag
	for _, p := range paths {
		locale := strings.TrimSuffix(path.Base(p), ".yaml")
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse catalog locale %s: %w", locale, err)
		}
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		messages := map[string]string{}
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("unmarshal catalog %s: %w", p, err)
		}
		b.catalogs[locale] = &Catalog{locale: locale, messages: messages}
		b.locales = append(b.locales, locale)
		tags = append(tags, tag)
	}
	if _, ok := b.catalogs[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s catalog is missing", BaseLocale)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// GetCatalog returns the catalog best matching the given locale.
// Falls back to the base locale when no shipped catalog matches.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return defaultBundle.catalogs[BaseLocale]
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return defaultBundle.catalogs[BaseLocale]
	}
	_, index, confidence := defaultBundle.matcher.Match(tag)
	if confidence == language.No {
		return defaultBundle.catalogs[BaseLocale]
	}
	return defaultBundle.catalogs[defaultBundle.locales[index]]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template for code with the given metadata.
// Falls back to the error code itself if no template is found or the
// template fails to render.
func (c *Catalog) Format(code string, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}
	parsed, err := template.New(code).Parse(tmpl)
	if err != nil {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var buf bytes.Buffer
	if err := parsed.Execute(&buf, metadata); err != nil {
		return code
	}
	return buf.String()
}

// Message resolves a locale catalog and renders the message for code.
func Message(locale, code string, metadata map[string]string) string {
	return GetCatalog(locale).Format(code, metadata)
}
