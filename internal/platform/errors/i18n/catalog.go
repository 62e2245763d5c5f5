// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds registered catalogs by locale.
	catalogs = map[string]*Catalog{
		BaseLocale: enUSCatalog,
	}
)

// GetCatalog returns the catalog for the given locale.
// Locale resolution uses BCP 47 matching over the registered locales and
// falls back to en-US when nothing acceptable is registered.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	if c, ok := matchCatalog(requested); ok {
		return c
	}

	base, _ := lookupCatalog(BaseLocale)
	return base
}

// matchCatalog resolves a locale against registered catalogs via language matching.
func matchCatalog(requested string) (*Catalog, bool) {
	tag, err := language.Parse(requested)
	if err != nil {
		return nil, false
	}

	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	locales := make([]string, 0, len(catalogs))
	tags := make([]language.Tag, 0, len(catalogs))
	for locale := range catalogs {
		parsed, parseErr := language.Parse(locale)
		if parseErr != nil {
			continue
		}
		locales = append(locales, locale)
		tags = append(tags, parsed)
	}
	if len(tags) == 0 {
		return nil, false
	}

	matcher := language.NewMatcher(tags)
	if _, index, confidence := matcher.Match(tag); confidence > language.No {
		return catalogs[locales[index]], true
	}
	return nil, false
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	// Ensure metadata is non-nil for template execution
	if metadata == nil {
		metadata = map[string]string{}
	}

	// Parse and execute the template
	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a new catalog for the given locale.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}
