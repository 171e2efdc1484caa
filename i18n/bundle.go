// Package i18n holds the locale string tables consulted when a parser
// tree is built and when errors or help text are rendered.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
)

// Bundle maps message keys to translations per language. The zero value is
// not usable; create instances with NewBundle or NewEmptyBundle.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundle()
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle holding the embedded locales.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle creates a bundle from the embedded locale files.
func NewBundle() (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.loadEmbedded(defaultLocales, "locales"); err != nil {
		return nil, err
	}

	supported := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		supported = append(supported, lang)
	}
	b.matcher = language.NewMatcher(supported)

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// NewEmptyBundle creates a bundle without any translations.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

func (b *Bundle) loadEmbedded(fs embed.FS, dir string) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		lang, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		data, err := fs.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return err
		}

		if err := b.AddLanguage(lang, translations); err != nil {
			return err
		}
	}

	return nil
}

// AddLanguage adds a language to the bundle, or merges the given
// translations into it if it already exists.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if len(translations) == 0 {
		return ErrEmptyTranslations
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.translations[lang]
	if !ok {
		existing = make(map[string]string, len(translations))
		b.translations[lang] = existing
	}

	for key, value := range translations {
		existing[key] = value
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
	}
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// SetDefaultLanguage selects the language used by T. It reports whether
// translations for the language are present.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.translations[lang]; !ok {
		return false
	}
	b.defaultLang = lang

	return true
}

// GetDefaultLanguage returns the language used by T.
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// Languages returns all languages with translations in the bundle.
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}

	return langs
}

// HasKey reports whether a translation exists for key in the given language.
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.translations[lang][key]

	return ok
}

// T returns the translation for key in the default language.
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defaultLang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(defaultLang, key, args...)
}

// TL returns the translation for key in the given language, falling back
// to the default language and finally to the key itself.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[lang]; ok {
		return p.Sprintf(key, args...)
	}
	if p, ok := b.printers[b.defaultLang]; ok {
		return p.Sprintf(key, args...)
	}

	return key
}
