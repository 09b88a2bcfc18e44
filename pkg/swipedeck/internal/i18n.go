package internal

import (
	"embed"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	localizer  *i18n.Localizer
	localeMu   sync.RWMutex
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to list locales", "error", err)
			return
		}
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
				GetInternalLogger().Error("Failed to load locale", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage selects the UI language. An empty tag falls back to LANG, then English.
func SetLanguage(tag string) {
	if tag == "" {
		tag = languageFromEnv()
	}
	l := i18n.NewLocalizer(loadBundle(), tag, language.English.String())

	localeMu.Lock()
	localizer = l
	localeMu.Unlock()
}

// languageFromEnv turns a POSIX locale such as "de_DE.UTF-8" into "de-DE".
func languageFromEnv() string {
	lang := os.Getenv("LANG")
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if _, err := language.Parse(lang); err != nil {
		return ""
	}
	return lang
}

func currentLocalizer() *i18n.Localizer {
	localeMu.RLock()
	l := localizer
	localeMu.RUnlock()
	if l != nil {
		return l
	}
	SetLanguage("")
	localeMu.RLock()
	defer localeMu.RUnlock()
	return localizer
}

// Localize returns the message for id, or id itself when it is missing.
func Localize(id string) string {
	msg, err := currentLocalizer().Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "id", id, "error", err)
		return id
	}
	return msg
}

// LocalizeCount returns the plural form of id for count, exposing it to the
// template as .Count.
func LocalizeCount(id string, count int) string {
	msg, err := currentLocalizer().Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "id", id, "error", err)
		return id
	}
	return msg
}
