package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "aeg_lang"
)

var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("pt-BR"),
}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return supportedTags
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// NormalizeTag coerces an arbitrary tag to the closest supported one.
func NormalizeTag(tag language.Tag) language.Tag {
	_, index, _ := matcher.Match(tag)
	return supportedTags[index]
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, err := language.Parse(langValue); err == nil {
			return NormalizeTag(tag), true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, err := language.Parse(cookie.Value); err == nil {
			return NormalizeTag(tag), false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, _ := matcher.Match(tags...)
			return supportedTags[index], false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
