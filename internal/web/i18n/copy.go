// Package i18n resolves localized marketing copy for the site.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cursorworkshop/aegistry/internal/platform/branding"
)

// SiteCopy holds translatable copy for the landing page.
type SiteCopy struct {
	MetaDescription string

	HeroTitle      string
	HeroTagline    string
	HeroGetStarted string
	HeroViewDocs   string

	FeatureScreeningTitle  string
	FeatureScreeningDesc   string
	FeatureCoverageTitle   string
	FeatureCoverageDesc    string
	FeatureMonitoringTitle string
	FeatureMonitoringDesc  string

	StatListsValue   string
	StatListsLabel   string
	StatLatencyValue string
	StatLatencyLabel string
	StatUptimeValue  string
	StatUptimeLabel  string

	CTAHeading string
	CTABody    string
	CTAButton  string
}

// Site returns localized landing copy for the provided language tag.
func Site(tag language.Tag) SiteCopy {
	loc := message.NewPrinter(NormalizeTag(tag))

	heroTitle := localize(loc, "hero.title", "Screen anyone against global sanctions and PEP lists")

	return SiteCopy{
		MetaDescription: localizef(loc, "meta.description", "%s: one API call to screen people and entities against global sanctions and PEP lists, with fuzzy matching and full audit trails.", branding.AppName),

		HeroTitle:      heroTitle,
		HeroTagline:    localize(loc, "hero.tagline", "One POST to /v1/persons/screen returns scored hits, a request_id for your audit trail, and nothing you have to host yourself."),
		HeroGetStarted: localize(loc, "hero.get_started", "Get Started"),
		HeroViewDocs:   localize(loc, "hero.view_docs", "View Docs"),

		FeatureScreeningTitle:  localize(loc, "feature.screening.title", "Fuzzy name screening"),
		FeatureScreeningDesc:   localize(loc, "feature.screening.desc", "Transliteration-aware matching catches aliases, spelling variants and weak dates of birth without drowning you in false positives."),
		FeatureCoverageTitle:   localize(loc, "feature.coverage.title", "Global list coverage"),
		FeatureCoverageDesc:    localize(loc, "feature.coverage.desc", "OFAC SDN, UN, EU, UK OFSI, Swiss SECO and Canadian consolidated lists, plus PEP data from a dozen national legislatures, refreshed continuously."),
		FeatureMonitoringTitle: localize(loc, "feature.monitoring.title", "Ongoing monitoring"),
		FeatureMonitoringDesc:  localize(loc, "feature.monitoring.desc", "Register a subject once and receive webhooks when new list entries match, with batch re-screening for your whole book."),

		StatListsValue:   localize(loc, "stat.lists.value", "50+"),
		StatListsLabel:   localize(loc, "stat.lists.label", "sanctions and PEP sources"),
		StatLatencyValue: localize(loc, "stat.latency.value", "<50ms"),
		StatLatencyLabel: localize(loc, "stat.latency.label", "p99 screening latency"),
		StatUptimeValue:  localize(loc, "stat.uptime.value", "99.9%"),
		StatUptimeLabel:  localize(loc, "stat.uptime.label", "uptime, health-checked"),

		CTAHeading: localize(loc, "cta.heading", "Ready to clear your first name?"),
		CTABody:    localize(loc, "cta.body", "Point your client at the API and screen your first person in minutes."),
		CTAButton:  localize(loc, "cta.button", "Start Screening Now"),
	}
}

// PageTitle composes the landing page title with the product suffix.
func PageTitle(copy SiteCopy) string {
	title := strings.TrimSpace(copy.HeroTitle)
	if title == "" {
		return branding.AppName
	}
	return fmt.Sprintf("%s | %s", title, branding.AppName)
}

// localize returns the translated value for key, or the literal fallback.
// The fallback is never treated as a format string, so values containing
// percent signs pass through unchanged.
func localize(loc *message.Printer, key, fallback string) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key))
		if value != "" && value != key {
			return value
		}
	}
	return fallback
}

// localizef is the formatted variant of localize for copy that interpolates
// arguments into the translation or the fallback format.
func localizef(loc *message.Printer, key, format string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && value != key {
			return value
		}
	}
	return fmt.Sprintf(format, args...)
}
