package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/cursorworkshop/aegistry/internal/platform/branding"
	webi18n "github.com/cursorworkshop/aegistry/internal/web/i18n"
)

// Links carries the resolved destinations for the page's controls.
type Links struct {
	DocsURL   string
	SignupURL string
}

type feature struct {
	icon        string
	title       string
	description string
}

type stat struct {
	value string
	label string
}

// LandingFragment composes the landing sections in document order: hero,
// feature grid, statistics grid, closing call to action. All content is
// static per render; only the layout's progress indicator carries state.
func LandingFragment(copy webi18n.SiteCopy, links Links) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := hero(copy, links).Render(ctx, w); err != nil {
			return err
		}
		if err := featureGrid(copy).Render(ctx, w); err != nil {
			return err
		}
		if err := statsGrid(copy).Render(ctx, w); err != nil {
			return err
		}
		return closingCTA(copy, links).Render(ctx, w)
	})
}

func hero(copy webi18n.SiteCopy, links Links) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<header class="hero"><p class="hero-brand">%s</p><h1>%s</h1><p class="hero-tagline">%s</p><div class="hero-actions"><a class="button button-primary" href="%s">%s</a><a class="button button-secondary" href="%s">%s</a></div></header>`,
			html.EscapeString(branding.AppName),
			html.EscapeString(copy.HeroTitle),
			html.EscapeString(copy.HeroTagline),
			html.EscapeString(links.SignupURL),
			html.EscapeString(copy.HeroGetStarted),
			html.EscapeString(links.DocsURL),
			html.EscapeString(copy.HeroViewDocs),
		)
		return err
	})
}

func featureGrid(copy webi18n.SiteCopy) templ.Component {
	features := []feature{
		{icon: "◎", title: copy.FeatureScreeningTitle, description: copy.FeatureScreeningDesc},
		{icon: "⊕", title: copy.FeatureCoverageTitle, description: copy.FeatureCoverageDesc},
		{icon: "↻", title: copy.FeatureMonitoringTitle, description: copy.FeatureMonitoringDesc},
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="feature-grid" id="features">`); err != nil {
			return err
		}
		for _, f := range features {
			if _, err := fmt.Fprintf(w,
				`<article class="feature-card"><span class="feature-icon" aria-hidden="true">%s</span><h2>%s</h2><p>%s</p></article>`,
				html.EscapeString(f.icon),
				html.EscapeString(f.title),
				html.EscapeString(f.description),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func statsGrid(copy webi18n.SiteCopy) templ.Component {
	stats := []stat{
		{value: copy.StatListsValue, label: copy.StatListsLabel},
		{value: copy.StatLatencyValue, label: copy.StatLatencyLabel},
		{value: copy.StatUptimeValue, label: copy.StatUptimeLabel},
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="stats-grid">`); err != nil {
			return err
		}
		for _, s := range stats {
			if _, err := fmt.Fprintf(w,
				`<div class="stat"><span class="stat-value">%s</span><span class="stat-label">%s</span></div>`,
				html.EscapeString(s.value),
				html.EscapeString(s.label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func closingCTA(copy webi18n.SiteCopy, links Links) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="closing-cta" id="get-started"><h2>%s</h2><p>%s</p><a class="button button-primary" href="%s">%s</a></section>`,
			html.EscapeString(copy.CTAHeading),
			html.EscapeString(copy.CTABody),
			html.EscapeString(links.SignupURL),
			html.EscapeString(copy.CTAButton),
		)
		return err
	})
}

// ErrorState renders a minimal error body for non-landing responses.
func ErrorState(status int, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<main class="error-state"><h1>%d</h1><p>%s</p><a class="button button-secondary" href="/">%s</a></main>`,
			status,
			html.EscapeString(message),
			html.EscapeString(branding.AppName),
		)
		return err
	})
}
