package landing

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/cursorworkshop/aegistry/internal/platform/branding"
	webi18n "github.com/cursorworkshop/aegistry/internal/web/i18n"
	apperrors "github.com/cursorworkshop/aegistry/internal/web/platform/errors"
	"github.com/cursorworkshop/aegistry/internal/web/platform/httpx"
	"github.com/cursorworkshop/aegistry/internal/web/scroll"
	"github.com/cursorworkshop/aegistry/internal/web/templates"
)

type handlers struct {
	links templates.Links
}

func newHandlers(links templates.Links) handlers {
	return handlers{links: links}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.writeNotFound(w, r)
		return
	}

	langTag := h.resolveTag(w, r)
	copy := webi18n.Site(langTag)

	// A fresh page load sits at offset zero; the tracker supplies the
	// initial indicator width so the bar never renders unset.
	tracker := scroll.NewTracker(scroll.StaticViewport{})
	tracker.Mount()
	defer tracker.Unmount()

	h.writePage(w, r, http.StatusOK, webi18n.PageTitle(copy), copy.MetaDescription, langTag.String(), tracker.Width(),
		templates.LandingFragment(copy, h.links))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) writeNotFound(w http.ResponseWriter, r *http.Request) {
	err := apperrors.E(apperrors.KindNotFound, "page not found")
	status := apperrors.HTTPStatus(err)
	langTag := h.resolveTag(w, r)
	h.writePage(w, r, status, branding.AppName, branding.ProductLine, langTag.String(), scroll.FormatWidth(0),
		templates.ErrorState(status, err.Error()))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, status int, title string, metaDesc string, lang string, progressWidth string, body templ.Component) {
	ctx := templ.WithChildren(r.Context(), body)
	var rendered bytes.Buffer
	if err := templates.Layout(title, metaDesc, lang, progressWidth).Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(rendered.Bytes())
}

func (handlers) resolveTag(w http.ResponseWriter, r *http.Request) language.Tag {
	resolved, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, resolved)
	}
	return resolved
}
