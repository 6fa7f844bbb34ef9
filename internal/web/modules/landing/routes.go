package landing

import (
	"net/http"

	"github.com/cursorworkshop/aegistry/internal/web/platform/httpx"
	"github.com/cursorworkshop/aegistry/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.Handle(routepath.Root, httpx.Chain(http.HandlerFunc(h.handleRoot), httpx.RequireMethod(http.MethodGet)))
	mux.Handle(routepath.Healthz, httpx.Chain(http.HandlerFunc(h.handleHealth), httpx.RequireMethod(http.MethodGet)))
}
