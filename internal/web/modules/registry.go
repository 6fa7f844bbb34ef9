// Package modules composes the web feature modules.
package modules

import (
	module "github.com/cursorworkshop/aegistry/internal/web/module"
	"github.com/cursorworkshop/aegistry/internal/web/modules/apistatus"
	"github.com/cursorworkshop/aegistry/internal/web/modules/landing"
)

// Dependencies carries the configuration modules need to mount.
type Dependencies struct {
	DocsURL    string
	SignupURL  string
	APIBaseURL string
}

// Default returns the stable site modules.
func Default(deps Dependencies) []module.Module {
	return []module.Module{
		landing.New(landing.Config{DocsURL: deps.DocsURL, SignupURL: deps.SignupURL}),
		apistatus.New(deps.APIBaseURL),
	}
}
