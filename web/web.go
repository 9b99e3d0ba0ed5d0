package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed static
var assets embed.FS

// StaticHandler serves the embedded booking front-end.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to mount embedded static assets")
	}

	return http.FileServer(http.FS(sub))
}
