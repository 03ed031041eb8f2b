package main

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"avatarmarket/internal/catalog"
	"avatarmarket/internal/config"
	"avatarmarket/internal/configurator"
	"avatarmarket/internal/session"
	"avatarmarket/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded catalog from %s (%d subjects)", cfg.CatalogPath, len(cat.Subjects))
	}

	tmpl := template.Must(template.ParseFiles(
		filepath.Join(cfg.TemplatesDir, "layout.html"),
		filepath.Join(cfg.TemplatesDir, "configure.html"),
	))

	srv := &web.Server{
		Catalog:       cat,
		Store:         session.NewMemoryStore[*configurator.Session](),
		Tmpl:          tmpl,
		SecureCookies: cfg.SecureCookies,
	}

	log.Printf("listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Routes()))
}
