// Command site runs the AI-Snakk website.
// All branding and secrets come from environment variables; a local .env
// file is honored in development.
package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aisnakk/site"
)

func main() {
	// Missing .env is fine in production, where the environment is real.
	_ = godotenv.Load()

	cfg := site.SiteConfig{
		Name:          site.EnvOr("SITE_NAME", "AI-Snakk"),
		URL:           strings.TrimSuffix(site.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description:   site.EnvOr("SITE_DESCRIPTION", ""),
		Author:        site.EnvOr("SITE_AUTHOR", ""),
		Addr:          site.EnvOr("ADDR", ":3000"),
		DatabasePath:  site.EnvOr("DATABASE_PATH", "data/site.db"),
		ContactEmail:  site.EnvOr("CONTACT_EMAIL", ""),
		SessionSecret: site.MustEnv("SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(site.EnvOr("COOKIE_SECURE", ""), "true"),
	}

	app := site.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
