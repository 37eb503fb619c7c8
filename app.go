// Package site is the engine behind the AI-Snakk website: publishable blog
// posts, events, case studies and presentations backed by SQLite, served
// through Echo with templ views, plus a contact form and newsletter signup.
package site

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central application. It wires together the store, cache,
// handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache

	contactLimiter *RateLimiter
	customRoutes   []func(*App)
	staticDir      string
	now            func() time.Time
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware and routes, then runs
// the server until shutdown.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Init opens the store and builds the cache and limiter without starting
// the server. Start calls it; tests call it directly.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("site: SessionSecret is required")
	}
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("site: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewContentCache(store, a.Config.CacheTTL)
	a.contactLimiter = NewRateLimiter(5, time.Minute)
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/blog/rss.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogList)
	e.GET("/blog/:slug/", a.handleBlogDetail)
	e.GET("/events/", a.handleEventsList)
	e.GET("/events/:slug/", a.handleEventDetail)
	e.GET("/cases/:slug/", a.handleCaseDetail)
	e.GET("/presentations/:slug/", a.handlePresentationDetail)
	e.GET("/about/", a.handleAbout)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.POST("/newsletter/signup/", a.handleNewsletterSignup)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
