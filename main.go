package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/kunukumikhil-byte/being-connected1/internal/auth"
	"github.com/kunukumikhil-byte/being-connected1/internal/config"
	"github.com/kunukumikhil-byte/being-connected1/internal/handlers"
	clog "github.com/kunukumikhil-byte/being-connected1/internal/log"
	"github.com/kunukumikhil-byte/being-connected1/internal/middleware"
	"github.com/kunukumikhil-byte/being-connected1/internal/session"
	"github.com/kunukumikhil-byte/being-connected1/internal/store"
	"github.com/kunukumikhil-byte/being-connected1/internal/store/sqlstore"
	"github.com/kunukumikhil-byte/being-connected1/internal/ws"
)

func newRouter(st store.Store, sessions *session.Store, signer *auth.CookieSigner, hub *ws.Hub) *mux.Router {
	authHandler := &handlers.AuthHandler{Store: st, Sessions: sessions, Signer: signer}
	pageHandler := &handlers.PageHandler{Store: st}

	r := mux.NewRouter()
	r.Use(middleware.Logging)

	gated := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireSession(signer, sessions, h)
	}

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	}).Methods("GET")
	r.HandleFunc("/signup", authHandler.Signup).Methods("GET", "POST")
	r.HandleFunc("/login", authHandler.Login).Methods("GET", "POST")
	r.Handle("/dashboard", gated(pageHandler.Dashboard)).Methods("GET")
	r.Handle("/profile", gated(pageHandler.Profile)).Methods("GET", "POST")
	r.Handle("/chat/{receiverID:[0-9]+}", gated(pageHandler.Chat)).Methods("GET")
	r.Handle("/logout", gated(authHandler.Logout)).Methods("GET")

	// WebSocket Endpoint
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	return r
}

func main() {
	cfg := config.Load()
	clog.Init(cfg.Env)

	// Initialize Database
	st, err := sqlstore.New(cfg.DriverName(), cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}

	sessions := session.NewStore()
	signer := auth.NewCookieSigner(cfg.SessionSecret)

	// Initialize WebSocket Hub
	hub := ws.NewHub(st)
	go hub.Run()

	r := newRouter(st, sessions, signer, hub)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}
