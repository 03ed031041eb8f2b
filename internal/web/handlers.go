package web

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"sync"

	"avatarmarket/internal/catalog"
	"avatarmarket/internal/configurator"
	"avatarmarket/internal/session"
)

type Server struct {
	Catalog *catalog.Catalog
	Store   session.Store[*configurator.Session]
	Tmpl    *template.Template
	// SecureCookies sets the Secure attribute on the session cookie.
	SecureCookies bool

	// Serializes access to configurator sessions, which are not safe for
	// concurrent use.
	mu sync.Mutex
}

const cookieName = "avatar_market_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/configure", s.handleConfigure)

	mux.HandleFunc("/select", s.handleSelect)
	mux.HandleFunc("/option", s.handleOption)
	mux.HandleFunc("/next", s.handleNext)
	mux.HandleFunc("/back", s.handleBack)
	mux.HandleFunc("/buy", s.handleBuy)
	mux.HandleFunc("/close", s.handleClose)

	mux.HandleFunc("/receipt.pdf", s.handleReceipt)
	mux.HandleFunc("/catalog.json", s.handleCatalog)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/configure", http.StatusFound)
}

// GET /configure
func (s *Server) handleConfigure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, _ := s.getOrCreateSession(r.Context(), w, r)
	w.Header().Set("Cache-Control", "no-store")
	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", makeViewModel(sess)); err != nil {
		log.Printf("render layout: %v", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}

// action wraps a POST handler that mutates the visitor's session. fn
// returns an HTTP status and message for bad input, or 0 on success.
func (s *Server) action(fn func(r *http.Request, sess *configurator.Session) (int, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		ctx := r.Context()
		sess, id := s.getOrCreateSession(ctx, w, r)
		if code, msg := fn(r, sess); code != 0 {
			http.Error(w, msg, code)
			return
		}
		if err := s.Store.Put(ctx, id, sess); err != nil {
			http.Error(w, "failed to save state", http.StatusInternalServerError)
			return
		}
		s.respond(w, r, sess)
	}
}

// respond renders the configurator fragment for htmx requests and
// redirects plain form posts back to the full page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, sess *configurator.Session) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/configure", http.StatusSeeOther)
		return
	}
	if err := s.Tmpl.ExecuteTemplate(w, "configure.html", makeViewModel(sess)); err != nil {
		log.Printf("render configure: %v", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}

// POST /select
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	s.action(func(r *http.Request, sess *configurator.Session) (int, string) {
		if sess.Step() != configurator.StepChoose {
			return 0, ""
		}
		if err := sess.Select(r.FormValue("subject")); err != nil {
			if errors.Is(err, configurator.ErrUnknownSubject) {
				return http.StatusBadRequest, "unknown subject"
			}
			return http.StatusInternalServerError, err.Error()
		}
		return 0, ""
	})(w, r)
}

// POST /option
func (s *Server) handleOption(w http.ResponseWriter, r *http.Request) {
	s.action(func(r *http.Request, sess *configurator.Session) (int, string) {
		c, ok := catalog.ParseCategory(r.FormValue("category"))
		if !ok {
			return http.StatusBadRequest, "unknown category"
		}
		// Unknown option IDs are stored as-is and resolve to the fallback.
		sess.Update(c, r.FormValue("option"))
		return 0, ""
	})(w, r)
}

// POST /next
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.action(func(_ *http.Request, sess *configurator.Session) (int, string) {
		sess.Next()
		return 0, ""
	})(w, r)
}

// POST /back
func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.action(func(_ *http.Request, sess *configurator.Session) (int, string) {
		sess.Back()
		return 0, ""
	})(w, r)
}

// POST /buy
func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	s.action(func(_ *http.Request, sess *configurator.Session) (int, string) {
		sess.ConfirmPurchase()
		return 0, ""
	})(w, r)
}

// POST /close
func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	s.action(func(_ *http.Request, sess *configurator.Session) (int, string) {
		sess.ClosePurchase()
		return 0, ""
	})(w, r)
}

func (s *Server) getOrCreateSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (*configurator.Session, string) {
	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   s.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}

	sess, ok, err := s.Store.Get(ctx, id)
	if err != nil || !ok || sess == nil {
		sess = configurator.NewSession(s.Catalog)
		_ = s.Store.Put(ctx, id, sess)
	}
	return sess, id
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
