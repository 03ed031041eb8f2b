package web

import (
	"encoding/json"
	"log"
	"net/http"

	"avatarmarket/internal/configurator"
	"avatarmarket/internal/receipt"
)

// GET /receipt.pdf
func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.sessionID(r)
	if id == "" {
		http.Redirect(w, r, "/configure", http.StatusFound)
		return
	}
	sess, ok, err := s.Store.Get(r.Context(), id)
	if err != nil || !ok || sess.Step() != configurator.StepReview {
		http.Redirect(w, r, "/configure", http.StatusFound)
		return
	}
	pdf, err := receipt.Generate(sess.Quote())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="avatar-order.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write receipt: %v", err)
	}
}

// GET /catalog.json
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(s.Catalog); err != nil {
		log.Printf("encode catalog: %v", err)
	}
}
