package v1

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vmunix/cinefeed/internal/catalog"
)

func (s *Server) trending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newListResponse(s.deps.Gateway.Trending(r.Context())))
}

func (s *Server) popular(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newListResponse(s.deps.Gateway.Popular(r.Context())))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "q is required")
		return
	}

	list := newListResponse(s.deps.Gateway.Search(r.Context(), q))
	resp := searchResponse{Query: q, Items: list.Items, Total: list.Total}

	if queryBool(r, "best") {
		if m, res, ok := catalog.BestMatch(q, list.Items); ok {
			resp.Best = &bestMatch{Movie: m, Score: res.Score, Confidence: res.Confidence.String()}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, ok := s.deps.Gateway.Details(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "movie not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) similar(w http.ResponseWriter, r *http.Request) {
	id := catalog.NormalizeID(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, newListResponse(s.deps.Gateway.Similar(r.Context(), id)))
}

func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, imageResponse{URL: catalog.ImageURL(q.Get("path"), q.Get("size"))})
}
