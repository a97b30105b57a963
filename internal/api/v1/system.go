package v1

import "net/http"

var okBody = []byte("ok")

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(okBody)
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	movies, lists := s.deps.Gateway.CacheStats()
	writeJSON(w, http.StatusOK, statusResponse{
		Status:       "ok",
		Version:      s.deps.Version,
		CachedMovies: movies,
		CachedLists:  lists,
	})
}

func (s *Server) clearCache(w http.ResponseWriter, _ *http.Request) {
	s.deps.Gateway.ClearCache()
	s.log.Info("cache cleared")
	writeJSON(w, http.StatusOK, clearCacheResponse{Cleared: true})
}
