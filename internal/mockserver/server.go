// Package mockserver serves an OMDb-compatible API from a fixed in-memory
// catalog so the smoke tests can run offline.
package mockserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	pageSize = 10
	maxPage  = 100
)

var imdbIDPattern = regexp.MustCompile(`^tt\d+$`)

type Options struct {
	// APIKey 为空时接受任意非空 key
	APIKey  string
	Latency time.Duration
	Catalog []Title
	Logger  *slog.Logger
}

type Server struct {
	opts   Options
	router *chi.Mux
}

func New(opts Options) *Server {
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{opts: opts, router: chi.NewRouter()}
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.Recoverer)
	s.router.Use(s.requestLog)
	s.router.Get("/", s.handleQuery)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		q := r.URL.Query()
		q.Del("apikey")
		s.opts.Logger.Debug("mock request",
			"request_id", chimw.GetReqID(r.Context()),
			"query", q.Encode(),
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key := q.Get("apikey")
	if key == "" {
		s.writeError(w, http.StatusUnauthorized, "No API key provided.")
		return
	}
	if s.opts.APIKey != "" && key != s.opts.APIKey {
		s.writeError(w, http.StatusUnauthorized, "Invalid API key!")
		return
	}

	if s.opts.Latency > 0 {
		select {
		case <-time.After(s.opts.Latency):
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case q.Get("s") != "":
		s.search(w, q.Get("s"), q.Get("y"), q.Get("type"), q.Get("page"))
	case q.Get("i") != "":
		s.byID(w, q.Get("i"))
	case q.Get("t") != "":
		s.byTitle(w, q.Get("t"))
	default:
		s.writeError(w, http.StatusOK, "Something went wrong.")
	}
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

func (s *Server) search(w http.ResponseWriter, term, year, kind, pageParam string) {
	page := 1
	if pageParam != "" {
		p, err := strconv.Atoi(pageParam)
		if err != nil || p < 1 || p > maxPage {
			s.writeError(w, http.StatusOK, "The offset specified in the page parameter is out of range.")
			return
		}
		page = p
	}

	term = strings.ToLower(term)
	var matches []searchItem
	for _, t := range s.opts.Catalog {
		if !strings.Contains(strings.ToLower(t.Title), term) {
			continue
		}
		if year != "" && !strings.HasPrefix(t.Year, year) {
			continue
		}
		if kind != "" && t.Type != kind {
			continue
		}
		matches = append(matches, searchItem{
			Title:  t.Title,
			Year:   t.Year,
			ImdbID: t.ImdbID,
			Type:   t.Type,
			Poster: "N/A",
		})
	}

	start := (page - 1) * pageSize
	if start >= len(matches) {
		s.writeError(w, http.StatusOK, "Movie not found!")
		return
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"Search":       matches[start:end],
		"totalResults": strconv.Itoa(len(matches)),
		"Response":     "True",
	})
}

func (s *Server) byID(w http.ResponseWriter, id string) {
	if !imdbIDPattern.MatchString(id) {
		s.writeError(w, http.StatusOK, "Incorrect IMDb ID.")
		return
	}
	for _, t := range s.opts.Catalog {
		if t.ImdbID == id {
			s.writeTitle(w, t)
			return
		}
	}
	s.writeError(w, http.StatusOK, "Error getting data.")
}

func (s *Server) byTitle(w http.ResponseWriter, title string) {
	for _, t := range s.opts.Catalog {
		if strings.EqualFold(t.Title, title) {
			s.writeTitle(w, t)
			return
		}
	}
	s.writeError(w, http.StatusOK, "Movie not found!")
}

func (s *Server) writeTitle(w http.ResponseWriter, t Title) {
	s.writeJSON(w, http.StatusOK, struct {
		Title
		Response string `json:"Response"`
	}{t, "True"})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"Response": "False",
		"Error":    message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// 状态码已经写出，只能记录日志
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.opts.Logger.Warn("write mock response", "status", status, "error", err)
	}
}
