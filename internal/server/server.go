package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"rift-rewind/internal/apperr"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/repository"
	"rift-rewind/internal/service"

	"github.com/rs/zerolog"
)

// Server owns the HTTP surface: the stats pipeline endpoints, the comparison
// page, the champion-suggestion passthrough and the demo roster.
type Server struct {
	stats   *service.StatsService
	compare *service.CompareService
	recap   *service.RecapService
	roster  *repository.RosterRepository
	logger  zerolog.Logger
}

func New(stats *service.StatsService, compare *service.CompareService, recap *service.RecapService, roster *repository.RosterRepository, logger zerolog.Logger) *Server {
	return &Server{stats: stats, compare: compare, recap: recap, roster: roster, logger: logger}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/test", s.handleTest)
	mux.HandleFunc("GET /stats-summary/{summonerName}", s.handleStatsSummary)
	mux.HandleFunc("GET /compare", s.handleCompare)
	mux.HandleFunc("POST /suggest-champions", s.handleSuggestChampions)
	mux.HandleFunc("GET /home", s.handleHome)
	mux.HandleFunc("POST /home", s.handleAddPerson)
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API is working!"})
}

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("summonerName")
	q := r.URL.Query()

	region := q.Get("region")
	if region == "" {
		region = "na1"
	}
	tag := q.Get("tagLine")
	if tag == "" {
		tag = q.Get("tag")
	}
	if tag == "" {
		tag = strings.ToUpper(region)
	}

	opts := service.StatsOptions{
		Count:       intParam(q.Get("count"), constants.DefaultMatchCount),
		FullHistory: q.Get("fullHistory") == "true",
		MaxMatches:  intParam(q.Get("maxMatches"), constants.MaxMatchHistory),
		RankedOnly:  q.Get("rankedOnly") == "true",
	}

	agg, err := s.stats.PlayerStats(r.Context(), region, name, tag, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summary := s.recap.Summary(r.Context(), name+"#"+tag, agg)

	writeJSON(w, http.StatusOK, map[string]any{
		"stats":   agg,
		"summary": summary,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	region := q.Get("region")
	if region == "" {
		region = "na1"
	}
	tagA := q.Get("atag")
	if tagA == "" {
		tagA = strings.ToUpper(region)
	}
	tagB := q.Get("btag")
	if tagB == "" {
		tagB = strings.ToUpper(region)
	}
	count := intParam(q.Get("count"), constants.DefaultCompareCount)

	result, err := s.compare.Compare(r.Context(), region, q.Get("a"), tagA, q.Get("b"), tagB, count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// The AI judgment is produced separately and never feeds the verdict.
	recommendation, analysis := s.recap.Comparison(r.Context(), result.Players[0], result.Players[1])

	writeJSON(w, http.StatusOK, map[string]any{
		"region":          result.Region,
		"players":         result.Players,
		"winnerByWinRate": result.Winner,
		"recommendation":  recommendation,
		"analysis":        analysis,
	})
}

func (s *Server) handleSuggestChampions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TopChamps []domain.ChampionCount `json:"topChamps"`
		Matches   []domain.MatchRecord   `json:"matches"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	suggestions := s.recap.SuggestChampions(r.Context(), body.TopChamps, body.Matches)
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	entries, err := s.roster.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	people := make([]string, len(entries))
	for i, e := range entries {
		people[i] = e.Name
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Hello World",
		"people":  people,
	})
}

func (s *Server) handleAddPerson(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name is required"})
		return
	}

	if _, err := s.roster.Add(r.Context(), body.Name); err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, err := s.roster.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	people := make([]string, len(entries))
	for i, e := range entries {
		people[i] = e.Name
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "people": people})
}

// writeError is the single boundary converting any pipeline error into the
// structured {"error": ...} shape. No stack traces reach the caller.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request failed")
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
