package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/flyready/question-engine/internal/config"
	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/internal/usecase"
)

// Server aggregates handlers dependencies.
type Server struct {
	Cfg        config.Config
	Gen        usecase.GenerateService
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, gen usecase.GenerateService, dbCheck, redisCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Gen: gen, DBCheck: dbCheck, RedisCheck: redisCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

type questionsRequest struct {
	Essay      string                      `json:"essay" validate:"required,max=60000"`
	Airline    string                      `json:"airline" validate:"required,max=60"`
	Version    int                         `json:"version" validate:"required,min=1,max=1000"`
	Extraction []*domain.AttackPointRecord `json:"extraction,omitempty"`
}

// QuestionsHandler generates the five-slot question set.
func (s *Server) QuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			writeJSON(w, http.StatusNotAcceptable, errorEnvelope{Error: apiError{Code: "INVALID_ARGUMENT", Message: "not acceptable", Details: map[string]any{"accept": a}}})
			return
		}
		maxBody := s.Cfg.MaxBodyKB << 10
		if maxBody <= 0 {
			maxBody = 256 << 10
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		var req questionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			verrs := map[string]string{}
			var ve validator.ValidationErrors
			if errors.As(err, &ve) {
				for _, fe := range ve {
					verrs[strings.ToLower(fe.Field())] = fe.Tag()
				}
			}
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
			return
		}
		res, err := s.Gen.Generate(r.Context(), usecase.GenerateInput{
			Essay:      SanitizeString(req.Essay),
			Airline:    SanitizeString(req.Airline),
			Version:    req.Version,
			Extraction: req.Extraction,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"q1":            res.Set.Q1,
			"q2":            res.Set.Q2,
			"q3":            res.Set.Q3,
			"q4":            res.Set.Q4,
			"q5":            res.Set.Q5,
			"essay_hash":    res.EssayHash,
			"airline":       res.Airline,
			"airline_type":  res.AirlineType,
			"version":       res.Version,
			"cached":        res.Cached,
			"evidence":      res.Evidence,
			"risk_keywords": res.RiskKeywords,
		})
	}
}

type historyEntry struct {
	ID        string             `json:"id"`
	EssayHash string             `json:"essay_hash"`
	Airline   string             `json:"airline"`
	Type      domain.AirlineType `json:"airline_type"`
	Version   int                `json:"version"`
	Set       domain.QuestionSet `json:"set"`
	CreatedAt time.Time          `json:"created_at"`
}

// HistoryHandler lists prior generations for an essay hash, newest first.
func (s *Server) HistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := r.URL.Query().Get("essay_hash")
		if vr := ValidateEssayHash(hash); !vr.Valid {
			writeError(w, r, fmt.Errorf("%w: invalid essay_hash", domain.ErrInvalidArgument), vr.Errors)
			return
		}
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 50 {
				writeError(w, r, fmt.Errorf("%w: limit must be between 1 and 50", domain.ErrInvalidArgument), nil)
				return
			}
			limit = n
		}
		recs, err := s.Gen.History(r.Context(), hash, limit)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		entries := make([]historyEntry, 0, len(recs))
		for _, rec := range recs {
			entries = append(entries, historyEntry{
				ID:        rec.ID,
				EssayHash: rec.EssayHash,
				Airline:   rec.Airline,
				Type:      rec.Type,
				Version:   rec.Version,
				Set:       rec.Set,
				CreatedAt: rec.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": entries})
	}
}

// HealthzHandler reports process liveness.
func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadyzHandler returns a readiness handler that probes DB and Redis.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.DBCheck != nil {
			if err := s.DBCheck(ctx); err != nil {
				checks = append(checks, check{Name: "db", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "db", OK: true})
			}
		}
		if s.RedisCheck != nil {
			if err := s.RedisCheck(ctx); err != nil {
				checks = append(checks, check{Name: "redis", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "redis", OK: true})
			}
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
