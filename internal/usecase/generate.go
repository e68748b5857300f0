// Package usecase wires the analysis, extraction and rendering stages into
// the operations the transport layer exposes.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flyready/question-engine/internal/airline"
	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/internal/essay"
	"github.com/flyready/question-engine/internal/observability"
	"github.com/flyready/question-engine/internal/question"
)

// CacheVersion namespaces every cache key. Bump it whenever the rendering
// rules change in a way that makes previously cached sets stale.
const CacheVersion = "v3-go-port"

const (
	minVersion      = 1
	maxEssayRunes   = 20000
	historyMaxLimit = 50
)

// GenerateService runs one full generation: analyze the essay, ask the
// extraction collaborator for attack points, render the five slots, cache and
// persist the result.
type GenerateService struct {
	Extractor domain.Extractor
	Cache     domain.SetCache
	Repo      domain.SetRepository
	Catalog   *airline.Catalog

	cacheVersion string
}

// NewGenerateService constructs a GenerateService with the given ports and
// the current CacheVersion.
func NewGenerateService(ex domain.Extractor, c domain.SetCache, r domain.SetRepository, cat *airline.Catalog) GenerateService {
	return GenerateService{Extractor: ex, Cache: c, Repo: r, Catalog: cat, cacheVersion: CacheVersion}
}

func (s GenerateService) version() string {
	if s.cacheVersion == "" {
		return CacheVersion
	}
	return s.cacheVersion
}

// GenerateInput carries one generation request. Extraction is optional; when
// set it replaces the collaborator call and must carry one entry per item.
type GenerateInput struct {
	Essay      string
	Airline    string
	Version    int
	Extraction []*domain.AttackPointRecord
}

// Result pairs the generated set with its addressing data and the aggregate
// analysis of the essay.
type Result struct {
	Set          domain.QuestionSet
	EssayHash    string
	Airline      string
	AirlineType  domain.AirlineType
	Version      int
	Cached       bool
	Evidence     []string
	RiskKeywords []string
}

// Generate produces the 5-slot set for (essay, airline, version). Extraction
// failure is tolerated: the set is rebuilt from the essay alone. Cache and
// repository failures never block the response.
func (s GenerateService) Generate(ctx context.Context, in GenerateInput) (Result, error) {
	essayText := strings.TrimSpace(in.Essay)
	if essayText == "" {
		return Result{}, fmt.Errorf("%w: empty essay", domain.ErrInvalidArgument)
	}
	if len([]rune(essayText)) > maxEssayRunes {
		return Result{}, fmt.Errorf("%w: essay exceeds %d characters", domain.ErrInvalidArgument, maxEssayRunes)
	}
	if in.Version < minVersion {
		return Result{}, fmt.Errorf("%w: version must be >= %d", domain.ErrInvalidArgument, minVersion)
	}
	version := in.Version

	lg := observability.LoggerFromContext(ctx)
	profile := s.Catalog.Profile(in.Airline)

	items := essay.Analyze(essayText, nil)
	var recs []*domain.AttackPointRecord
	if in.Extraction != nil {
		if len(in.Extraction) != len(items) {
			return Result{}, fmt.Errorf("%w: %d extraction records for %d items", domain.ErrInvalidArgument, len(in.Extraction), len(items))
		}
		recs = in.Extraction
	} else {
		recs = s.extract(ctx, items, profile.DisplayName)
	}
	if recs != nil {
		// Record sentences feed the basis picker, so items are re-derived
		// once extraction is in hand.
		items = essay.Analyze(essayText, recs)
	}

	essayHash := question.EssayHash(essayText)
	res := Result{
		EssayHash:    essayHash,
		Airline:      profile.DisplayName,
		AirlineType:  profile.Type,
		Version:      version,
		Evidence:     essay.EvidenceSentences(essayText, 3),
		RiskKeywords: essay.RiskKeywords(essayText, 5),
	}
	key := s.cacheKey(essayHash, extractionHash(recs), profile, len(items))
	vkey := fmt.Sprintf("%s|v%d", key, version)

	if s.Cache != nil {
		if set, ok := s.Cache.Get(ctx, vkey); ok {
			observability.CacheHits.Inc()
			res.Set = set
			res.Cached = true
			return res, nil
		}
		observability.CacheMisses.Inc()
	}

	set := question.BuildSet(question.Input{
		Essay:      essayText,
		Items:      items,
		Extraction: recs,
		Profile:    profile,
		Version:    version,
	})

	if s.Cache != nil {
		s.Cache.Put(ctx, vkey, set)
	}
	if s.Repo != nil {
		rec := domain.SetRecord{
			EssayHash: essayHash,
			Airline:   profile.DisplayName,
			Type:      profile.Type,
			Version:   version,
			Set:       set,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := s.Repo.Insert(ctx, rec); err != nil {
			lg.Warn("history insert failed", "error", err, "essay_hash", essayHash)
		}
	}
	observability.GenerationsTotal.WithLabelValues(string(profile.Type)).Inc()
	res.Set = set
	return res, nil
}

// extract calls the collaborator and degrades to nil on any failure. A nil
// result is a normal state, not an error.
func (s GenerateService) extract(ctx context.Context, items []domain.EssayItem, airlineName string) []*domain.AttackPointRecord {
	if s.Extractor == nil || len(items) == 0 {
		return nil
	}
	recs, err := s.Extractor.Extract(ctx, items, airlineName)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn("extraction degraded to local analysis", "error", err)
		observability.ExtractionFailures.Inc()
		return nil
	}
	if len(recs) == 0 {
		return nil
	}
	return recs
}

func (s GenerateService) cacheKey(essayHash, extHash string, p question.ValueProfile, itemCount int) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d", s.version(), essayHash, extHash, p.DisplayName, p.Type, itemCount)
}

// extractionHash fingerprints the collaborator output so a changed extraction
// yields a different cache entry even for the same essay.
func extractionHash(recs []*domain.AttackPointRecord) string {
	if len(recs) == 0 {
		return "local"
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return "local"
	}
	return question.EssayHash(string(b))[:16]
}

var hexHashRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// History lists prior generations for an essay, newest first. The argument
// may be the raw essay text or its already-computed hash.
func (s GenerateService) History(ctx context.Context, essayOrHash string, limit int) ([]domain.SetRecord, error) {
	essayOrHash = strings.TrimSpace(essayOrHash)
	if essayOrHash == "" {
		return nil, fmt.Errorf("%w: empty essay reference", domain.ErrInvalidArgument)
	}
	if s.Repo == nil {
		return nil, nil
	}
	hash := essayOrHash
	if !hexHashRe.MatchString(hash) {
		hash = question.EssayHash(essayOrHash)
	}
	if limit <= 0 || limit > historyMaxLimit {
		limit = historyMaxLimit
	}
	recs, err := s.Repo.ListByEssayHash(ctx, hash, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return recs, nil
}

// Invalidate drops every cached set derived from the given essay, across all
// airlines, extractions and versions.
func (s GenerateService) Invalidate(ctx context.Context, essayText string) {
	if s.Cache == nil {
		return
	}
	essayText = strings.TrimSpace(essayText)
	if essayText == "" {
		return
	}
	s.Cache.Invalidate(ctx, fmt.Sprintf("%s|%s|", s.version(), question.EssayHash(essayText)))
}
