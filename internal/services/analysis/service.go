// Package analysis orchestrates a full tax analysis run: validation,
// health scoring, AI recommendations, persistence and result caching.
package analysis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"taxpilot/internal/models"
	"taxpilot/internal/repositories"
	"taxpilot/internal/repositories/cache"
	"taxpilot/internal/services/recommend"
	"taxpilot/internal/services/taxengine"

	"github.com/google/uuid"
)

// Result is the payload of a completed analysis run.
type Result struct {
	Reference         string                `json:"reference"`
	HealthScore       taxengine.HealthScore `json:"healthScore"`
	AIRecommendations []string              `json:"aiRecommendations"`
	Timestamp         time.Time             `json:"timestamp"`
}

// Comparison is the payload of a canton comparison run.
type Comparison struct {
	Calculations []taxengine.TaxBreakdown `json:"calculations"`
	Summary      ComparisonSummary        `json:"summary"`
	Timestamp    time.Time                `json:"timestamp"`
}

// ComparisonSummary condenses a comparison to the headline numbers.
// When the profile names no canton, the cheapest canton stands in as the
// current one, mirroring a prospect who has not settled anywhere yet.
type ComparisonSummary struct {
	CurrentCantonTax float64 `json:"currentCantonTax"`
	BestCantonTax    float64 `json:"bestCantonTax"`
	PotentialSavings float64 `json:"potentialSavings"`
	BestCanton       string  `json:"bestCanton"`
	AverageTax       float64 `json:"averageTax"`
}

// Service runs analyses and comparisons.
type Service interface {
	Analyze(ctx context.Context, userID uint, profile taxengine.CompanyProfile) (*Result, error)
	Compare(ctx context.Context, profile taxengine.CompanyProfile) (*Comparison, error)
	History(ctx context.Context, userID uint, limit int) ([]models.AnalysisHistory, error)
}

type service struct {
	engine      *taxengine.Engine
	recommender recommend.Service
	history     repositories.AnalysisRepository
	cache       *cache.CacheService
	now         func() time.Time
}

// NewService creates an analysis service. History and cache are optional;
// anonymous or unpersisted runs pass nil.
func NewService(engine *taxengine.Engine, recommender recommend.Service, history repositories.AnalysisRepository, cacheSvc *cache.CacheService) Service {
	if engine == nil {
		panic("tax engine is required")
	}
	if recommender == nil {
		panic("recommender is required")
	}
	return &service{
		engine:      engine,
		recommender: recommender,
		history:     history,
		cache:       cacheSvc,
		now:         time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, userID uint, profile taxengine.CompanyProfile) (*Result, error) {
	score, err := s.engine.ScoreHealth(profile)
	if err != nil {
		return nil, err
	}

	savings, err := s.engine.AnalyzeSavings(profile, profile.Canton)
	if err != nil {
		return nil, err
	}

	// Recommendation failures degrade to the static fallback inside the
	// recommender; they never fail the analysis.
	recommendations := s.recommender.Generate(ctx, profile, score, savings)

	result := &Result{
		Reference:         uuid.NewString(),
		HealthScore:       score,
		AIRecommendations: recommendations,
		Timestamp:         s.now().UTC(),
	}

	s.persist(ctx, userID, profile, result)
	return result, nil
}

func (s *service) Compare(ctx context.Context, profile taxengine.CompanyProfile) (*Comparison, error) {
	breakdowns := s.engine.ComputeAll(profile)
	ranked := taxengine.RankByBurden(breakdowns)

	var total float64
	for _, b := range breakdowns {
		total += b.TotalTaxBurden
	}

	best := ranked[0]
	current := best
	if profile.Canton != "" {
		// An unknown canton is an error, not a silent fallback; only an
		// absent canton means "no current canton yet".
		found := false
		for _, b := range breakdowns {
			if b.Canton == profile.Canton {
				current = b
				found = true
				break
			}
		}
		if !found {
			return nil, taxengine.ErrCantonNotFound
		}
	}

	return &Comparison{
		Calculations: ranked,
		Summary: ComparisonSummary{
			CurrentCantonTax: current.TotalTaxBurden,
			BestCantonTax:    best.TotalTaxBurden,
			PotentialSavings: current.TotalTaxBurden - best.TotalTaxBurden,
			BestCanton:       best.Canton,
			AverageTax:       total / float64(len(breakdowns)),
		},
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *service) History(ctx context.Context, userID uint, limit int) ([]models.AnalysisHistory, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListByUser(userID, limit)
}

// persist stores the run for the dashboard and caches the full result.
// Both are best effort; a storage hiccup must not fail a computed analysis.
func (s *service) persist(ctx context.Context, userID uint, profile taxengine.CompanyProfile, result *Result) {
	if s.history == nil || userID == 0 {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		log.Printf("failed to marshal analysis result %s: %v", result.Reference, err)
		return
	}
	var payload models.JSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("failed to encode analysis result %s: %v", result.Reference, err)
		return
	}

	record := &models.AnalysisHistory{
		UserID:           userID,
		Reference:        result.Reference,
		CompanyName:      profile.Name,
		Canton:           profile.Canton,
		HealthScore:      result.HealthScore.Score,
		Grade:            string(result.HealthScore.Grade),
		PotentialSavings: result.HealthScore.PotentialSavings,
		Result:           payload,
	}
	if err := s.history.Create(record); err != nil {
		log.Printf("failed to persist analysis %s: %v", result.Reference, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.AnalysisKey(result.Reference), result); err != nil {
			log.Printf("failed to cache analysis %s: %v", result.Reference, err)
		}
	}
}
