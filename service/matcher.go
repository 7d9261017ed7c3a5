package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/utils"
)

// Matcher finds the enrolled identity closest to a probe embedding. It is
// read-only over the identity store and safe to call concurrently.
type Matcher struct {
	repo    Repository
	epsilon float64
	log     *zap.Logger
}

func NewMatcher(repo Repository, ambiguityEpsilon float64, log *zap.Logger) *Matcher {
	return &Matcher{
		repo:    repo,
		epsilon: ambiguityEpsilon,
		log:     log,
	}
}

// Match scores the probe against every enrolled identity by cosine
// similarity. The best candidate wins only when its score reaches the
// threshold AND no runner-up sits within the ambiguity epsilon of it; an
// ambiguous top pair is a deliberate no-match rather than a guess.
func (m *Matcher) Match(ctx context.Context, probe []float64, threshold float64) (dto.MatchResult, error) {
	if !utils.ValidEmbedding(probe) {
		return dto.MatchResult{}, dto.ErrMalformedEmbedding
	}

	identities, err := m.repo.ListIdentities(ctx)
	if err != nil {
		return dto.MatchResult{}, fmt.Errorf("list identities: %w", err)
	}
	if len(identities) == 0 {
		return dto.MatchResult{}, dto.ErrNoEnrolledIdentities
	}

	var (
		bestID    string
		bestScore = -1.0
		second    = -1.0
	)

	for i := range identities {
		id := &identities[i]
		if err := id.DecodeVector(); err != nil {
			return dto.MatchResult{}, fmt.Errorf("decode embedding for %s: %w", id.EmployeeID, err)
		}
		if len(id.Vector) != len(probe) {
			return dto.MatchResult{}, dto.ErrMalformedEmbedding
		}

		score := utils.CosineSimilarity(probe, id.Vector)
		if score > bestScore {
			second = bestScore
			bestScore = score
			bestID = id.EmployeeID
		} else if score > second {
			second = score
		}
	}

	if bestScore < threshold {
		m.log.Debug("probe below threshold",
			zap.Float64("score", bestScore),
			zap.Float64("threshold", threshold))
		return dto.MatchResult{Matched: false, Score: bestScore}, nil
	}

	if second >= bestScore-m.epsilon {
		m.log.Warn("ambiguous match rejected",
			zap.String("candidate", bestID),
			zap.Float64("best", bestScore),
			zap.Float64("runner_up", second))
		return dto.MatchResult{Matched: false, Score: bestScore, Ambiguous: true}, nil
	}

	return dto.MatchResult{Matched: true, EmployeeID: bestID, Score: bestScore}, nil
}
