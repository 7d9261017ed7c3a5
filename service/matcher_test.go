package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
)

func enroll(t *testing.T, repo *memoryRepo, employeeID string, vector []float64) {
	t.Helper()
	identity := models.EnrolledIdentity{
		EmployeeID: employeeID,
		Vector:     vector,
		EnrolledAt: time.Now(),
	}
	require.NoError(t, identity.EncodeVector())
	require.NoError(t, repo.PutIdentity(context.Background(), &identity))
}

func TestMatchExactSelfMatch(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{0.3, -0.2, 0.9})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	result, err := m.Match(context.Background(), []float64{0.3, -0.2, 0.9}, 1.0)

	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "E1", result.EmployeeID)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}

func TestMatchNearProbe(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{1, 0, 0})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	result, err := m.Match(context.Background(), []float64{0.99, 0.1, 0}, 0.95)

	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "E1", result.EmployeeID)
}

func TestMatchBelowThreshold(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{1, 0, 0})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	result, err := m.Match(context.Background(), []float64{0, 1, 0}, 0.95)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Empty(t, result.EmployeeID)
}

func TestMatchAmbiguousIsNoMatch(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{1, 0, 0})
	enroll(t, repo, "E2", []float64{1, 0.001, 0})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	result, err := m.Match(context.Background(), []float64{1, 0, 0}, 0.9)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.True(t, result.Ambiguous)
}

func TestMatchDistinctIdentities(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{1, 0, 0})
	enroll(t, repo, "E2", []float64{0, 1, 0})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	result, err := m.Match(context.Background(), []float64{0.98, 0.05, 0.01}, 0.9)

	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "E1", result.EmployeeID)
}

func TestMatchEmptyStore(t *testing.T) {
	m := NewMatcher(newMemoryRepo(), 0.01, zap.NewNop())

	_, err := m.Match(context.Background(), []float64{1, 0, 0}, 0.9)

	assert.ErrorIs(t, err, dto.ErrNoEnrolledIdentities)
}

func TestMatchDimensionMismatch(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{1, 0, 0})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	_, err := m.Match(context.Background(), []float64{1, 0}, 0.9)

	assert.ErrorIs(t, err, dto.ErrMalformedEmbedding)
}

func TestMatchZeroProbe(t *testing.T) {
	repo := newMemoryRepo()
	enroll(t, repo, "E1", []float64{1, 0, 0})
	m := NewMatcher(repo, 0.01, zap.NewNop())

	_, err := m.Match(context.Background(), []float64{0, 0, 0}, 0.9)

	assert.ErrorIs(t, err, dto.ErrMalformedEmbedding)
}
