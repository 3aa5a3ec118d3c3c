package history_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxforge/uxlint/internal/history"
	"github.com/uxforge/uxlint/internal/pattern"
	"github.com/uxforge/uxlint/internal/report"
	"github.com/uxforge/uxlint/internal/validate"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRun(i int) history.Run {
	return history.Run{
		ID:             fmt.Sprintf("run-%03d", i),
		RanAt:          fmt.Sprintf("2026-08-21T10:00:%02dZ", i),
		ScaffoldPath:   "testdata/login.json",
		ScaffoldDigest: "abc",
		ContentDigest:  "def",
		Patterns:       4,
		MustFailed:     1,
		ShouldFailed:   2,
		TotalIssues:    3,
		Score:          75,
		Band:           validate.BandGood,
	}
}

func TestSaveAndRecent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, sampleRun(i)))
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-002", runs[0].ID, "newest first")
	assert.Equal(t, "run-001", runs[1].ID)

	got := runs[0]
	assert.Equal(t, 75, got.Score)
	assert.Equal(t, validate.BandGood, got.Band)
	assert.Equal(t, 1, got.MustFailed)
	assert.Equal(t, "testdata/login.json", got.ScaffoldPath)
}

func TestRecentTieBreaksByInsertionOrder(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first := sampleRun(0)
	second := sampleRun(1)
	second.RanAt = first.RanAt // same second
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID, "later insert wins the tie")
}

func TestSaveRejectsDuplicateID(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleRun(1)))
	err := s.Save(ctx, sampleRun(1))
	assert.Error(t, err)
}

func TestPrune(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, sampleRun(i)))
	}

	removed, err := s.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-004", runs[0].ID)
	assert.Equal(t, "run-003", runs[1].ID)

	removed, err = s.Prune(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, removed, "pruning below the row count removes nothing")
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := history.Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Save(context.Background(), sampleRun(1)))
	require.NoError(t, s1.Close())

	s2, err := history.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1, "reopening keeps existing rows")
}

func TestFromArtifact(t *testing.T) {
	a, err := report.NewArtifact(
		"testdata/login.json",
		[]byte(`{"version":"1.0"}`),
		[]string{pattern.NameFormBasic},
		validate.Summary{
			Patterns: []validate.PatternResult{
				{Pattern: pattern.NameFormBasic, MustFailed: 1, ShouldFailed: 0},
				{Pattern: pattern.NameTableSimple, MustFailed: 0, ShouldFailed: 2},
			},
			HasMustFailures: true,
			TotalIssues:     3,
		},
		nil,
		validate.CoverageResult{Activated: 1, NTotal: 4, Percent: 25, Gaps: []validate.Gap{}},
		validate.ScoreCounts(1, 2),
	)
	require.NoError(t, err)

	run := history.FromArtifact(a)
	assert.Equal(t, a.RunID, run.ID)
	assert.Equal(t, a.GeneratedAt, run.RanAt)
	assert.Equal(t, a.ContentDigest, run.ContentDigest)
	assert.Equal(t, 2, run.Patterns)
	assert.Equal(t, 1, run.MustFailed)
	assert.Equal(t, 2, run.ShouldFailed)
	assert.Equal(t, 3, run.TotalIssues)
	assert.Equal(t, 75, run.Score)
}