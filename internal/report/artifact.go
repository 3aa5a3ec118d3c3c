// Package report builds and writes the artifacts of a validation run:
// the flow.json payload with its canonical content digest, the static
// HTML report, and the console summary in plain and styled form. All
// file writes are atomic.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gowebpki/jcs"

	"github.com/uxforge/uxlint/internal/validate"
)

// NowUTC stamps artifacts and history rows: RFC3339 UTC truncated to whole
// seconds, so the "Z" form is stable across platforms.
func NowUTC() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

// Artifact is the flow.json payload for one validation run. RunID and
// GeneratedAt vary per run; everything else is a pure function of the
// scaffold and the activated patterns, and ContentDigest seals exactly
// that deterministic remainder.
type Artifact struct {
	RunID          string                       `json:"runId"`
	GeneratedAt    string                       `json:"generatedAt"`
	ScaffoldPath   string                       `json:"scaffoldPath"`
	ScaffoldDigest string                       `json:"scaffoldDigest"`
	Activated      []string                     `json:"activated"`
	Summary        validate.Summary             `json:"summary"`
	Suggestions    []validate.PatternSuggestion `json:"suggestions"`
	Coverage       validate.CoverageResult      `json:"coverage"`
	Score          validate.FidelityScore       `json:"score"`
	ContentDigest  string                       `json:"contentDigest,omitempty"`
}

// NewArtifact assembles a flow.json payload and seals its content digest.
func NewArtifact(scaffoldPath string, scaffoldRaw []byte, activated []string,
	sum validate.Summary, suggestions []validate.PatternSuggestion,
	coverage validate.CoverageResult, score validate.FidelityScore) (Artifact, error) {

	a := Artifact{
		RunID:          uuid.NewString(),
		GeneratedAt:    NowUTC(),
		ScaffoldPath:   filepath.ToSlash(scaffoldPath),
		ScaffoldDigest: DigestBytes(scaffoldRaw),
		Activated:      append([]string{}, activated...),
		Summary:        sum,
		Suggestions:    suggestions,
		Coverage:       coverage,
		Score:          score,
	}
	if a.Suggestions == nil {
		a.Suggestions = []validate.PatternSuggestion{}
	}
	digest, err := ContentDigest(a)
	if err != nil {
		return Artifact{}, err
	}
	a.ContentDigest = digest
	return a, nil
}

// ContentDigest hashes the canonical JSON form of the artifact's
// deterministic sections. RunID, GeneratedAt and the digest field itself
// are excluded from the input, so two runs over identical scaffolds and
// pattern sets produce identical digests.
func ContentDigest(a Artifact) (string, error) {
	a.RunID = ""
	a.GeneratedAt = ""
	a.ContentDigest = ""
	raw, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("marshal artifact: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize artifact: %w", err)
	}
	return DigestBytes(canonical), nil
}

// VerifyDigest recomputes the content digest and reports whether it
// matches the one the artifact carries.
func VerifyDigest(a Artifact) (bool, error) {
	want, err := ContentDigest(a)
	if err != nil {
		return false, err
	}
	return want == a.ContentDigest, nil
}

// DigestBytes is the sha256 hex digest of raw bytes.
func DigestBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
