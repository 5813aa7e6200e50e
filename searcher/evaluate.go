package searcher

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"answertree/oracle"
)

// DefaultRatingScale matches the "Rating: <0-100>" contract the rating prompt
// asks for. Scores are normalized to [0,1] before entering the tree.
const DefaultRatingScale = 100.0

const neutralScore = 0.5

var ratingPattern = regexp.MustCompile(`(?i)rating[^0-9-]*(-?[0-9]+(?:\.[0-9]+)?)`)

var leadingNumberPattern = regexp.MustCompile(`-?[0-9]+(?:\.[0-9]+)?`)

// evaluator wraps the oracle to score candidates and to rewrite them toward
// higher quality. A malformed or failed rating degrades to the neutral
// midpoint instead of aborting the search.
type evaluator struct {
	oracle  oracle.Oracle
	scale   float64
	metrics MetricsCollector
}

// evaluate rates a node's answer against the query, normalized to [0,1].
func (e *evaluator) evaluate(ctx context.Context, node *Node, query string) float64 {
	e.metrics.AddOracleCall()
	text, err := e.oracle.Generate(ctx, buildRatePrompt(query, node.answer, e.scale))
	if err != nil {
		log.Warn().Err(err).Str("node", node.id).Msg("rating call failed, using neutral score")
		e.metrics.AddEvaluationFailure()
		return neutralScore
	}
	score, ok := parseRating(text, e.scale)
	if !ok {
		log.Warn().Str("node", node.id).Str("response", truncate(text, 80)).
			Msg("unparseable rating, using neutral score")
		e.metrics.AddEvaluationFailure()
		return neutralScore
	}
	return score
}

// improve asks the oracle for a rewritten, higher-quality version of the
// node's answer, optionally guided by a critique pass first.
func (e *evaluator) improve(ctx context.Context, node *Node, query string) (string, error) {
	critique := ""
	e.metrics.AddOracleCall()
	text, err := e.oracle.Generate(ctx, buildCritiquePrompt(query, node.answer))
	if err == nil {
		critique = text
	} else {
		// A failed critique still allows a blind rewrite.
		log.Debug().Err(err).Str("node", node.id).Msg("critique call failed, improving without it")
	}

	e.metrics.AddOracleCall()
	improved, err := e.oracle.Generate(ctx, buildImprovePrompt(query, node.answer, critique))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(improved), nil
}

// parseRating extracts a score from an oracle response and normalizes it to
// [0,1]. Accepts "Rating: 85", "rating = 85/100" or a bare leading number;
// out-of-range values clamp to the scale.
func parseRating(text string, scale float64) (float64, bool) {
	raw := ""
	if m := ratingPattern.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := leadingNumberPattern.FindString(strings.TrimSpace(text)); m != "" {
		raw = m
	}
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if value < 0 {
		value = 0
	}
	if value > scale {
		value = scale
	}
	return value / scale, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
