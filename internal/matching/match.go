package matching

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Kieseatic/Ats/internal/types"
)

// matchConcurrency bounds how many jobs are scored at once in MatchAll.
const matchConcurrency = 8

// Matcher scores resumes against jobs. The zero value is not usable; build
// one with NewMatcher.
type Matcher struct {
	contextual ContextualScorer
}

// NewMatcher builds a Matcher using the given contextual scorer. Passing nil
// selects the keyword-overlap baseline.
func NewMatcher(contextual ContextualScorer) *Matcher {
	if contextual == nil {
		contextual = KeywordOverlapScorer{}
	}
	return &Matcher{contextual: contextual}
}

// Match scores one resume against one job across the four factors and
// aggregates them into a single 0..100 score. Tool fit is reported in the
// explanation when the job lists tools, but never contributes to the
// aggregate.
func (m *Matcher) Match(ctx context.Context, job *types.JobRecord, resumeText string) (*types.MatchResult, error) {
	skillScore, matched, unmatched := ScoreSkills(job.Skills, resumeText)
	expScore, expDetail := ScoreExperience(job.Experience, resumeText)
	qualiScore, qualiDetail := ScoreQualification(job.Qualification, resumeText)

	ctxScore, err := m.contextual.Similarity(ctx, job.Description, resumeText)
	if err != nil {
		// Degrade to the keyword baseline rather than failing the match.
		log.Printf("contextual scorer failed for job %q, falling back to keyword overlap: %v", job.Identifier(), err)
		ctxScore = KeywordOverlap(job.Description, resumeText)
	}

	total := aggregate(job.Weights, skillScore, expScore, qualiScore, ctxScore,
		strings.TrimSpace(job.Description) != "")

	explanation := map[string]types.FactorDetail{
		types.FactorSkills: {
			Score:  skillScore,
			Detail: skillDetail(matched, unmatched),
		},
		types.FactorExperience: {
			Score:  expScore,
			Detail: expDetail,
		},
		types.FactorQualification: {
			Score:  qualiScore,
			Detail: qualiDetail,
		},
		types.FactorContextual: {
			Score:  ctxScore,
			Detail: fmt.Sprintf("Resume covers %.1f%% of the job description's key terms.", ctxScore),
		},
	}

	if len(job.Tools) > 0 {
		toolScore, toolMatched, toolUnmatched := ScoreTools(job.Tools, resumeText)
		explanation[types.FactorTools] = types.FactorDetail{
			Score:  toolScore,
			Detail: skillDetail(toolMatched, toolUnmatched),
		}
	}

	return &types.MatchResult{
		JobID:       job.Identifier(),
		Score:       total,
		Explanation: explanation,
	}, nil
}

// MatchAll scores a resume against every job concurrently and returns results
// ordered best-first. Jobs that fail to score fail the whole call.
func (m *Matcher) MatchAll(ctx context.Context, jobs []types.JobRecord, resumeText string) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(matchConcurrency)
	for i := range jobs {
		g.Go(func() error {
			res, err := m.Match(gctx, &jobs[i], resumeText)
			if err != nil {
				return fmt.Errorf("match job %q: %w", jobs[i].Identifier(), err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results, nil
}

// aggregate combines the factor scores. With no weights (or all-zero weights)
// the factors count equally; otherwise each factor contributes in proportion
// to its weight. A job without a description has nothing to compare
// contextually, so that factor is left out of the mean entirely rather than
// scoring zero.
func aggregate(w *types.FactorWeights, skills, experience, qualification, contextual float64, hasContextual bool) float64 {
	if w == nil || w.IsZero() {
		if !hasContextual {
			return (skills + experience + qualification) / 3
		}
		return (skills + experience + qualification + contextual) / 4
	}

	ctxWeight := w.Contextual
	if !hasContextual {
		ctxWeight = 0
	}
	total := w.Skills + w.Experience + w.Qualification + ctxWeight
	if total == 0 {
		return (skills + experience + qualification) / 3
	}
	return (skills*w.Skills + experience*w.Experience + qualification*w.Qualification + contextual*ctxWeight) / total
}

func skillDetail(matched, unmatched []string) string {
	switch {
	case len(matched) == 0 && len(unmatched) == 0:
		return "No skills required."
	case len(unmatched) == 0:
		return fmt.Sprintf("All required skills present: %s.", strings.Join(matched, ", "))
	case len(matched) == 0:
		return fmt.Sprintf("Missing skills: %s.", strings.Join(unmatched, ", "))
	default:
		return fmt.Sprintf("Matched: %s. Missing: %s.", strings.Join(matched, ", "), strings.Join(unmatched, ", "))
	}
}
