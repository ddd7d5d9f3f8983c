package usecase

import (
	"slices"

	"github.com/secmon-lab/controlchart/pkg/domain/model"
)

// ExtractTransition finds the first time the issue's status moved to the
// matcher's target label. History is ordered by occurrence first, keeping the
// tracker's order for changes with equal timestamps. Later returns to the
// target status are ignored.
func ExtractTransition(issue *model.Issue, matcher model.LabelMatcher) (model.Transition, bool) {
	history := slices.Clone(issue.History)
	slices.SortStableFunc(history, func(a, b model.StatusChange) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	for _, change := range history {
		if change.IsStatus() && matcher.Match(change.To) {
			return model.Transition{
				CreatedAt:      issue.CreatedAt,
				TransitionedAt: change.OccurredAt,
			}, true
		}
	}

	return model.Transition{}, false
}
