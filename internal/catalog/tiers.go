package catalog

import "assessment-service/internal/models"

// Tier is the ordered severity bucket of a select answer: the index of the
// chosen option within its question, 0 being the first option. The English
// and Arabic option lists are parallel, so an answer in either language maps
// to the same tier — this table is the single place where raw labels are
// normalized, shared by scoring and feedback.
type Tier int

var tierByLabel = func() map[string]map[string]Tier {
	byQuestion := make(map[string]map[string]Tier)
	for i := range questions {
		q := &questions[i]
		if q.Kind != models.KindSelect {
			continue
		}
		labels := make(map[string]Tier, len(q.EN.Options)+len(q.AR.Options))
		for tier, label := range q.EN.Options {
			labels[label] = Tier(tier)
		}
		for tier, label := range q.AR.Options {
			labels[label] = Tier(tier)
		}
		byQuestion[q.ID] = labels
	}
	return byQuestion
}()

// TierOf resolves the stored answer for a select question to its tier.
// Returns false when the question is unanswered or the label matches no
// option in either language.
func TierOf(answers models.AnswerSet, questionID string) (Tier, bool) {
	label, ok := answers.Label(questionID)
	if !ok {
		return 0, false
	}
	tier, ok := tierByLabel[questionID][label]
	return tier, ok
}
