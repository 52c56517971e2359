package catalog

import "assessment-service/internal/models"

var arabicToEnglish = func() map[string]string {
	m := make(map[string]string)
	for i := range questions {
		q := &questions[i]
		for j, ar := range q.AR.Options {
			if j < len(q.EN.Options) {
				m[ar] = q.EN.Options[j]
			}
		}
	}
	return m
}()

// TranslateToEnglish returns a copy of the answer set with every Arabic
// option label replaced by its English counterpart. Numbers and labels with
// no translation pass through unchanged. The input set is not modified.
func TranslateToEnglish(answers models.AnswerSet) models.AnswerSet {
	translated := make(models.AnswerSet, len(answers))
	for id, a := range answers {
		if a.Kind == models.AnswerKindLabel {
			if en, ok := arabicToEnglish[a.Label]; ok {
				a.Label = en
			}
		}
		translated[id] = a
	}
	return translated
}
