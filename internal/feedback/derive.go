// Package feedback maps a completed answer set and BMI to the per-category
// advice strings shown on the results screen, in the session language.
package feedback

import (
	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

// Derive builds the feedback bundle for a completed answer set. Pure: safe
// to call repeatedly. Tier classification goes through the same catalog
// lookup the scoring engine uses, so both languages land in the same bucket.
func Derive(answers models.AnswerSet, bmi float64, language string) models.FeedbackBundle {
	msgs := messagesFor(language)
	return models.FeedbackBundle{
		BMI:       bmiFeedback(msgs, bmi),
		Sleep:     sleepFeedback(msgs, answers),
		Activity:  tieredFeedback(&msgs.Activity, answers, catalog.QActivityDays),
		Nutrition: tieredFeedback(&msgs.Nutrition, answers, catalog.QNutritionServings),
		Lifestyle: lifestyleFeedback(msgs, answers),
	}
}

func bmiFeedback(msgs *messageTable, bmi float64) string {
	switch {
	case bmi < 18.5:
		return msgs.BMI.Underweight
	case bmi >= 30:
		return msgs.BMI.Obese
	case bmi >= 25:
		return msgs.BMI.Overweight
	default:
		return msgs.BMI.Normal
	}
}

func sleepFeedback(msgs *messageTable, answers models.AnswerSet) string {
	sleep, ok := answers.Number(catalog.QSleepHours)
	switch {
	case ok && sleep < 6:
		return msgs.Sleep.Poor
	case ok && sleep < 7:
		return msgs.Sleep.Moderate
	default:
		return msgs.Sleep.Good
	}
}

// tieredFeedback buckets the four ascending tiers as poor/moderate/moderate/good.
func tieredFeedback(msgs *bucketMessages, answers models.AnswerSet, questionID string) string {
	tier, ok := catalog.TierOf(answers, questionID)
	switch {
	case ok && tier == 0:
		return msgs.Poor
	case ok && tier <= 2:
		return msgs.Moderate
	default:
		return msgs.Good
	}
}

// lifestyleFeedback is cumulative: one message per concerning condition, in
// the fixed order smoking, stress, water, fast food, coffee, energy drinks.
// The thresholds are coarser than scoring (smoking flags on occasional too).
func lifestyleFeedback(msgs *messageTable, answers models.AnswerSet) []string {
	var list []string

	if tier, ok := catalog.TierOf(answers, catalog.QSmoking); ok && (tier == 1 || tier == 2) {
		list = append(list, msgs.Lifestyle.Smoking)
	}
	if tier, ok := catalog.TierOf(answers, catalog.QStress); ok && tier >= 2 {
		list = append(list, msgs.Lifestyle.Stress)
	}
	if tier, ok := catalog.TierOf(answers, catalog.QWater); ok && tier == 0 {
		list = append(list, msgs.Lifestyle.Water)
	}
	if tier, ok := catalog.TierOf(answers, catalog.QFastFood); ok && tier >= 2 {
		list = append(list, msgs.Lifestyle.FastFood)
	}
	if tier, ok := catalog.TierOf(answers, catalog.QCoffee); ok && tier == 3 {
		list = append(list, msgs.Lifestyle.Coffee)
	}
	if tier, ok := catalog.TierOf(answers, catalog.QEnergyDrinks); ok && tier >= 2 {
		list = append(list, msgs.Lifestyle.EnergyDrinks)
	}

	if len(list) == 0 {
		return []string{msgs.Lifestyle.Good}
	}
	return list
}
