// Package scoring derives the BMI and the 0-100 wellness score from a
// completed answer set. Everything here is a pure function of its inputs.
package scoring

import (
	"math"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

// BMI computes weight_kg / (height_cm/100)^2 rounded to two decimals.
// Returns 0 when height or weight is absent or non-positive.
func BMI(answers models.AnswerSet) float64 {
	heightCm, okH := answers.Number(catalog.QHeight)
	weightKg, okW := answers.Number(catalog.QWeight)
	if !okH || !okW || heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// Score starts at 100 and applies independent additive deductions per
// factor, then floors at 0. Within a factor only the first matching band
// applies. Select answers are classified through the catalog tier table, so
// English and Arabic labels score identically.
func Score(answers models.AnswerSet, bmi float64) int {
	score := 100.0

	if bmi < 18.5 || bmi >= 30 {
		score -= 20
	} else if bmi >= 25 {
		score -= 10
	}

	if sleep, ok := answers.Number(catalog.QSleepHours); ok {
		if sleep < 5 || sleep > 10 {
			score -= 15
		} else if sleep < 6 || sleep > 9 {
			score -= 7
		}
	}

	// Four ascending tiers, lowest tier penalized hardest.
	if tier, ok := catalog.TierOf(answers, catalog.QActivityDays); ok {
		score -= [4]float64{15, 10, 5, 0}[tier]
	}
	if tier, ok := catalog.TierOf(answers, catalog.QNutritionServings); ok {
		score -= [4]float64{15, 10, 5, 0}[tier]
	}

	// Smoking options are never/occasionally/regularly/former.
	if tier, ok := catalog.TierOf(answers, catalog.QSmoking); ok {
		switch tier {
		case 2:
			score -= 10
		case 1:
			score -= 5
		}
	}

	if tier, ok := catalog.TierOf(answers, catalog.QStress); ok && tier >= 2 {
		score -= 5
	}
	if tier, ok := catalog.TierOf(answers, catalog.QWater); ok && tier == 0 {
		score -= 5
	}

	if tier, ok := catalog.TierOf(answers, catalog.QFastFood); ok {
		switch tier {
		case 3:
			score -= 5
		case 2:
			score -= 2
		}
	}
	if tier, ok := catalog.TierOf(answers, catalog.QCoffee); ok && tier == 3 {
		score -= 5
	}
	if tier, ok := catalog.TierOf(answers, catalog.QEnergyDrinks); ok {
		switch tier {
		case 3:
			score -= 5
		case 2:
			score -= 2
		}
	}

	return int(math.Max(0, math.Round(score)))
}

// Evaluate computes the full score result for an answer set.
func Evaluate(answers models.AnswerSet) models.ScoreResult {
	bmi := BMI(answers)
	return models.ScoreResult{BMI: bmi, Score: Score(answers, bmi)}
}
