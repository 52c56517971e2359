// Package catalog holds the fixed bilingual questionnaire: the ordered
// question list, the canonical option-tier lookup shared by scoring and
// feedback, and the Arabic-to-English answer translation used before
// transmission. Everything here is defined once at init and never mutated.
package catalog

import "assessment-service/internal/models"

// Question IDs, referenced across scoring, feedback and tests.
const (
	QGender            = "gender"
	QAge               = "age"
	QHeight            = "height"
	QWeight            = "weight"
	QSleepHours        = "sleepHours"
	QActivityDays      = "activityDays"
	QNutritionServings = "nutritionServings"
	QSmoking           = "smoking"
	QStress            = "stress"
	QConditions        = "conditions"
	QWater             = "water"
	QFastFood          = "fastFood"
	QCoffee            = "coffee"
	QEnergyDrinks      = "energyDrinks"
)

var questions = []models.Question{
	{
		ID:       QGender,
		EN:       models.QuestionText{Text: "What is your gender?", Options: []string{"Male", "Female"}},
		AR:       models.QuestionText{Text: "ما هو جنسك؟", Options: []string{"ذكر", "أنثى"}},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryPersonal,
	},
	{
		ID:       QAge,
		EN:       models.QuestionText{Text: "What is your age?"},
		AR:       models.QuestionText{Text: "كم عمرك؟"},
		Kind:     models.KindNumber,
		Min:      10,
		Max:      120,
		Required: true,
		Category: models.CategoryPersonal,
		Validate: func(v float64) bool { return v >= 10 && v <= 120 },
	},
	{
		ID:       QHeight,
		EN:       models.QuestionText{Text: "What is your height in centimeters?"},
		AR:       models.QuestionText{Text: "ما هو طولك بالسنتيمتر؟"},
		Kind:     models.KindNumber,
		Min:      100,
		Max:      300,
		Required: true,
		Category: models.CategoryBMI,
		Validate: func(v float64) bool { return v >= 100 && v <= 300 },
	},
	{
		ID:       QWeight,
		EN:       models.QuestionText{Text: "What is your weight in kilograms?"},
		AR:       models.QuestionText{Text: "ما هو وزنك بالكيلوغرام؟"},
		Kind:     models.KindNumber,
		Min:      30,
		Max:      400,
		Required: true,
		Category: models.CategoryBMI,
		Validate: func(v float64) bool { return v >= 30 && v <= 400 },
	},
	{
		ID:       QSleepHours,
		EN:       models.QuestionText{Text: "How many hours do you sleep on average per night?"},
		AR:       models.QuestionText{Text: "كم ساعة تنام في المتوسط في الليلة؟"},
		Kind:     models.KindSlider,
		Min:      2,
		Max:      12,
		Step:     0.5,
		Required: true,
		Category: models.CategorySleep,
	},
	{
		ID: QActivityDays,
		EN: models.QuestionText{
			Text:    "How many days per week do you engage in moderate to vigorous physical activity (at least 30 minutes)?",
			Options: []string{"0 days", "1-2 days", "3-4 days", "5+ days"},
		},
		AR: models.QuestionText{
			Text:    "كم يوم في الأسبوع تمارس النشاط البدني المتوسط إلى القوي (30 دقيقة على الأقل)؟",
			Options: []string{"0 أيام", "1-2 يوم", "3-4 أيام", "5+ أيام"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryActivity,
	},
	{
		ID: QNutritionServings,
		EN: models.QuestionText{
			Text:    "How many servings of fruits and vegetables do you eat daily?",
			Options: []string{"0 servings", "1-2 servings", "3-4 servings", "5+ servings"},
		},
		AR: models.QuestionText{
			Text:    "كم حصة من الفواكه والخضروات تتناول يومياً؟",
			Options: []string{"0 حصص", "1-2 حصة", "3-4 حصص", "5+ حصص"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryNutrition,
	},
	{
		ID: QSmoking,
		EN: models.QuestionText{
			Text:    "Do you smoke or use tobacco products?",
			Options: []string{"Never", "Occasionally", "Regularly", "Former smoker"},
		},
		AR: models.QuestionText{
			Text:    "هل تدخن أو تستخدم منتجات التبغ؟",
			Options: []string{"أبداً", "أحياناً", "بانتظام", "مدخن سابق"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryLifestyle,
	},
	{
		ID: QStress,
		EN: models.QuestionText{
			Text:    "How would you rate your stress level in the past month?",
			Options: []string{"Low", "Moderate", "High", "Very High"},
		},
		AR: models.QuestionText{
			Text:    "كيف تقيم مستوى التوتر لديك في الشهر الماضي؟",
			Options: []string{"منخفض", "متوسط", "مرتفع", "مرتفع جداً"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryLifestyle,
	},
	{
		ID: QConditions,
		EN: models.QuestionText{
			Text:    "Do you have any chronic health conditions (e.g., diabetes, hypertension, heart disease)?",
			Options: []string{"None", "1 condition", "2 conditions", "3 or more conditions"},
		},
		AR: models.QuestionText{
			Text:    "هل لديك أي حالات صحية مزمنة (مثل السكري، ارتفاع ضغط الدم، أمراض القلب)؟",
			Options: []string{"لا يوجد", "حالة واحدة", "حالتين", "3 حالات أو أكثر"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryConditions,
	},
	{
		ID: QWater,
		EN: models.QuestionText{
			Text:    "How many liters of water do you typically drink per day?",
			Options: []string{"Less than 1 liter", "1-2 liters", "2-3 liters", "More than 3 liters"},
		},
		AR: models.QuestionText{
			Text:    "كم لتر من الماء تشرب عادةً في اليوم؟",
			Options: []string{"أقل من 1 لتر", "1-2 لتر", "2-3 لتر", "أكثر من 3 لتر"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryLifestyle,
	},
	{
		ID: QFastFood,
		EN: models.QuestionText{
			Text:    "How often do you consume fast food (e.g., burgers, fries, pizza, etc.)?",
			Options: []string{"Rarely or never", "1-2 times per month", "1-2 times per week", "3 or more times per week"},
		},
		AR: models.QuestionText{
			Text:    "كم مرة تتناول الوجبات السريعة (مثل البرغر والبطاطس والبيتزا وغيرها)؟",
			Options: []string{"نادراً أو أبداً", "1-2 مرة في الشهر", "1-2 مرة في الأسبوع", "3 مرات أو أكثر في الأسبوع"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryLifestyle,
	},
	{
		ID: QCoffee,
		EN: models.QuestionText{
			Text:    "How much coffee do you typically drink in a day?",
			Options: []string{"None", "1 cup", "2-3 cups", "4 or more cups"},
		},
		AR: models.QuestionText{
			Text:    "كم فنجان قهوة تشرب عادةً في اليوم؟",
			Options: []string{"لا شيء", "فنجان واحد", "2-3 فناجين", "4 فناجين أو أكثر"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryLifestyle,
	},
	{
		ID: QEnergyDrinks,
		EN: models.QuestionText{
			Text:    "How often do you consume energy drinks?",
			Options: []string{"Never", "Occasionally (1–2 times per month)", "Weekly (1–3 times per week)", "Daily or almost daily"},
		},
		AR: models.QuestionText{
			Text:    "كم مرة تستهلك مشروبات الطاقة؟",
			Options: []string{"أبداً", "أحياناً (1-2 مرة في الشهر)", "أسبوعياً (1-3 مرات في الأسبوع)", "يومياً أو تقريباً يومياً"},
		},
		Kind:     models.KindSelect,
		Required: true,
		Category: models.CategoryLifestyle,
	},
}

var questionsByID = func() map[string]*models.Question {
	byID := make(map[string]*models.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	return byID
}()

// Questions returns the ordered catalog. Callers must not modify it.
func Questions() []models.Question {
	return questions
}

// ByID looks up a question definition. Returns nil for unknown IDs.
func ByID(id string) *models.Question {
	return questionsByID[id]
}

// Count is the catalog length.
func Count() int {
	return len(questions)
}
