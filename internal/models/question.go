package models

type QuestionKind string

const (
	KindText   QuestionKind = "text"
	KindNumber QuestionKind = "number"
	KindSelect QuestionKind = "select"
	KindSlider QuestionKind = "slider"
)

type Category string

const (
	CategoryPersonal   Category = "personal"
	CategoryBMI        Category = "bmi"
	CategorySleep      Category = "sleep"
	CategoryActivity   Category = "activity"
	CategoryNutrition  Category = "nutrition"
	CategoryLifestyle  Category = "lifestyle"
	CategoryConditions Category = "conditions"
)

// QuestionText holds the display text and, for select questions, the option
// labels in one language. Option slices for the two languages are parallel:
// index i in EN and AR refers to the same tier.
type QuestionText struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// Question is one entry of the fixed catalog. Defined once at process start
// and never mutated.
type Question struct {
	ID       string
	EN       QuestionText
	AR       QuestionText
	Kind     QuestionKind
	Min      float64
	Max      float64
	Step     float64
	Required bool
	Category Category
	Validate func(value float64) bool
}

// LocalizedQuestion is the rendering-layer view of a question in the active
// session language.
type LocalizedQuestion struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Options  []string     `json:"options,omitempty"`
	Kind     QuestionKind `json:"kind"`
	Min      float64      `json:"min,omitempty"`
	Max      float64      `json:"max,omitempty"`
	Step     float64      `json:"step,omitempty"`
	Required bool         `json:"required"`
	Category Category     `json:"category"`
}

// Localize returns the question as seen in the given language ("ar" selects
// the Arabic table, anything else the English one).
func (q *Question) Localize(language string) LocalizedQuestion {
	text := q.EN
	if language == LanguageArabic {
		text = q.AR
	}
	return LocalizedQuestion{
		ID:       q.ID,
		Text:     text.Text,
		Options:  text.Options,
		Kind:     q.Kind,
		Min:      q.Min,
		Max:      q.Max,
		Step:     q.Step,
		Required: q.Required,
		Category: q.Category,
	}
}
