package models

import "time"

// ScoreResult is the derived outcome of a completed answer set: BMI rounded
// to two decimals and a wellness score clamped to [0,100]. Recomputed on
// demand, never stored as the source of truth.
type ScoreResult struct {
	BMI   float64 `bson:"bmi" json:"bmi"`
	Score int     `bson:"score" json:"score"`
}

// FeedbackBundle carries one message per assessed category plus the
// cumulative lifestyle list, in the session language.
type FeedbackBundle struct {
	BMI       string   `bson:"bmi" json:"bmi"`
	Sleep     string   `bson:"sleep" json:"sleep"`
	Activity  string   `bson:"activity" json:"activity"`
	Nutrition string   `bson:"nutrition" json:"nutrition"`
	Lifestyle []string `bson:"lifestyle" json:"lifestyle"`
}

type DeviceInfo struct {
	Name      string `bson:"name" json:"name"`
	IP        string `bson:"ip" json:"ip"`
	UserAgent string `bson:"userAgent" json:"userAgent"`
}

type Location struct {
	Country   string  `bson:"country,omitempty" json:"country,omitempty"`
	City      string  `bson:"city,omitempty" json:"city,omitempty"`
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

type TimeInfo struct {
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
	// DurationSeconds is the whole-second span between start and end.
	DurationSeconds int64  `bson:"duration" json:"duration"`
	Timezone        string `bson:"timezone" json:"timezone"`
}

type TestInfo struct {
	Language string  `bson:"language" json:"language"`
	Theme    string  `bson:"theme" json:"theme"`
	Score    int     `bson:"score" json:"score"`
	BMI      float64 `bson:"bmi" json:"bmi"`
}

// SubmissionRecord is the finalized payload relayed to the results-ingestion
// API. Assembled once at completion; immutable after that. Answers are in
// canonical English regardless of session language.
type SubmissionRecord struct {
	UserName   *string   `bson:"userName" json:"userName"`
	DeviceInfo DeviceInfo `bson:"deviceInfo" json:"deviceInfo"`
	Location   *Location  `bson:"location,omitempty" json:"location,omitempty"`
	TimeInfo   TimeInfo   `bson:"timeInfo" json:"timeInfo"`
	TestInfo   TestInfo   `bson:"testInfo" json:"testInfo"`
	Answers    AnswerSet  `bson:"answers" json:"answers"`
}

// StoredResult is the local copy of a finished assessment kept alongside the
// upstream submission, so results survive an ingestion outage.
type StoredResult struct {
	ID           string           `bson:"_id,omitempty" json:"id"`
	SessionID    string           `bson:"session_id" json:"session_id"`
	AssessmentID int64            `bson:"assessment_id,omitempty" json:"assessment_id,omitempty"`
	Record       SubmissionRecord `bson:"record" json:"record"`
	Feedback     FeedbackBundle   `bson:"feedback" json:"feedback"`
	Status       SubmissionStatus `bson:"status" json:"status"`
	Error        string           `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
}
