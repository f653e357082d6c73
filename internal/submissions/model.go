package submissions

import "time"

// StatusPending is the only status this service assigns.
const StatusPending = "Pending"

// TimestampLayout renders UTC instants as ISO-8601 with a literal Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Submission is the metadata record stored once per accepted upload.
// Evaluation fields are always nil here; downstream evaluators own them.
type Submission struct {
	ID                  string   `json:"id" bson:"id"`
	UserID              string   `json:"userId" bson:"userId"`
	UserName            string   `json:"userName" bson:"userName"`
	FileName            string   `json:"fileName" bson:"fileName"`
	FilePath            string   `json:"filePath" bson:"filePath"`
	SubmittedAt         string   `json:"submittedAt" bson:"submittedAt"`
	Status              string   `json:"status" bson:"status"`
	Bleu4Score          *float64 `json:"bleu4Score" bson:"bleu4Score"`
	CustomBleuScore     *float64 `json:"customBleuScore" bson:"customBleuScore"`
	EntityCoverageScore *float64 `json:"entityCoverageScore" bson:"entityCoverageScore"`
	EvaluationSummary   *string  `json:"evaluationSummary" bson:"evaluationSummary"`
	Logs                *string  `json:"logs" bson:"logs"`
}

// FormatTimestamp converts t to UTC and renders it with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
