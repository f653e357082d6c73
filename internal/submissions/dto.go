package submissions

const submitMessage = "File submitted successfully and is pending processing."

type submitResponse struct {
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
	FileName     string `json:"fileName"`
	SubmittedAt  string `json:"submittedAt"`
	Status       string `json:"status"`
}

type listResponse struct {
	Submissions []Submission `json:"submissions"`
}

func newSubmitResponse(sub Submission) submitResponse {
	return submitResponse{
		Message:      submitMessage,
		SubmissionID: sub.ID,
		FileName:     sub.FileName,
		SubmittedAt:  sub.SubmittedAt,
		Status:       sub.Status,
	}
}
