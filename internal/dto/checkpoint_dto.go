package dto

// GenerateTemplateRequest asks the LLM for a structured-answer template
// matching a question and its expected answer.
type GenerateTemplateRequest struct {
	Question  string `json:"question" binding:"required"`
	RawAnswer string `json:"raw_answer" binding:"required"`
}

type GenerateTemplateResponse struct {
	Template string `json:"template"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
