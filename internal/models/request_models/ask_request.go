package request_models

type AskRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Country string `json:"country"`
}
