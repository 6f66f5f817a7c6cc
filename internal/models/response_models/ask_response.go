package response_models

const (
	AskResponseMap  = "map"
	AskResponseText = "text"
)

// AskResponse is the tagged result of the assistant endpoint. Map responses
// carry a title and an embeddable URL; text responses carry the completion.
type AskResponse struct {
	ResponseType string `json:"responseType"`
	Title        string `json:"title,omitempty"`
	EmbedURL     string `json:"embedUrl,omitempty"`
	Text         string `json:"text"`
}
