package response_models

type ActivityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PriceLabel  string `json:"price_label"`
	ImageURL    string `json:"image_url"`
}

type InterestTagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
