package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
