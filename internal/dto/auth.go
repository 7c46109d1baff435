package dto

// TokenDTO is the login response.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
