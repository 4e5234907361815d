package auth

// SignupRequest is the request body for registering a new user
type SignupRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Organization string `json:"organization"`
	OpenAIAPIKey string `json:"OPENAI_API_KEY"`
}

// TokenResponse is the login response carrying the bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Common free email domains disallowed at signup
var disallowedFreeEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"yahoo.com":      {},
	"aol.com":        {},
	"msn.com":        {},
	"live.com":       {},
	"mail.com":       {},
	"gmx.com":        {},
	"gmx.us":         {},
	"icloud.com":     {},
	"yandex.com":     {},
	"zoho.com":       {},
	"protonmail.com": {},
}
