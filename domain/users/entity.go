package users

import (
	"time"
)

// User is the stored user record. Users are keyed by username in the
// key-value store; the email set provides duplicate-email checks.
type User struct {
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Organization   string    `json:"organization"`
	OpenAIAPIKey   string    `json:"-"`
	QueryLimits    int       `json:"query_limits"`
	LastQueryReset time.Time `json:"last_query_reset"`
	HashedPassword string    `json:"-"`
}

// PublicUser is the client-facing view of a user (omits the password hash)
type PublicUser struct {
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Organization   string    `json:"organization"`
	QueryLimits    int       `json:"query_limits"`
	LastQueryReset time.Time `json:"last_query_reset"`
}

// Public returns the client-facing view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Organization:   u.Organization,
		QueryLimits:    u.QueryLimits,
		LastQueryReset: u.LastQueryReset,
	}
}

// QueryLimitUpdate is the request body for a self-service quota update
type QueryLimitUpdate struct {
	QueryLimits    int       `json:"query_limits"`
	LastQueryReset time.Time `json:"last_query_reset"`
}

// AdminQueryLimitUpdate is the request body for the admin quota route
type AdminQueryLimitUpdate struct {
	AdminPassword string `json:"admin_password"`
	NewQueryLimit int    `json:"new_query_limit"`
}

// APIKeyUpdate is the request body for updating the stored OpenAI key
type APIKeyUpdate struct {
	OpenAIAPIKey string `json:"OPENAI_API_KEY"`
}
