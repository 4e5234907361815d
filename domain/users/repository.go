package users

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Key for the set storing all registered emails
const emailSetKey = "registered_emails"

func userKey(username string) string {
	return "user:" + username
}

// Repository stores user records in the key-value store. Each user is one
// hash keyed by username; registered emails live in a separate set used
// only for duplicate checks at signup.
type Repository struct {
	rdb *redis.Client
	log *slog.Logger
}

// NewRepository creates a new users repository
func NewRepository(rdb *redis.Client, log *slog.Logger) *Repository {
	return &Repository{
		rdb: rdb,
		log: log.With(logger.Scope("users.repo")),
	}
}

// Create stores a new user. The username field is written with HSETNX
// first so two concurrent signups for the same username cannot both
// succeed; the email set remains a non-atomic secondary index.
func (r *Repository) Create(ctx context.Context, user *User) error {
	key := userKey(user.Username)

	reserved, err := r.rdb.HSetNX(ctx, key, "username", user.Username).Result()
	if err != nil {
		r.log.Error("failed to reserve username", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	if !reserved {
		return apperror.ErrConflict.WithMessage("Username already registered")
	}

	if err := r.rdb.HSet(ctx, key, userFields(user)).Err(); err != nil {
		r.log.Error("failed to store user", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	if err := r.rdb.SAdd(ctx, emailSetKey, user.Email).Err(); err != nil {
		r.log.Error("failed to index email", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	return nil
}

// GetByUsername returns the stored user, or nil when absent
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	data, err := r.rdb.HGetAll(ctx, userKey(username)).Result()
	if err != nil {
		r.log.Error("failed to fetch user", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return userFromFields(data), nil
}

// EmailExists reports whether the email is already registered
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.rdb.SIsMember(ctx, emailSetKey, email).Result()
	if err != nil {
		r.log.Error("failed to check email", logger.Error(err))
		return false, apperror.ErrDatabase.WithInternal(err)
	}
	return exists, nil
}

// UpdateQueryLimits overwrites the quota fields only (partial update)
func (r *Repository) UpdateQueryLimits(ctx context.Context, username string, queryLimits int, lastReset time.Time) error {
	key := userKey(username)

	exists, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		return apperror.ErrDatabase.WithInternal(err)
	}
	if exists == 0 {
		return apperror.ErrUserNotFound
	}

	fields := map[string]any{
		"query_limits":     strconv.Itoa(queryLimits),
		"last_query_reset": lastReset.UTC().Format(time.RFC3339),
	}
	if err := r.rdb.HSet(ctx, key, fields).Err(); err != nil {
		r.log.Error("failed to update query limits", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	return nil
}

// UpdateAPIKey overwrites the stored OpenAI key only (partial update)
func (r *Repository) UpdateAPIKey(ctx context.Context, username, apiKey string) error {
	key := userKey(username)

	exists, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		return apperror.ErrDatabase.WithInternal(err)
	}
	if exists == 0 {
		return apperror.ErrUserNotFound
	}

	if err := r.rdb.HSet(ctx, key, "openai_api_key", apiKey).Err(); err != nil {
		r.log.Error("failed to update api key", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	return nil
}

// userFields flattens a user into the stored hash representation
func userFields(u *User) map[string]any {
	return map[string]any{
		"username":         u.Username,
		"email":            u.Email,
		"first_name":       u.FirstName,
		"last_name":        u.LastName,
		"organization":     u.Organization,
		"openai_api_key":   u.OpenAIAPIKey,
		"query_limits":     strconv.Itoa(u.QueryLimits),
		"last_query_reset": u.LastQueryReset.UTC().Format(time.RFC3339),
		"hashed_password":  u.HashedPassword,
	}
}

// userFromFields rebuilds a user from the stored hash representation.
// Unparseable numeric or time fields fall back to zero values; records
// written by this service always round-trip.
func userFromFields(data map[string]string) *User {
	limits, _ := strconv.Atoi(data["query_limits"])
	reset, _ := time.Parse(time.RFC3339, data["last_query_reset"])
	return &User{
		Username:       data["username"],
		Email:          data["email"],
		FirstName:      data["first_name"],
		LastName:       data["last_name"],
		Organization:   data["organization"],
		OpenAIAPIKey:   data["openai_api_key"],
		QueryLimits:    limits,
		LastQueryReset: reset,
		HashedPassword: data["hashed_password"],
	}
}
