package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/apivault/apivault/models"
)

const (
	createUser = `INSERT INTO users (username, full_name, password_hash, pin_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, full_name, password_hash, pin_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, full_name, password_hash, pin_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, full_name, password_hash, pin_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createAPIKey = `INSERT INTO api_keys (user_id, title, key_value, web_link)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, title, key_value, web_link, created_at;`

	// metadata only: the ciphertext column never leaves the reveal path
	listAPIKeysByUser = `SELECT id, user_id, title, web_link, created_at
    FROM api_keys
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	findAPIKeyByID = `SELECT id, user_id, title, key_value, web_link, created_at
    FROM api_keys
    WHERE id = $1 AND user_id = $2;`

	deleteAPIKey = `DELETE FROM api_keys
    WHERE id = $1 AND user_id = $2;`
)

// psql builds PostgreSQL-flavoured ($1, $2, ...) parameterised statements.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildUpdateAPIKeyQuery assembles a partial UPDATE from the non-nil fields
// of the patch. The WHERE clause is always scoped by both id and user_id so
// that ownership is enforced at the statement level.
func buildUpdateAPIKeyQuery(update models.APIKeyUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.APIKey{}.TableName())

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.KeyValue != nil {
		builder = builder.Set("key_value", *update.KeyValue)
	}
	if update.WebLink != nil {
		builder = builder.Set("web_link", *update.WebLink)
	}

	builder = builder.Where(squirrel.Eq{"id": update.ID, "user_id": update.UserID})

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
