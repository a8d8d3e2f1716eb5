package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fretboard-keeper/models"
)

// registrationLockKey serializes the creation of new accounts so that
// concurrent first logins cannot overshoot the user cap.
const registrationLockKey = "users:registration"

const (
	acquireAdvisoryLock = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`

	refreshUserToken = `UPDATE users
		SET token_hash = $2, last_login = NOW()
		WHERE username = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`

	createUser = `INSERT INTO users (username, token_hash, created_at, last_login)
		VALUES ($1, $2, NOW(), NOW());`

	findUserByTokenHash = `SELECT username, token_hash, created_at, last_login
		FROM users
		WHERE token_hash = $1;`

	directoryExists = `SELECT EXISTS (
			SELECT 1 FROM directories WHERE username = $1 AND directory_id = $2
		);`

	countUserDirectories = `SELECT COUNT(*) FROM directories WHERE username = $1;`

	createDirectory = `INSERT INTO directories (username, directory_id, name, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5);`

	listUserDirectories = `SELECT directory_id, name, is_default, created_at
		FROM directories
		WHERE username = $1
		ORDER BY created_at, directory_id;`

	deleteDirectoryStates = `DELETE FROM states WHERE username = $1 AND directory_id = $2;`

	deleteDirectory = `DELETE FROM directories WHERE username = $1 AND directory_id = $2;`

	stateExists = `SELECT EXISTS (
			SELECT 1 FROM states WHERE username = $1 AND state_id = $2
		);`

	countDirectoryStates = `SELECT COUNT(*) FROM states WHERE username = $1 AND directory_id = $2;`

	createState = `INSERT INTO states (username, state_id, directory_id, name, timestamp, thumbnail, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getState = `SELECT state_id, directory_id, name, timestamp, thumbnail, payload
		FROM states
		WHERE username = $1 AND state_id = $2;`

	getStateDirectoryForUpdate = `SELECT directory_id
		FROM states
		WHERE username = $1 AND state_id = $2
		FOR UPDATE;`

	deleteState = `DELETE FROM states WHERE username = $1 AND state_id = $2;`

	deleteAllUserStates = `DELETE FROM states WHERE username = $1;`

	deleteAllUserDirectories = `DELETE FROM directories WHERE username = $1;`
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	directoryColumns = []string{"directory_id", "name", "is_default", "created_at"}
	stateColumns     = []string{"state_id", "directory_id", "name", "timestamp", "thumbnail", "payload"}
)

// buildListStatesQuery selects the states of username, narrowed to one
// directory when directoryID is not empty.
func buildListStatesQuery(ctx context.Context, username, directoryID string) (string, []any, error) {
	where := sq.Eq{"username": username}
	if directoryID != "" {
		where["directory_id"] = directoryID
	}

	query, args, err := psql.
		Select(stateColumns...).
		From(models.State{}.TableName()).
		Where(where).
		OrderBy("timestamp", "state_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateDirectoryQuery applies the non-nil fields of patch and returns
// the updated row.
func buildUpdateDirectoryQuery(ctx context.Context, username, directoryID string, patch models.DirectoryPatch) (string, []any, error) {
	update := psql.Update(models.Directory{}.TableName())

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.IsDefault != nil {
		update = update.Set("is_default", *patch.IsDefault)
	}

	query, args, err := update.
		Where(sq.Eq{"username": username, "directory_id": directoryID}).
		Suffix("RETURNING " + strings.Join(directoryColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateStateQuery applies the non-nil fields of patch and returns the
// updated row. A new timestamp also moves created_at.
func buildUpdateStateQuery(ctx context.Context, username, stateID string, patch models.StatePatch) (string, []any, error) {
	update := psql.Update(models.State{}.TableName())

	if patch.DirectoryID != nil {
		update = update.Set("directory_id", *patch.DirectoryID)
	}
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Timestamp != nil {
		update = update.
			Set("timestamp", *patch.Timestamp).
			Set("created_at", models.State{Timestamp: *patch.Timestamp}.CreatedTime())
	}
	if patch.Thumbnail != nil {
		update = update.Set("thumbnail", *patch.Thumbnail)
	}
	if len(patch.Payload) > 0 {
		update = update.Set("payload", string(patch.Payload))
	}

	query, args, err := update.
		Where(sq.Eq{"username": username, "state_id": stateID}).
		Suffix("RETURNING " + strings.Join(stateColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertDirectoriesQuery builds one multi-row INSERT for dirs.
// dirs must not be empty.
func buildInsertDirectoriesQuery(ctx context.Context, username string, dirs []models.Directory) (string, []any, error) {
	insert := psql.
		Insert(models.Directory{}.TableName()).
		Columns("username", "directory_id", "name", "is_default", "created_at")

	for _, d := range dirs {
		insert = insert.Values(username, d.ID, d.Name, d.IsDefault, d.CreatedTime())
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertStatesQuery builds one multi-row INSERT for states.
// states must not be empty.
func buildInsertStatesQuery(ctx context.Context, username string, states []models.State) (string, []any, error) {
	insert := psql.
		Insert(models.State{}.TableName()).
		Columns("username", "state_id", "directory_id", "name", "timestamp", "thumbnail", "payload", "created_at")

	for _, s := range states {
		insert = insert.Values(username, s.ID, s.DirectoryID, s.Name, s.Timestamp, s.Thumbnail, string(s.Payload), s.CreatedTime())
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
