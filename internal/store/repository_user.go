package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/models"
	"github.com/jackc/pgerrcode"
)

// Names of the uniqueness constraints on backmeup_system.users, used to tell
// a username conflict from an email conflict.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, seeding, and lookup against the
// backmeup_system.users table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT is built by [buildCreateUserQuery] and returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account — including the role the
// schema defaulted when none was supplied.
//
// Error handling:
//   - unique_violation on users_username_key → [ErrUsernameAlreadyExists].
//   - unique_violation on users_email_key → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			Bool("retryable", r.db.retryable(err)).
			Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresErrorConstraint(err) {
			case usersEmailConstraint:
				return models.User{}, ErrEmailAlreadyExists
			default:
				return models.User{}, ErrUsernameAlreadyExists
			}
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// SeedUser upserts the administrative seed row, insert-or-no-op keyed on the
// username uniqueness constraint. It reports whether a row was inserted:
// false means an account with that username already existed and nothing was
// touched.
//
// A unique violation can still escape the ON CONFLICT guard when the seed
// email is held by a different username; that case is normalised to
// [ErrSeedEmailTaken] so the caller does not have to inspect driver errors.
func (r *userRepository) SeedUser(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, seedUser,
		user.Username, user.Email, user.Password, user.FullName, user.Role, user.IsActive)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SeedUser").
			Str("username", user.Username).
			Bool("retryable", r.db.retryable(err)).
			Msg("error upserting seed user")

		if postgresError(err) == pgerrcode.UniqueViolation && postgresErrorConstraint(err) == usersEmailConstraint {
			return false, ErrSeedEmailTaken
		}

		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// FindUserByUsername retrieves the user record with the given username.
//
// Error handling:
//   - Empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListActiveUsers returns every account with is_active = true, ordered by
// username — the users-page listing.
func (r *userRepository) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListActiveUsers").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListActiveUsers").Msg("error listing active users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListActiveUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateLastLogin stamps last_login with the database's current time.
// Returns [ErrUserNotFound] when no row matches userID.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateLastLogin, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Int64("id", userID).Msg("error updating last login")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetUserActive flips the is_active flag for the given username.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) SetUserActive(ctx context.Context, username string, active bool) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setUserActive, username, active)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetUserActive").Str("username", username).Msg("error updating is_active")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the account; permission grants follow via
// ON DELETE CASCADE. Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser scans a full user row in the [userColumns] order, converting the
// nullable full_name and last_login columns.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		fullName  sql.NullString
		lastLogin sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&fullName,
		&user.CreatedAt,
		&lastLogin,
		&user.IsActive,
		&user.Role,
	)
	if err != nil {
		return models.User{}, err
	}

	if fullName.Valid {
		user.FullName = fullName.String
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}

	return user, nil
}
