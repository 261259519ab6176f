package postgres

import (
	"context"
	"database/sql"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	// Role is set on insert only; promoting a user to admin is a manual
	// operation on the users table, and a later upsert must not undo it.
	query := `INSERT INTO users (id, email, name, phone, role, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id) DO UPDATE SET
	              email = EXCLUDED.email,
	              name = EXCLUDED.name,
	              phone = EXCLUDED.phone`
	logger.DatabaseCall("UPSERT", "users", "userID", user.ID)
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.Phone, user.Role, user.PasswordHash, time.Now().UTC())
	logger.DatabaseResult("UPSERT", 1, err, "userID", user.ID)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, name, phone, role, password_hash, created_on FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, phone, role, password_hash, created_on FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Phone, &user.Role, &user.PasswordHash, &createdOn)
	if err != nil {
		return nil, err
	}
	user.CreatedOn = createdOn.UTC().Format(time.RFC3339)
	return user, nil
}
