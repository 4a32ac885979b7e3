package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/database"
	"github.com/rentride/rentride/internal/pkg/models"
)

const userColumns = `id, name, email, password, role, img, rating, created_at, updated_at`

// Allow-lists for list queries over users
var (
	userFilterable = map[string]string{
		"role":  "role",
		"email": "email",
	}
	userSearchable = []string{"name", "email"}
	userSortable   = map[string]string{
		"createdAt": "created_at",
		"name":      "name",
		"email":     "email",
		"rating":    "rating",
	}
)

// CreateUser inserts a new user record
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, password, role, img, rating, created_at, updated_at)
		VALUES (:id, :name, :email, :password, :role, :img, :rating, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return apperrors.FromPostgres(err, "user")
	}

	return nil
}

// GetUserByID retrieves a user by ID with their rents eagerly loaded
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}

	rents := []*models.Rent{}
	rentQuery := `
		SELECT id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at
		FROM rents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rents, rentQuery, id); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}
	user.Rents = rents

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}
	return &user, nil
}

// ListUsers returns a page of users matching the query plus the total count
func (r *UserRepo) ListUsers(ctx context.Context, q models.ListQuery) ([]*models.User, int, error) {
	clauses, err := database.BuildListClauses(q, userFilterable, userSearchable, userSortable)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, clauses.Where)
	if err := r.db.GetContext(ctx, &total, countQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "user")
	}

	page := clauses.Paginate(q)
	users := []*models.User{}
	listQuery := fmt.Sprintf(`SELECT %s FROM users %s %s %s`, userColumns, clauses.Where, clauses.OrderBy, page)
	if err := r.db.SelectContext(ctx, &users, listQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "user")
	}

	return users, total, nil
}

// UpdateUser applies a partial update and returns the updated record
func (r *UserRepo) UpdateUser(ctx context.Context, id uuid.UUID, upd *models.UserUpdate) (*models.User, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Img != nil {
		add("img", *upd.Img)
	}
	if upd.Rating != nil {
		add("rating", *upd.Rating)
	}
	if upd.Role != nil {
		add("role", *upd.Role)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}

	return &user, nil
}

// DeleteUser removes a user record
func (r *UserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperrors.FromPostgres(err, "user")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NewNotFound("user not found")
	}
	return nil
}
