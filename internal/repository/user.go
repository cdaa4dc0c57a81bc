package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, username, password, account_name`

var userSearchColumns = map[string]column{
	"id":          {name: "user_id", integer: true},
	"username":    {name: "username"},
	"password":    {name: "password"},
	"accountName": {name: "account_name"},
}

type userRow struct {
	UserID      int    `db:"user_id"`
	Username    string `db:"username"`
	Password    string `db:"password"`
	AccountName string `db:"account_name"`
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:          r.UserID,
		Username:    r.Username,
		Password:    r.Password,
		AccountName: r.AccountName,
	}
}

func scanUser(row pgx.CollectableRow) (model.User, error) {
	r, err := pgx.RowToStructByName[userRow](row)
	if err != nil {
		return model.User{}, err
	}
	return r.toModel(), nil
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM app_users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("scanning users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (model.User, bool, error) {
	return r.GetByUniqueKey(ctx, "id", fmt.Sprint(id))
}

func (r *UserRepository) GetByUniqueKey(ctx context.Context, field, value string) (model.User, bool, error) {
	return findUser(ctx, r.db, field, value)
}

func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (model.User, bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM app_users WHERE username = $1 AND password = $2`,
		username, password)
	if err != nil {
		return model.User{}, false, fmt.Errorf("querying user by credentials: %w", err)
	}
	return collectOne(rows, scanUser)
}

func (r *UserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO app_users (username, password, account_name) VALUES ($1, $2, $3) RETURNING user_id`,
		user.Username, user.Password, user.AccountName,
	).Scan(&user.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return user, nil
}

// Update changes password and account name of the user matching both id
// and username. When nothing matches it tells a missing user apart from
// an attempted username change.
func (r *UserRepository) Update(ctx context.Context, user model.User) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE app_users SET password = $3, account_name = $4 WHERE user_id = $1 AND username = $2`,
		user.ID, user.Username, user.Password, user.AccountName)
	if err != nil {
		return false, fmt.Errorf("updating user: %w", err)
	}

	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM app_users WHERE user_id = $1)`, user.ID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}

	if !exists {
		return false, errs.NewNotFoundError("No user found with provided id.", true, nil)
	}
	return false, errs.NewConflictError("Username cannot be changed.", true)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM app_users WHERE user_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// findUser is shared with the stat repository, which reaches rollups
// through their owner.
func findUser(ctx context.Context, db DBTX, field, value string) (model.User, bool, error) {
	col, arg, ok, err := lookupArg(userSearchColumns, field, value)
	if err != nil || !ok {
		return model.User{}, false, err
	}

	rows, err := db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM app_users WHERE %s = $1 ORDER BY user_id LIMIT 1`, userColumns, col),
		arg)
	if err != nil {
		return model.User{}, false, fmt.Errorf("querying user by %s: %w", field, err)
	}
	return collectOne(rows, scanUser)
}
