package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/jackc/pgx/v5"
)

const characterBaseQuery = `
	SELECT c.char_id, u.account_name, c.char_name, c.league_name, c.ranking, c.char_level
	FROM characters c
	JOIN app_users u ON c.user_id = u.user_id`

// accountName is answered from app_users so an account without
// characters is still found; see CharacterRepository.GetByUniqueKey.
// "id" is absent: the service resolves it as an owner id via GetByID.
var characterSearchColumns = map[string]column{
	"charName":   {name: "c.char_name"},
	"leagueName": {name: "c.league_name"},
	"rank":       {name: "c.ranking", integer: true},
	"charLevel":  {name: "c.char_level", integer: true},
}

type characterRow struct {
	CharID      int    `db:"char_id"`
	AccountName string `db:"account_name"`
	CharName    string `db:"char_name"`
	LeagueName  string `db:"league_name"`
	Ranking     int    `db:"ranking"`
	CharLevel   int    `db:"char_level"`
}

func scanCharacter(row pgx.CollectableRow) (model.Character, error) {
	r, err := pgx.RowToStructByName[characterRow](row)
	if err != nil {
		return model.Character{}, err
	}
	return model.Character{
		ID:          r.CharID,
		AccountName: r.AccountName,
		CharName:    r.CharName,
		LeagueName:  r.LeagueName,
		Rank:        r.Ranking,
		CharLevel:   r.CharLevel,
	}, nil
}

type CharacterRepository struct {
	db DBTX
}

func NewCharacterRepository(db DBTX) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) GetAll(ctx context.Context) ([]model.Character, error) {
	return r.list(ctx, characterBaseQuery+` ORDER BY c.char_id`)
}

func (r *CharacterRepository) GetByID(ctx context.Context, ownerID int) ([]model.Character, error) {
	return r.list(ctx, characterBaseQuery+` WHERE c.user_id = $1 ORDER BY c.ranking, c.char_id`, ownerID)
}

func (r *CharacterRepository) GetByUniqueKey(ctx context.Context, field, value string) (model.Character, bool, error) {
	if field == "accountName" {
		rows, err := r.db.Query(ctx, `
			SELECT COALESCE(c.char_id, 0) AS char_id, u.account_name,
			       COALESCE(c.char_name, '') AS char_name, COALESCE(c.league_name, '') AS league_name,
			       COALESCE(c.ranking, 0) AS ranking, COALESCE(c.char_level, 0) AS char_level
			FROM app_users u
			LEFT JOIN characters c ON c.user_id = u.user_id
			WHERE u.account_name = $1
			ORDER BY c.char_id
			LIMIT 1`, value)
		if err != nil {
			return model.Character{}, false, fmt.Errorf("querying character by account name: %w", err)
		}
		return collectOne(rows, scanCharacter)
	}

	col, arg, ok, err := lookupArg(characterSearchColumns, field, value)
	if err != nil || !ok {
		return model.Character{}, false, err
	}

	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`%s WHERE %s = $1 ORDER BY c.char_id LIMIT 1`, characterBaseQuery, col), arg)
	if err != nil {
		return model.Character{}, false, fmt.Errorf("querying character by %s: %w", field, err)
	}
	return collectOne(rows, scanCharacter)
}

// Save inserts character under the user owning its account name.
func (r *CharacterRepository) Save(ctx context.Context, character model.Character) (model.Character, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO characters (user_id, char_name, league_name, ranking, char_level)
		SELECT user_id, $2, $3, $4, $5 FROM app_users WHERE account_name = $1
		RETURNING char_id`,
		character.AccountName, character.CharName, character.LeagueName, character.Rank, character.CharLevel,
	).Scan(&character.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Character{}, errs.NewNotFoundError("No account found with provided accountName.", true, nil)
	}
	if err != nil {
		return model.Character{}, fmt.Errorf("inserting character: %w", err)
	}
	return character, nil
}

func (r *CharacterRepository) Update(ctx context.Context, character model.Character) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE characters SET ranking = $2, char_level = $3 WHERE char_id = $1`,
		character.ID, character.Rank, character.CharLevel)
	if err != nil {
		return false, fmt.Errorf("updating character: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return false, errs.NewNotFoundError("No character found with provided id.", true, nil)
	}
	return true, nil
}

func (r *CharacterRepository) DeleteByID(ctx context.Context, ownerID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE user_id = $1`, ownerID)
	if err != nil {
		return false, fmt.Errorf("deleting characters: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CharacterRepository) list(ctx context.Context, query string, args ...any) ([]model.Character, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}

	chars, err := pgx.CollectRows(rows, scanCharacter)
	if err != nil {
		return nil, fmt.Errorf("scanning characters: %w", err)
	}
	return chars, nil
}
