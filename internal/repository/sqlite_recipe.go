package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/db"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

const recipeColumns = `id, title, description, cuisine, prep_time_min, cook_time_min, servings, created_at, updated_at`

// SQLiteRecipeRepo implements RecipeRepo over SQLite.
type SQLiteRecipeRepo struct {
	db db.DBTX
}

// NewSQLiteRecipeRepo creates a new SQLiteRecipeRepo.
func NewSQLiteRecipeRepo(conn db.DBTX) *SQLiteRecipeRepo {
	return &SQLiteRecipeRepo{db: conn}
}

func (r *SQLiteRecipeRepo) Create(ctx context.Context, rec *domain.Recipe) error {
	query := `INSERT INTO recipes (title, description, cuisine, prep_time_min, cook_time_min, servings, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.Title,
		rec.Description,
		rec.Cuisine,
		nullableIntToValue(rec.PrepTimeMin),
		nullableIntToValue(rec.CookTimeMin),
		rec.Servings,
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted recipe id: %w", err)
	}
	rec.ID = id
	return nil
}

func (r *SQLiteRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanRecipeRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRecipeRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Recipe, error) {
	result := make(map[int64]*domain.Recipe, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id IN (` + placeholders + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recipes by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecipeRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		result[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRecipeRepo) List(ctx context.Context) ([]*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipeRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe rows: %w", err)
	}
	return recipes, nil
}

// scanRecipeRow scans one recipe from either a *sql.Row or *sql.Rows scan
// function. sql.ErrNoRows passes through untouched for the caller to map.
func scanRecipeRow(scan func(dest ...any) error) (*domain.Recipe, error) {
	var rec domain.Recipe
	var prepTime, cookTime sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := scan(&rec.ID, &rec.Title, &rec.Description, &rec.Cuisine, &prepTime, &cookTime, &rec.Servings, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning recipe: %w", err)
	}

	rec.PrepTimeMin = parseNullableInt(prepTime)
	rec.CookTimeMin = parseNullableInt(cookTime)
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}
