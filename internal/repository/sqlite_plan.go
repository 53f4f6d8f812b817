package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/db"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

// planColumns is the canonical SELECT column list for plans.
const planColumns = `id, date, meal_type, recipe_id, servings, notes, completed, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo over SQLite. It is constructed from a
// db.DBTX so the same repository serves direct reads and tx-scoped writes.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (date, meal_type, recipe_id, servings, notes, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Date.Format(dateLayout),
		string(p.MealType),
		p.RecipeID,
		p.Servings,
		p.Notes,
		boolToInt(p.Completed),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted plan id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) GetBySlot(ctx context.Context, date time.Time, mealType domain.MealType) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans
		WHERE date = ? AND meal_type = ? ORDER BY id LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, date.Format(dateLayout), string(mealType))
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans
		WHERE date = ? ORDER BY ` + mealTypeRank + `, id`
	rows, err := r.db.QueryContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing plans by date: %w", err)
	}
	defer rows.Close()
	return r.scanPlans(rows)
}

func (r *SQLitePlanRepo) ListByRange(ctx context.Context, start, end time.Time) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans
		WHERE date >= ? AND date <= ?
		ORDER BY date, ` + mealTypeRank + `, id`
	rows, err := r.db.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing plans by range: %w", err)
	}
	defer rows.Close()
	return r.scanPlans(rows)
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans
		SET date = ?, meal_type = ?, recipe_id = ?, servings = ?, notes = ?, completed = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Date.Format(dateLayout),
		string(p.MealType),
		p.RecipeID,
		p.Servings,
		p.Notes,
		boolToInt(p.Completed),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading deleted row count: %w", err)
	}
	return affected > 0, nil
}

func (r *SQLitePlanRepo) DeleteRange(ctx context.Context, start, end time.Time, mealType *domain.MealType) (int, error) {
	query := `DELETE FROM plans WHERE date >= ? AND date <= ?`
	args := []any{start.Format(dateLayout), end.Format(dateLayout)}
	if mealType != nil {
		query += ` AND meal_type = ?`
		args = append(args, string(*mealType))
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting plans in range: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return int(affected), nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var p domain.Plan
	var dateStr, mealTypeStr, createdAtStr, updatedAtStr string
	var completed int

	err := row.Scan(&p.ID, &dateStr, &mealTypeStr, &p.RecipeID, &p.Servings, &p.Notes, &completed, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	if err := fillPlanParsedFields(&p, dateStr, mealTypeStr, completed, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePlanRepo) scanPlans(rows *sql.Rows) ([]*domain.Plan, error) {
	var plans []*domain.Plan
	for rows.Next() {
		var p domain.Plan
		var dateStr, mealTypeStr, createdAtStr, updatedAtStr string
		var completed int

		if err := rows.Scan(&p.ID, &dateStr, &mealTypeStr, &p.RecipeID, &p.Servings, &p.Notes, &completed, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		if err := fillPlanParsedFields(&p, dateStr, mealTypeStr, completed, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan rows: %w", err)
	}
	return plans, nil
}

func fillPlanParsedFields(p *domain.Plan, dateStr, mealTypeStr string, completed int, createdAtStr, updatedAtStr string) error {
	var err error
	p.Date, err = parseDate(dateStr)
	if err != nil {
		return fmt.Errorf("parsing plan date: %w", err)
	}
	p.MealType = domain.MealType(mealTypeStr)
	p.Completed = intToBool(completed)
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
