package foods

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var columns = []string{
	"id", "user_id", "name", "brand", "barcode", "calories", "protein", "carbs", "fat",
	"serving_size", "serving_unit", "source", "is_compound", "compound_food_id", "created_at",
}

var foodColumns = SelectColumns("")

// SelectColumns lists the food columns in ScanFood order, qualified with
// the table alias when one is given.
func SelectColumns(alias string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = alias + "." + c
	}
	return strings.Join(qualified, ", ")
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ScanFood scans a row selected with the food columns, in order.
func ScanFood(row pgx.Row) (Food, error) {
	var f Food
	err := row.Scan(
		&f.ID, &f.UserID, &f.Name, &f.Brand, &f.Barcode,
		&f.Calories, &f.Protein, &f.Carbs, &f.Fat,
		&f.ServingSize, &f.ServingUnit, &f.Source,
		&f.IsCompound, &f.CompoundFoodID, &f.CreatedAt,
	)
	return f, err
}

func (r *Repo) List(ctx context.Context, userID int, params ListParams) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	if params.Query != "" {
		span.SetAttributes(attribute.String("params.query", params.Query))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+foodColumns+`
			FROM food
			WHERE user_id = $1
				AND ($2::text = '' OR name ILIKE '%' || $2 || '%' OR brand ILIKE '%' || $2 || '%')
				AND ($3::text = '' OR barcode = $3)
			ORDER BY name, id
		`,
		userID, params.Query, params.Barcode,
	)
	if err != nil {
		return nil, fmt.Errorf("foods [query]: %w", err)
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		f, err := ScanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("foods [rows scan]: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("foods [rows error]: %w", err)
	}

	return foods, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f, err := ScanFood(r.db.QueryRow(
		ctx,
		`SELECT `+foodColumns+` FROM food WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("food [query row]: %w", err)
	}

	return &f, nil
}

func (r *Repo) Add(ctx context.Context, food Food) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO food (
				user_id, name, brand, barcode, calories, protein, carbs, fat,
				serving_size, serving_unit, source
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at
		`,
		food.UserID, food.Name, food.Brand, food.Barcode,
		food.Calories, food.Protein, food.Carbs, food.Fat,
		food.ServingSize, food.ServingUnit, food.Source,
	).Scan(&food.ID, &food.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateBarcode
		}
		return nil, fmt.Errorf("add food: %w", err)
	}

	return &food, nil
}

func (r *Repo) Update(ctx context.Context, food Food) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE food SET
				name = $3, brand = $4, barcode = $5, calories = $6, protein = $7,
				carbs = $8, fat = $9, serving_size = $10, serving_unit = $11, source = $12
			WHERE id = $1 AND user_id = $2 AND NOT is_compound
		`,
		food.ID, food.UserID, food.Name, food.Brand, food.Barcode,
		food.Calories, food.Protein, food.Carbs, food.Fat,
		food.ServingSize, food.ServingUnit, food.Source,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDuplicateBarcode
		}
		return fmt.Errorf("update food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM food WHERE id = $1 AND user_id = $2 AND NOT is_compound`,
		id, userID,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrFoodInUse
	}
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}

	return nil
}
