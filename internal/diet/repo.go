package diet

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entryColumns = `e.id, e.user_id, e.food_id, e.date::text, e.meal_category, e.servings, e.notes, e.created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	var f foods.Food
	err := row.Scan(
		&e.ID, &e.UserID, &e.FoodID, &e.Date, &e.MealCategory, &e.Servings, &e.Notes, &e.CreatedAt,
		&f.ID, &f.UserID, &f.Name, &f.Brand, &f.Barcode,
		&f.Calories, &f.Protein, &f.Carbs, &f.Fat,
		&f.ServingSize, &f.ServingUnit, &f.Source,
		&f.IsCompound, &f.CompoundFoodID, &f.CreatedAt,
	)
	if err != nil {
		return e, err
	}
	e.Food = &f
	return e, nil
}

// ListByDate returns the day's entries with their foods, in creation order.
func (r *Repo) ListByDate(ctx context.Context, userID int, date string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.list_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+entryColumns+`, `+foods.SelectColumns("f")+`
			FROM diet_entry e
			JOIN food f ON f.id = e.food_id
			WHERE e.user_id = $1 AND e.date = $2::date
			ORDER BY e.created_at, e.id
		`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("diet entries [query]: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("diet entries [rows scan]: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("diet entries [rows error]: %w", err)
	}

	return entries, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := scanEntry(r.db.QueryRow(
		ctx,
		`
			SELECT `+entryColumns+`, `+foods.SelectColumns("f")+`
			FROM diet_entry e
			JOIN food f ON f.id = e.food_id
			WHERE e.id = $1 AND e.user_id = $2
		`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("diet entry [query row]: %w", err)
	}

	return &e, nil
}

// Add inserts the entry only when the food belongs to the same user.
func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO diet_entry (user_id, food_id, date, meal_category, servings, notes)
			SELECT $1, f.id, $3::date, $4, $5, $6
			FROM food f
			WHERE f.id = $2 AND f.user_id = $1
			RETURNING id
		`,
		entry.UserID, entry.FoodID, entry.Date, entry.MealCategory, entry.Servings, entry.Notes,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("insert diet entry: %w", err)
	}

	return r.Get(ctx, entry.UserID, id)
}

func (r *Repo) Update(ctx context.Context, userID, id int, update EntryUpdate) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE diet_entry SET meal_category = $1, servings = $2, notes = $3
			WHERE id = $4 AND user_id = $5
		`,
		update.MealCategory, update.Servings, update.Notes, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update diet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrEntryNotFound
	}

	return r.Get(ctx, userID, id)
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM diet_entry WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete diet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
