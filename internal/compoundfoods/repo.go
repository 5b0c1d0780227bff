package compoundfoods

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID int) (_ []CompoundFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.compound_foods.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, name, description, servings, food_id, created_at
			FROM compound_food
			WHERE user_id = $1
			ORDER BY name, id
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("compound foods [query]: %w", err)
	}

	compoundFoods := []CompoundFood{}
	for rows.Next() {
		var cf CompoundFood
		if err := rows.Scan(&cf.ID, &cf.UserID, &cf.Name, &cf.Description, &cf.Servings, &cf.FoodID, &cf.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("compound foods [rows scan]: %w", err)
		}
		compoundFoods = append(compoundFoods, cf)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("compound foods [rows error]: %w", err)
	}

	for i := range compoundFoods {
		if err := r.loadDetails(ctx, r.db, &compoundFoods[i]); err != nil {
			return nil, err
		}
	}

	return compoundFoods, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *CompoundFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.compound_foods.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.get(ctx, r.db, userID, id, false)
}

func (r *Repo) get(ctx context.Context, q db.Querier, userID, id int, forUpdate bool) (*CompoundFood, error) {
	query := `
		SELECT id, user_id, name, description, servings, food_id, created_at
		FROM compound_food
		WHERE id = $1 AND user_id = $2
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var cf CompoundFood
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&cf.ID, &cf.UserID, &cf.Name, &cf.Description, &cf.Servings, &cf.FoodID, &cf.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompoundFoodNotFound
		}
		return nil, fmt.Errorf("compound food [query row]: %w", err)
	}

	if err := r.loadDetails(ctx, q, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// loadDetails fills the generated food, the ingredients with their foods and the totals.
func (r *Repo) loadDetails(ctx context.Context, q db.Querier, cf *CompoundFood) error {
	if cf.FoodID != nil {
		f, err := foods.ScanFood(q.QueryRow(
			ctx,
			`SELECT `+foods.SelectColumns("")+` FROM food WHERE id = $1`,
			*cf.FoodID,
		))
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("compound food [generated food]: %w", err)
		}
		if err == nil {
			cf.Food = &f
		}
	}

	rows, err := q.Query(
		ctx,
		`
			SELECT i.id, i.quantity, i.position, `+foods.SelectColumns("f")+`
			FROM compound_food_ingredient i
			JOIN food f ON f.id = i.food_id
			WHERE i.compound_food_id = $1
			ORDER BY i.position, i.id
		`,
		cf.ID,
	)
	if err != nil {
		return fmt.Errorf("compound food ingredients [query]: %w", err)
	}
	defer rows.Close()

	cf.Ingredients = []Ingredient{}
	for rows.Next() {
		var ing Ingredient
		var f foods.Food
		err := rows.Scan(
			&ing.ID, &ing.Quantity, &ing.Position,
			&f.ID, &f.UserID, &f.Name, &f.Brand, &f.Barcode,
			&f.Calories, &f.Protein, &f.Carbs, &f.Fat,
			&f.ServingSize, &f.ServingUnit, &f.Source,
			&f.IsCompound, &f.CompoundFoodID, &f.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("compound food ingredients [rows scan]: %w", err)
		}
		ing.FoodID = f.ID
		ing.Food = &f
		cf.Ingredients = append(cf.Ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("compound food ingredients [rows error]: %w", err)
	}

	cf.Totals = Totals(portionsOf(cf.Ingredients))
	return nil
}

// resolveIngredients loads every ingredient food, scoped to the user. Any
// missing or foreign food fails the whole operation.
func resolveIngredients(ctx context.Context, tx pgx.Tx, userID, compoundFoodID int, inputs []IngredientInput) ([]Ingredient, error) {
	if len(inputs) == 0 {
		return nil, ErrNoIngredients
	}

	ingredients := make([]Ingredient, 0, len(inputs))
	for i, in := range inputs {
		f, err := foods.ScanFood(tx.QueryRow(
			ctx,
			`SELECT `+foods.SelectColumns("")+` FROM food WHERE id = $1 AND user_id = $2`,
			in.FoodID, userID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrIngredientNotFound
			}
			return nil, fmt.Errorf("ingredient food [query row]: %w", err)
		}
		if compoundFoodID > 0 && f.CompoundFoodID != nil && *f.CompoundFoodID == compoundFoodID {
			return nil, ErrSelfIngredient
		}
		ingredients = append(ingredients, Ingredient{
			FoodID:   f.ID,
			Quantity: in.Quantity,
			Position: i,
			Food:     &f,
		})
	}
	return ingredients, nil
}

func insertIngredients(ctx context.Context, tx pgx.Tx, compoundFoodID int, ingredients []Ingredient) error {
	for i := range ingredients {
		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO compound_food_ingredient (compound_food_id, food_id, quantity, position)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`,
			compoundFoodID, ingredients[i].FoodID, ingredients[i].Quantity, ingredients[i].Position,
		).Scan(&ingredients[i].ID)
		if err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	return nil
}

func servingSizeOf(servings float64) string {
	return strconv.FormatFloat(servings, 'f', -1, 64)
}

func (r *Repo) Create(ctx context.Context, userID int, input Input) (_ *CompoundFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.compound_foods.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ingredients.count", len(input.Ingredients)))

	var created *CompoundFood
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		ingredients, err := resolveIngredients(ctx, tx, userID, 0, input.Ingredients)
		if err != nil {
			return err
		}
		perServing := PerServing(Totals(portionsOf(ingredients)), input.Servings)

		var compoundFoodID int
		err = tx.QueryRow(
			ctx,
			`
				INSERT INTO compound_food (user_id, name, description, servings)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`,
			userID, input.Name, input.Description, input.Servings,
		).Scan(&compoundFoodID)
		if err != nil {
			return fmt.Errorf("insert compound food: %w", err)
		}

		var foodID int
		err = tx.QueryRow(
			ctx,
			`
				INSERT INTO food (
					user_id, name, brand, calories, protein, carbs, fat,
					serving_size, serving_unit, source, is_compound, compound_food_id
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, $11)
				RETURNING id
			`,
			userID, input.Name, RecipeBrand,
			perServing.Calories, perServing.Protein, perServing.Carbs, perServing.Fat,
			servingSizeOf(input.Servings), generatedServingUnit, foods.Source.Compound, compoundFoodID,
		).Scan(&foodID)
		if err != nil {
			return fmt.Errorf("insert generated food: %w", err)
		}

		if _, err := tx.Exec(ctx, `UPDATE compound_food SET food_id = $1 WHERE id = $2`, foodID, compoundFoodID); err != nil {
			return fmt.Errorf("link generated food: %w", err)
		}

		if err := insertIngredients(ctx, tx, compoundFoodID, ingredients); err != nil {
			return err
		}

		created, err = r.get(ctx, tx, userID, compoundFoodID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update replaces the ingredient list wholesale and recomputes the generated food.
func (r *Repo) Update(ctx context.Context, userID, id int, input Input) (_ *CompoundFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.compound_foods.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var updated *CompoundFood
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := r.get(ctx, tx, userID, id, true)
		if err != nil {
			return err
		}

		ingredients, err := resolveIngredients(ctx, tx, userID, id, input.Ingredients)
		if err != nil {
			return err
		}
		perServing := PerServing(Totals(portionsOf(ingredients)), input.Servings)

		if _, err := tx.Exec(ctx, `DELETE FROM compound_food_ingredient WHERE compound_food_id = $1`, id); err != nil {
			return fmt.Errorf("delete ingredients: %w", err)
		}
		if err := insertIngredients(ctx, tx, id, ingredients); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE compound_food SET name = $1, description = $2, servings = $3 WHERE id = $4`,
			input.Name, input.Description, input.Servings, id,
		); err != nil {
			return fmt.Errorf("update compound food: %w", err)
		}

		if existing.FoodID != nil {
			_, err = tx.Exec(
				ctx,
				`
					UPDATE food SET
						name = $1, calories = $2, protein = $3, carbs = $4, fat = $5, serving_size = $6
					WHERE id = $7
				`,
				input.Name, perServing.Calories, perServing.Protein, perServing.Carbs, perServing.Fat,
				servingSizeOf(input.Servings), *existing.FoodID,
			)
			if err != nil {
				return fmt.Errorf("update generated food: %w", err)
			}
		}

		updated, err = r.get(ctx, tx, userID, id, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the compound food, its generated food and its ingredients.
func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.compound_foods.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := r.get(ctx, tx, userID, id, true); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM compound_food_ingredient WHERE compound_food_id = $1`, id); err != nil {
			return fmt.Errorf("delete ingredients: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM food WHERE compound_food_id = $1`, id); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrCompoundFoodInUse
			}
			return fmt.Errorf("delete generated food: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM compound_food WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
			return fmt.Errorf("delete compound food: %w", err)
		}
		return nil
	})
}
