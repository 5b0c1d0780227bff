//go:build integration_test || all_tests

package integration_testing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/fittrack/internal/compoundfoods"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/diet"
	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/reports"
)

const mealDay = "2024-03-10"

func (s *IntegrationTestSuite) addFood(name string, calories, protein float64) foods.Food {
	resp, body := s.do(http.MethodPost, "/foods", s.token, foods.FoodRequest{
		Name:        name,
		Calories:    calories,
		Protein:     protein,
		ServingSize: "100",
		ServingUnit: "g",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	var food foods.Food
	s.Require().NoError(json.Unmarshal(body, &food))
	return food
}

func (s *IntegrationTestSuite) TestMealFlow() {
	foodA := s.addFood("Food A", 100, 10)
	foodB := s.addFood("Food B", 200, 5)

	resp, body := s.do(http.MethodPost, "/compound-foods", s.token, compoundfoods.CompoundFoodRequest{
		Name:     "Meal",
		Servings: 2,
		Ingredients: []compoundfoods.IngredientRequest{
			{FoodID: foodA.ID, Quantity: 2},
			{FoodID: foodB.ID, Quantity: 1},
		},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	var meal compoundfoods.CompoundFood
	s.Require().NoError(json.Unmarshal(body, &meal))
	s.Require().NotNil(meal.Food)
	s.Require().NotNil(meal.FoodID)
	s.Equal(200.0, meal.Food.Calories)
	s.Equal(12.5, meal.Food.Protein)
	s.True(meal.Food.IsCompound)

	// the generated food is only editable through its recipe
	resp, _ = s.do(http.MethodDelete, fmt.Sprintf("/foods/%d", *meal.FoodID), s.token, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, body = s.do(http.MethodPost, "/diet-entries", s.token, diet.NewEntryRequest{
		FoodID:       *meal.FoodID,
		Date:         mealDay,
		MealCategory: "dinner",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	resp, body = s.do(http.MethodGet, "/diet-entries?date="+mealDay, s.token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var dayLog diet.DayLog
	s.Require().NoError(json.Unmarshal(body, &dayLog))
	s.Require().Len(dayLog.Entries.Dinner, 1)
	s.Equal(200.0, dayLog.DailyTotal)
	s.Equal(200.0, dayLog.Totals.Dinner)

	resp, body = s.do(http.MethodGet, "/dashboard?date="+mealDay, s.token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var dash dashboard.Dashboard
	s.Require().NoError(json.Unmarshal(body, &dash))
	s.Equal(200.0, dash.Calories.DailyTotal)
	s.Equal(0.0, dash.Water.Total)

	resp, body = s.do(http.MethodPost, "/reports/generate", s.token, reports.GenerateRequest{
		Date:    mealDay,
		Options: &reports.Options{IncludeDiet: true},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var report reports.GenerateResponse
	s.Require().NoError(json.Unmarshal(body, &report))
	s.Equal("fittrack-report-"+mealDay+".md", report.Filename)
	s.True(strings.Contains(report.Markdown, "**Daily total: 200 kcal**"), report.Markdown)

	// another user sees none of it
	otherToken := s.registerAndLogin("someone-else", "another-secret")
	resp, _ = s.do(http.MethodGet, fmt.Sprintf("/compound-foods/%d", meal.ID), otherToken, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
