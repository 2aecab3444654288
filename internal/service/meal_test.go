package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

func strPtr(s string) *string { return &s }

func newMealFixture() (*MealService, *stubMealRepo, *stubChildRepo) {
	meals := newStubMealRepo()
	children := newStubChildRepo()
	children.children["child-1"] = &domain.Child{ID: "child-1", Name: "june", ParentID: "parent-1"}
	return NewMealService(meals, children), meals, children
}

func TestMealAdd_DefaultsDateToNow(t *testing.T) {
	svc, _, _ := newMealFixture()

	before := domain.NormalizeMealDate(time.Now())
	meal, err := svc.Add(context.Background(), domain.CreateMealRequest{
		ChildID: "child-1",
		Type:    domain.MealTypeBreast,
	})
	require.NoError(t, err)
	after := domain.NormalizeMealDate(time.Now())

	assert.True(t, domain.ValidID(meal.ID))
	assert.Equal(t, time.UTC, meal.Date.Location())
	assert.Zero(t, meal.Date.Second())
	assert.False(t, meal.Date.Before(before))
	assert.False(t, meal.Date.After(after))
}

func TestMealAdd_NormalizesExplicitDate(t *testing.T) {
	svc, _, _ := newMealFixture()

	loc := time.FixedZone("UTC-5", -5*60*60)
	given := time.Date(2024, 6, 1, 9, 15, 42, 0, loc)

	meal, err := svc.Add(context.Background(), domain.CreateMealRequest{
		ChildID: "child-1",
		Type:    domain.MealTypeBottle,
		Size:    strPtr(domain.MealSizeLarge),
		Date:    &given,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 14, 15, 0, 0, time.UTC), meal.Date)
	require.NotNil(t, meal.Size)
	assert.Equal(t, domain.MealSizeLarge, *meal.Size)
}

func TestMealAdd_ChildMustExist(t *testing.T) {
	svc, meals, _ := newMealFixture()

	_, err := svc.Add(context.Background(), domain.CreateMealRequest{
		ChildID: "child-ghost",
		Type:    domain.MealTypeBreast,
	})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.CodeChildNotFound, nf.Code)
	assert.Empty(t, meals.meals)
}

func TestMealAdd_InvalidType(t *testing.T) {
	svc, _, _ := newMealFixture()

	_, err := svc.Add(context.Background(), domain.CreateMealRequest{
		ChildID: "child-1",
		Type:    "solid",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodeValidationFailed, verr.Code)
}

func TestMealEdit_PartialUpdate(t *testing.T) {
	svc, meals, _ := newMealFixture()
	date := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	meals.meals["meal-1"] = &domain.Meal{ID: "meal-1", ChildID: "child-1", Type: domain.MealTypeBreast, Date: date}

	err := svc.Edit(context.Background(), domain.EditMealRequest{
		ID:   "meal-1",
		Size: strPtr(domain.MealSizeSmall),
	})
	require.NoError(t, err)

	got := meals.meals["meal-1"]
	assert.Equal(t, domain.MealTypeBreast, got.Type, "type untouched")
	assert.Equal(t, date, got.Date, "date untouched")
	require.NotNil(t, got.Size)
	assert.Equal(t, domain.MealSizeSmall, *got.Size)
}

func TestMealEdit_EmptyPayload(t *testing.T) {
	svc, meals, _ := newMealFixture()
	meals.meals["meal-1"] = &domain.Meal{ID: "meal-1", ChildID: "child-1", Type: domain.MealTypeBreast}

	err := svc.Edit(context.Background(), domain.EditMealRequest{ID: "meal-1"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodeEmptyPayload, verr.Code)
}

func TestMealEdit_NormalizesDate(t *testing.T) {
	svc, meals, _ := newMealFixture()
	meals.meals["meal-1"] = &domain.Meal{ID: "meal-1", ChildID: "child-1", Type: domain.MealTypeBreast}

	loc := time.FixedZone("UTC+1", 60*60)
	newDate := time.Date(2024, 6, 2, 8, 30, 59, 0, loc)

	require.NoError(t, svc.Edit(context.Background(), domain.EditMealRequest{ID: "meal-1", Date: &newDate}))
	assert.Equal(t, time.Date(2024, 6, 2, 7, 30, 0, 0, time.UTC), meals.meals["meal-1"].Date)
}

func TestMealListForChild_ChildMustExist(t *testing.T) {
	svc, _, _ := newMealFixture()

	_, err := svc.ListForChild(context.Background(), "child-ghost")

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.CodeChildNotFound, nf.Code)
}

func TestMealDelete_MissingMeal(t *testing.T) {
	svc, _, _ := newMealFixture()

	err := svc.Delete(context.Background(), "meal-ghost")

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.CodeMealNotFound, nf.Code)
}
