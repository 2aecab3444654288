package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

var (
	owner    = domain.Identity{ID: "parent-1", Username: "alice", Email: "alice@example.com"}
	stranger = domain.Identity{ID: "parent-2", Username: "mallory", Email: "mallory@example.com"}
)

func newOwnershipFixture() (*OwnershipResolver, *stubChildRepo, *stubMealRepo) {
	children := newStubChildRepo()
	meals := newStubMealRepo()

	children.children["child-1"] = &domain.Child{ID: "child-1", Name: "june", ParentID: owner.ID}
	children.children["child-2"] = &domain.Child{ID: "child-2", Name: "max", ParentID: stranger.ID}
	meals.meals["meal-1"] = &domain.Meal{ID: "meal-1", ChildID: "child-1", Type: domain.MealTypeBreast}
	meals.meals["meal-2"] = &domain.Meal{ID: "meal-2", ChildID: "child-2", Type: domain.MealTypeBottle}

	return NewOwnershipResolver(children, meals), children, meals
}

func requireChildNotFound(t *testing.T, err error) {
	t.Helper()
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.CodeChildNotFound, nf.Code)
}

func requireMealNotFound(t *testing.T, err error) {
	t.Helper()
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.CodeMealNotFound, nf.Code)
}

func TestOwnsChild_Owner(t *testing.T) {
	resolver, _, _ := newOwnershipFixture()

	child, err := resolver.OwnsChild(context.Background(), owner, "child-1")
	require.NoError(t, err)
	assert.Equal(t, "child-1", child.ID)
}

// A foreign child and an absent child must produce the same error, so a
// probing caller cannot tell which ids exist.
func TestOwnsChild_ForeignAndAbsentIndistinguishable(t *testing.T) {
	resolver, _, _ := newOwnershipFixture()

	_, foreignErr := resolver.OwnsChild(context.Background(), owner, "child-2")
	_, absentErr := resolver.OwnsChild(context.Background(), owner, "child-ghost")

	requireChildNotFound(t, foreignErr)
	requireChildNotFound(t, absentErr)
	assert.Equal(t, foreignErr.Error(), absentErr.Error())
}

func TestOwnsMeal_Owner(t *testing.T) {
	resolver, _, _ := newOwnershipFixture()

	meal, err := resolver.OwnsMeal(context.Background(), owner, "child-1", "meal-1")
	require.NoError(t, err)
	assert.Equal(t, "meal-1", meal.ID)
}

func TestOwnsMeal_ChildGuardFailsFirst(t *testing.T) {
	resolver, _, meals := newOwnershipFixture()

	// Requesting a meal under someone else's child fails the child check and
	// never touches meal storage.
	_, err := resolver.OwnsMeal(context.Background(), owner, "child-2", "meal-2")
	requireChildNotFound(t, err)
	assert.Zero(t, meals.getCalls)
}

func TestOwnsMeal_MealUnderDifferentChild(t *testing.T) {
	resolver, children, _ := newOwnershipFixture()

	// Both children belong to the owner, but the meal hangs off the other one.
	children.children["child-2"].ParentID = owner.ID

	_, err := resolver.OwnsMeal(context.Background(), owner, "child-1", "meal-2")
	requireMealNotFound(t, err)
}

func TestOwnsMeal_AbsentMeal(t *testing.T) {
	resolver, _, _ := newOwnershipFixture()

	_, err := resolver.OwnsMeal(context.Background(), owner, "child-1", "meal-ghost")
	requireMealNotFound(t, err)
}
