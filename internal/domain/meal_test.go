package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateMealRequest_Validate(t *testing.T) {
	req := CreateMealRequest{ChildID: "c1", Type: MealTypeBreast}
	assert.NoError(t, req.Validate())

	req.Type = "bottle"
	req.Size = strPtr(MealSizeMedium)
	assert.NoError(t, req.Validate())

	req.Type = "solid"
	assert.Error(t, req.Validate())

	req.Type = MealTypeBottle
	req.Size = strPtr("xl")
	assert.Error(t, req.Validate())
}

func TestEditMealRequest_EmptyPayload(t *testing.T) {
	req := EditMealRequest{ID: "m1"}

	var verr *ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, CodeEmptyPayload, verr.Code)
}

func TestEditMealRequest_SingleField(t *testing.T) {
	now := time.Now()

	assert.NoError(t, (&EditMealRequest{ID: "m1", Type: strPtr(MealTypeBottle)}).Validate())
	assert.NoError(t, (&EditMealRequest{ID: "m1", Size: strPtr(MealSizeSmall)}).Validate())
	assert.NoError(t, (&EditMealRequest{ID: "m1", Date: &now}).Validate())

	assert.Error(t, (&EditMealRequest{ID: "m1", Type: strPtr("juice")}).Validate())
	assert.Error(t, (&EditMealRequest{ID: "m1", Size: strPtr("xxl")}).Validate())
}

func TestNormalizeMealDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2024, 6, 1, 14, 30, 45, 123456789, loc)

	got := NormalizeMealDate(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), got)
}

func TestNewID_IsValidUUID(t *testing.T) {
	id := NewID()
	assert.True(t, ValidID(id))
	assert.False(t, ValidID("not-a-uuid"))
	assert.False(t, ValidID(""))
}
