package domain

import "time"

// Meal types and sizes accepted by the API.
const (
	MealTypeBreast = "breast"
	MealTypeBottle = "bottle"

	MealSizeSmall  = "s"
	MealSizeMedium = "m"
	MealSizeLarge  = "l"
)

// Meal records a single feeding event for a child. The owning child is set
// at creation and never reassigned.
type Meal struct {
	ID        string
	ChildID   string
	Type      string
	Size      *string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func validMealType(t string) bool {
	return t == MealTypeBreast || t == MealTypeBottle
}

func validMealSize(s string) bool {
	return s == MealSizeSmall || s == MealSizeMedium || s == MealSizeLarge
}

// CreateMealRequest holds parameters for recording a meal. A nil Date means
// "now"; dates are stored in UTC truncated to the minute.
type CreateMealRequest struct {
	ChildID string
	Type    string
	Size    *string
	Date    *time.Time
}

// Validate checks that the request is well-formed.
func (r *CreateMealRequest) Validate() error {
	if !validMealType(r.Type) {
		return ErrValidation(CodeValidationFailed, "meal type must be 'breast' or 'bottle'")
	}
	if r.Size != nil && !validMealSize(*r.Size) {
		return ErrValidation(CodeValidationFailed, "meal size must be 's', 'm', or 'l'")
	}
	return nil
}

// EditMealRequest holds a partial update for a meal. At least one field must
// be set.
type EditMealRequest struct {
	ID   string
	Type *string
	Size *string
	Date *time.Time
}

// Validate checks that the request is well-formed and not empty.
func (r *EditMealRequest) Validate() error {
	if r.Type == nil && r.Size == nil && r.Date == nil {
		return ErrValidation(CodeEmptyPayload, "either type, size or date must be provided to edit meal")
	}
	if r.Type != nil && !validMealType(*r.Type) {
		return ErrValidation(CodeValidationFailed, "meal type must be 'breast' or 'bottle'")
	}
	if r.Size != nil && !validMealSize(*r.Size) {
		return ErrValidation(CodeValidationFailed, "meal size must be 's', 'm', or 'l'")
	}
	return nil
}

// NormalizeMealDate converts a feeding timestamp to its stored precision:
// UTC, truncated to the minute.
func NormalizeMealDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}
