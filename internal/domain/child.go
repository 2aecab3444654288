package domain

import "time"

// Child belongs to exactly one parent user. The ownership edge is set at
// creation and never reassigned.
type Child struct {
	ID        string
	Name      string
	ParentID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateChildRequest holds parameters for registering a child under a parent.
type CreateChildRequest struct {
	Name     string
	ParentID string
}

// Validate checks that the request is well-formed.
func (r *CreateChildRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation(CodeValidationFailed, "child name is required")
	}
	if r.ParentID == "" {
		return ErrValidation(CodeValidationFailed, "parent id is required")
	}
	return nil
}

// EditChildRequest holds parameters for renaming a child.
type EditChildRequest struct {
	ID   string
	Name string
}

// Validate checks that the request is well-formed.
func (r *EditChildRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation(CodeValidationFailed, "child name is required")
	}
	return nil
}
