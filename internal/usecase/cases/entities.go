package cases

type CreateCaseInput struct {
	Title    string
	Client   string
	Priority string
	// Status is accepted for compatibility and ignored.
	Status     string
	AssignedTo *string
	CreatedBy  string
}

// UpdateCaseInput is a partial edit; nil fields are left untouched.
type UpdateCaseInput struct {
	Title    *string
	Client   *string
	Priority *string
	Status   *string
}

type ListCasesInput struct {
	Status     string
	AssignedTo string
	CreatedBy  string
}
