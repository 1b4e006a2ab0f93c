package user

type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	PartnerID *string
}

// UpdateUserInput is a partial edit. An empty Password keeps the current one.
type UpdateUserInput struct {
	Name      *string
	Email     *string
	Password  *string
	Role      *string
	PartnerID *string
}
