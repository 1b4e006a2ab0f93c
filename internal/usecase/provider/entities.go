package provider

type ProviderInput struct {
	Type        string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
}
