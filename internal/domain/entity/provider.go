package entity

// ProviderType identifies how an account was first created.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "Email"
	ProviderTypeGoogle ProviderType = "Google"
)

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	return p == ProviderTypeEmail || p == ProviderTypeGoogle
}
