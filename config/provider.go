package config

// Provider defines the api for configuration providers
// to implement to expose configuration information.
type Provider interface {
	Unmarshal(path string, flat bool, output any) error
}
