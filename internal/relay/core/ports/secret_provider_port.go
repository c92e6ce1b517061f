package ports

// SecretProviderPort resolves the upstream API credential. An empty
// string means the secret is not configured; the usecase turns that
// into a configuration error rather than failing at startup.
type SecretProviderPort interface {
	AccessToken() string
}
