package account

// Config holds account module settings.
type Config struct {
	// ActivationBaseURL prefixes activation links in emails. When empty
	// APP_PUBLIC_URL is used.
	ActivationBaseURL string `env:"ACTIVATION_BASE_URL"`
}
