package email

// Driver selects the EmailSender built by New.
type Driver string

const (
	DriverDev      Driver = "dev"
	DriverPostmark Driver = "postmark"
	DriverSMTP     Driver = "smtp"
)

// Config holds email service configuration. SenderEmail is the From address
// for every outbound message; SupportEmail, when set, becomes Reply-To.
// Only the settings of the selected driver are checked.
type Config struct {
	Driver       Driver `env:"EMAIL_DRIVER" envDefault:"dev"`
	SenderEmail  string `env:"SENDER_EMAIL,required"`
	SupportEmail string `env:"SUPPORT_EMAIL"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	DevOutputDir string `env:"EMAIL_DEV_DIR" envDefault:"tmp/emails"`
}
