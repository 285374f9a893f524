package service

// Mailer defines the interface for sending transactional mail, such as the
// welcome message after registration. Implementations are optional
// collaborators: the service tolerates a nil Mailer and skips sending.
type Mailer interface {
	// SendWelcome sends the welcome email for a freshly created account.
	SendWelcome(to string, name string) error
}
