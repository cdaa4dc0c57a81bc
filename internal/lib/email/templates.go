package email

// Template names a file under templates/ without its extension.
type Template string

const (
	TemplateAccountRegistered Template = "account_registered"
)
