package email

// PreviewData holds sample values for every template, keyed by template
// name and then by template variable.
var PreviewData = map[Template]map[string]string{
	TemplateAccountRegistered: {
		"UserID":      "7",
		"Username":    "aanderson",
		"AccountName": "AndersonExile",
	},
}
