package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData["contact_notification"]["Name"] == "Jane Doe"
var PreviewData = map[Template]map[string]string{
	TemplateContactNotification: {
		"ContactID":   "42",
		"Name":        "Jane Doe",
		"Email":       "jane@example.com",
		"PhoneNumber": "+1 (555) 123-4567",
		"Message":     "We would like a quote for 50kg of rose extract.",
		"CreatedAt":   "2026-01-02 15:04:05",
	},
}
