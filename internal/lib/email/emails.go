package email

import "fmt"

// ContactNotification is the content of a contact submission email.
type ContactNotification struct {
	ContactID   int64
	Name        string
	Email       string
	PhoneNumber string
	Message     string
	CreatedAt   string
}

// SendContactNotification tells the site owner about a new contact submission.
func (c *Client) SendContactNotification(to string, n ContactNotification) error {
	data := map[string]string{
		"ContactID":   fmt.Sprintf("%d", n.ContactID),
		"Name":        n.Name,
		"Email":       n.Email,
		"PhoneNumber": n.PhoneNumber,
		"Message":     n.Message,
		"CreatedAt":   n.CreatedAt,
	}

	subject := "New contact submission"
	if n.Name != "" {
		subject = fmt.Sprintf("New contact submission from %s", n.Name)
	}

	return c.SendEmail(to, subject, TemplateContactNotification, data)
}
