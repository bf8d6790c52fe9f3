package model

import "time"

// Contact is a contact form submission.
//
// Every submitted field is optional; a field absent from the request stays
// absent (NULL) in storage and in the response.
type Contact struct {
	ID          int64     `json:"id" db:"id"`
	Name        *string   `json:"name,omitempty" db:"name"`
	Email       *string   `json:"email,omitempty" db:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	Message     *string   `json:"message,omitempty" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateContactPayload is the body of POST /api/contacts.
type CreateContactPayload struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Message     *string `json:"message"`
}

// RequiresBody makes the binder reject a missing or null body.
func (p *CreateContactPayload) RequiresBody() bool {
	return true
}

// Validate accepts every decodable payload; contacts are stored as submitted.
func (p *CreateContactPayload) Validate() error {
	return nil
}

// Contact converts the payload into an unsaved Contact.
func (p *CreateContactPayload) Contact() *Contact {
	return &Contact{
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Message:     p.Message,
	}
}
