package models

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}
