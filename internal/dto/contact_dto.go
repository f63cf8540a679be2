package dto

import "github.com/aris220/contact-management-api/internal/models"

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

type UpdateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// SearchContactRequest filters are substring matches; name matches either
// first or last name. All searches are scoped to the caller's own contacts.
type SearchContactRequest struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// ContactResponse strips the owning username; absent optionals are omitted.
type ContactResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type ContactListResponse struct {
	Data   []ContactResponse `json:"data"`
	Paging Paging            `json:"paging"`
}

func ToContactResponse(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
