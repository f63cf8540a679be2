package services

import (
	"errors"
	"fmt"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/models"
	"github.com/aris220/contact-management-api/internal/validation"
	"gorm.io/gorm"
)

// ErrContactNotFound is returned both when a contact does not exist and when
// it belongs to another user, so callers cannot probe other users' data.
var ErrContactNotFound = errors.New("contact not found")

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) Create(user *models.User, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	contact := models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  user.Username,
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	resp := dto.ToContactResponse(&contact)
	return &resp, nil
}

// CheckContactExists is the User -> Contact link of the ownership chain.
// The address service calls it before any of its own checks.
func (s *ContactService) CheckContactExists(username string, contactID uint) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.Where("id = ? AND username = ?", contactID, username).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	return &contact, nil
}

func (s *ContactService) Get(user *models.User, contactID uint) (*dto.ContactResponse, error) {
	contact, err := s.CheckContactExists(user.Username, contactID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToContactResponse(contact)
	return &resp, nil
}

// Update replaces every optional field wholesale; callers resend the full
// representation.
func (s *ContactService) Update(user *models.User, contactID uint, req *dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	contact, err := s.CheckContactExists(user.Username, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.db.Save(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	resp := dto.ToContactResponse(contact)
	return &resp, nil
}

func (s *ContactService) Delete(user *models.User, contactID uint) error {
	contact, err := s.CheckContactExists(user.Username, contactID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(contact).Error; err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// Search lists the caller's contacts with optional substring filters. A page
// past the last match comes back empty but keeps its requested page number.
func (s *ContactService) Search(user *models.User, req *dto.SearchContactRequest) (*dto.ContactListResponse, error) {
	query := s.db.Model(&models.Contact{}).Where("username = ?", user.Username)

	if req.Name != "" {
		pattern := "%" + req.Name + "%"
		query = query.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
	}
	if req.Email != "" {
		query = query.Where("email LIKE ?", "%"+req.Email+"%")
	}
	if req.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+req.Phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	var contacts []models.Contact
	offset := (req.Page - 1) * req.Size
	if err := query.Order("id").Limit(req.Size).Offset(offset).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	data := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		data = append(data, dto.ToContactResponse(&contacts[i]))
	}

	totalPage := int((total + int64(req.Size) - 1) / int64(req.Size))

	return &dto.ContactListResponse{
		Data: data,
		Paging: dto.Paging{
			CurrentPage: req.Page,
			TotalPage:   totalPage,
			Size:        req.Size,
		},
	}, nil
}
