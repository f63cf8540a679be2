package services

import (
	"errors"
	"fmt"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/models"
	"github.com/aris220/contact-management-api/internal/validation"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressService guards the full User -> Contact -> Address chain: the
// contact link is verified through the contact service before the address
// itself is looked up, on every operation.
type AddressService struct {
	db       *gorm.DB
	contacts *ContactService
}

func NewAddressService(db *gorm.DB, contacts *ContactService) *AddressService {
	return &AddressService{db: db, contacts: contacts}
}

func (s *AddressService) checkAddressExists(contactID, addressID uint) (*models.Address, error) {
	var address models.Address
	err := s.db.Where("id = ? AND contact_id = ?", addressID, contactID).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to load address: %w", err)
	}
	return &address, nil
}

func (s *AddressService) Create(user *models.User, contactID uint, req *dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactExists(user.Username, contactID); err != nil {
		return nil, err
	}

	address := models.Address{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ContactID:  contactID,
	}

	if err := s.db.Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	resp := dto.ToAddressResponse(&address)
	return &resp, nil
}

func (s *AddressService) Get(user *models.User, contactID, addressID uint) (*dto.AddressResponse, error) {
	if _, err := s.contacts.CheckContactExists(user.Username, contactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressExists(contactID, addressID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToAddressResponse(address)
	return &resp, nil
}

// Update replaces every field wholesale, like the contact update.
func (s *AddressService) Update(user *models.User, contactID, addressID uint, req *dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactExists(user.Username, contactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressExists(contactID, addressID)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.PostalCode = req.PostalCode

	if err := s.db.Save(address).Error; err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	resp := dto.ToAddressResponse(address)
	return &resp, nil
}

// Delete is scoped by id and contact id, keeping the ownership chain intact
// even if two contacts ever share an address id sequence.
func (s *AddressService) Delete(user *models.User, contactID, addressID uint) error {
	if _, err := s.contacts.CheckContactExists(user.Username, contactID); err != nil {
		return err
	}

	address, err := s.checkAddressExists(contactID, addressID)
	if err != nil {
		return err
	}

	if err := s.db.Where("contact_id = ?", contactID).Delete(address).Error; err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

func (s *AddressService) List(user *models.User, contactID uint) ([]dto.AddressResponse, error) {
	if _, err := s.contacts.CheckContactExists(user.Username, contactID); err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err := s.db.Where("contact_id = ?", contactID).Order("id").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	data := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		data = append(data, dto.ToAddressResponse(&addresses[i]))
	}
	return data, nil
}
