package handlers

import (
	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/middleware"
	"github.com/aris220/contact-management-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.addressService.Create(user, contactID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *AddressHandler) Get(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	addressID, err := paramID(c, "addressId")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.addressService.Get(user, contactID, addressID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	addressID, err := paramID(c, "addressId")
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.addressService.Update(user, contactID, addressID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	addressID, err := paramID(c, "addressId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.addressService.Delete(user, contactID, addressID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: "OK"})
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.addressService.List(user, contactID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}
