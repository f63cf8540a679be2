package handlers

import (
	"strconv"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/middleware"
	"github.com/aris220/contact-management-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.contactService.Create(user, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.contactService.Get(user, contactID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.contactService.Update(user, contactID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.contactService.Delete(user, contactID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: "OK"})
}

func (h *ContactHandler) Search(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.Query("size", "10"))
	if size < 1 {
		size = 10
	}

	req := dto.SearchContactRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  page,
		Size:  size,
	}

	resp, err := h.contactService.Search(user, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(resp)
}
