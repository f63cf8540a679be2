package handlers

import (
	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/middleware"
	"github.com/aris220/contact-management-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.userService.Register(&req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *UserHandler) Current(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: h.userService.Current(user)})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.userService.Update(user, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: resp})
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.userService.Logout(user); err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse{Data: "OK"})
}
