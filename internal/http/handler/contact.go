package handler

import (
	"github.com/gofiber/fiber/v2"

	"formsapi/internal/model"
	"formsapi/internal/service"
)

// SubmitContact accepts a contact form submission. All fields are optional,
// so there is no validation beyond body parsing.
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.SubmitContactRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "invalid request body")
			}
		}

		if _, err := svc.Submit(c.UserContext(), req); err != nil {
			logError(c, "submit contact", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to submit contact form")
		}
		return c.Status(fiber.StatusCreated).JSON(messagePayload{Message: "Contact form submitted successfully"})
	}
}

// ListContacts returns every contact, newest first. On store failure it
// degrades to an empty list with a 500 status so the dashboard keeps working.
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contacts, err := svc.ListAll(c.UserContext())
		if err != nil {
			logError(c, "list contacts", err)
			return c.Status(fiber.StatusInternalServerError).JSON([]model.Contact{})
		}
		return c.JSON(contacts)
	}
}
