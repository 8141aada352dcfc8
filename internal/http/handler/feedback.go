package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"formsapi/internal/model"
	"formsapi/internal/service"
)

// SubmitFeedback accepts a feedback form submission. The service validates
// required fields and the conditional WhatsApp number rule before persisting.
func SubmitFeedback(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.SubmitFeedbackRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		if _, err := svc.Submit(c.UserContext(), req); err != nil {
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, "Missing or invalid required fields")
			}
			logError(c, "submit feedback", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to submit feedback form")
		}
		return c.Status(fiber.StatusCreated).JSON(messagePayload{Message: "Feedback submitted successfully"})
	}
}

// ListFeedbacks returns every feedback record, newest first.
func ListFeedbacks(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feedbacks, err := svc.ListAll(c.UserContext())
		if err != nil {
			logError(c, "list feedbacks", err)
			return c.Status(fiber.StatusInternalServerError).JSON([]model.Feedback{})
		}
		return c.JSON(feedbacks)
	}
}
