package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"formsapi/internal/model"
	"formsapi/internal/service"
)

// SubmitEnquiry accepts an enquiry form submission, either plain JSON or
// multipart/form-data with an optional single file under the "file" field.
func SubmitEnquiry(svc service.EnquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.SubmitEnquiryRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "invalid request body")
			}
		}

		// The file field is optional; FormFile fails for JSON bodies too.
		var file *service.FileUpload
		if fh, err := c.FormFile("file"); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
			}
			defer f.Close()

			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}

			file = &service.FileUpload{
				Reader:      f,
				Filename:    fh.Filename,
				ContentType: ct,
				Size:        fh.Size,
			}
		}

		if _, err := svc.Submit(c.UserContext(), req, file); err != nil {
			if errors.Is(err, service.ErrFileTooLarge) {
				return writeError(c, fiber.StatusBadRequest, msgFileTooLarge)
			}
			logError(c, "submit enquiry", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to submit enquiry form")
		}
		return c.Status(fiber.StatusCreated).JSON(messagePayload{Message: "Enquiry form submitted successfully"})
	}
}

// ListEnquiries returns every enquiry, newest first, without file content.
func ListEnquiries(svc service.EnquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		enquiries, err := svc.ListAll(c.UserContext())
		if err != nil {
			logError(c, "list enquiries", err)
			return c.Status(fiber.StatusInternalServerError).JSON([]model.Enquiry{})
		}
		return c.JSON(enquiries)
	}
}

// GetEnquiryImage serves the stored attachment bytes for one enquiry with the
// MIME type declared at upload. Unknown ids, malformed ids, and enquiries
// without an attachment all answer 404 plain text.
func GetEnquiryImage(svc service.EnquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(fiber.StatusNotFound).SendString("No image found for this enquiry")
		}

		data, fileType, err := svc.GetFile(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).SendString("No image found for this enquiry")
			}
			logError(c, "get enquiry image", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch enquiry image")
		}

		c.Set(fiber.HeaderContentType, fileType)
		return c.Send(data)
	}
}
