package handler

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"formsapi/internal/http/middleware"
)

// msgFileTooLarge is the client-facing message for attachments over the
// upload cap, shared by the enquiry handler and the global error handler.
const msgFileTooLarge = "File too large: maximum allowed size is 2MB"

// errLog writes operator log lines without date/time prefixes; every line
// carries its own ts field. A dedicated logger avoids mutating the global
// log flags from request handlers.
var errLog = log.New(os.Stdout, "", 0)

// errorPayload defines the error response body: {"error": "..."}.
// Internal error detail never reaches the client; it goes to the operator log.
type errorPayload struct {
	Error string `json:"error"`
}

// messagePayload defines the success acknowledgment body: {"message": "..."}.
type messagePayload struct {
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes the JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// logError emits an operator-facing JSON log line with full error detail.
func logError(c *fiber.Ctx, op string, err error) {
	b, mErr := json.Marshal(map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"request_id": requestIDFromCtx(c),
		"op":         op,
		"path":       c.Path(),
		"error":      err.Error(),
	})
	if mErr != nil {
		errLog.Printf("failed to marshal error log: %v", mErr)
		return
	}
	errLog.Println(string(b))
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			// Bodies rejected at the transport layer still answer the
			// documented oversized-upload response.
			return writeError(c, fiber.StatusBadRequest, msgFileTooLarge)
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
