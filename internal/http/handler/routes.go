package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"formsapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, dispatch to the injected service, map errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, contacts service.ContactService, enquiries service.EnquiryService, feedbacks service.FeedbackService) {
	app.Get("/", Root())

	// Health endpoint used by the frontend to verify connectivity
	app.Get("/api/health", HealthCheck())

	// Readiness probe: checks DB connectivity only
	app.Get("/health", Readiness(db))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Public submission endpoints
	app.Post("/api/contact", SubmitContact(contacts))
	app.Post("/api/enquiry", SubmitEnquiry(enquiries))
	app.Post("/api/feedback", SubmitFeedback(feedbacks))

	// Admin listing and file retrieval (read-only, unauthenticated)
	app.Get("/api/admin/contacts", ListContacts(contacts))
	app.Get("/api/admin/enquiries", ListEnquiries(enquiries))
	app.Get("/api/admin/enquiry/image/:id", GetEnquiryImage(enquiries))
	app.Get("/api/admin/feedbacks", ListFeedbacks(feedbacks))
}
