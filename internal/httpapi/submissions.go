package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/internal/services"
	"chemical-leads-api/internal/validation"
)

// SubmitContact handles POST /contact.
func (h *Handler) SubmitContact(c *gin.Context) {
	var inq models.ContactInquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		abortError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.contact.Submit(c.Request.Context(), inq); err != nil {
		submissionError(c, "contact", err)
		return
	}

	c.JSON(http.StatusOK, models.ContactResponse{OK: true})
}

// SubmitRFQ handles POST /rfq.
func (h *Handler) SubmitRFQ(c *gin.Context) {
	var req models.RFQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.rfq.Submit(c.Request.Context(), req); err != nil {
		submissionError(c, "rfq", err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Quote request submitted successfully"})
}

// submissionError maps pipeline errors onto response bodies. Only variable
// names and transport messages reach the client, never configured values.
func submissionError(c *gin.Context, pipeline string, err error) {
	var (
		missingField *services.MissingFieldError
		invalid      *validation.Error
		notConfig    *services.NotConfiguredError
		transport    *services.TransportError
	)

	switch {
	case errors.As(err, &missingField):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Error: missingField.Error(),
			Code:  http.StatusBadRequest,
			Field: missingField.Field,
		})
	case errors.As(err, &invalid):
		body := models.ErrorResponse{
			Error:   "Validation failed",
			Code:    http.StatusBadRequest,
			Details: invalid.ProductSummary(),
			Errors:  invalid.TopLevel(),
		}
		if body.Details != "" {
			body.Errors = append(body.Errors, models.FieldError{Field: "products", Message: body.Details})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
	case errors.As(err, &notConfig):
		abortError(c, http.StatusInternalServerError, "Email service not configured",
			"missing "+strings.Join(notConfig.Missing, ", "))
	case errors.As(err, &transport):
		abortError(c, http.StatusInternalServerError, "Failed to send email", transport.Error())
	default:
		zap.L().Error("submission failed", zap.String("pipeline", pipeline), zap.Error(err))
		abortError(c, http.StatusInternalServerError, "Failed to process submission", "")
	}
}
