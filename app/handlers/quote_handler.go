// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/illumenate-lighting/configurator/app/dto"
	"github.com/illumenate-lighting/configurator/app/middleware"
	businessflow "github.com/illumenate-lighting/configurator/business_flow"
	"github.com/illumenate-lighting/configurator/utils"
)

// QuoteHandlerInterface defines the contract for quote handlers
type QuoteHandlerInterface interface {
	ValidateAndQuote(c fiber.Ctx) error
	GetConfiguration(c fiber.Ctx) error
}

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteFlow businessflow.QuoteFlow
	validator *validator.Validate
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteFlow businessflow.QuoteFlow) *QuoteHandler {
	return &QuoteHandler{
		quoteFlow: quoteFlow,
		validator: validator.New(),
	}
}

func (h *QuoteHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *QuoteHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ValidateAndQuote handles the configuration validation and quoting process
func (h *QuoteHandler) ValidateAndQuote(c fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get(businessflow.RequestIDKey))

	// Call business logic with proper context
	result, err := h.quoteFlow.ValidateAndQuote(h.createRequestContext(c, "/api/v1/quotes"), &req, metadata)
	if err != nil {
		log.Println("Quote computation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Quote computation failed", "QUOTE_FAILED", nil)
	}

	middleware.RecordQuoteOutcome(result.IsValid)

	// Domain validation problems are a successful 200 with is_valid=false
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetConfiguration returns a stored configuration by UUID
func (h *QuoteHandler) GetConfiguration(c fiber.Ctx) error {
	configUUID := c.Params("uuid")
	if configUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Configuration UUID is required", "MISSING_CONFIG_UUID", nil)
	}

	result, err := h.quoteFlow.GetConfiguration(h.createRequestContext(c, "/api/v1/configurations/"+configUUID), configUUID)
	if err != nil {
		if businessflow.IsConfigurationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Configuration not found", "CONFIGURATION_NOT_FOUND", nil)
		}

		log.Println("Configuration lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Configuration lookup failed", "CONFIGURATION_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

func (h *QuoteHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *QuoteHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
