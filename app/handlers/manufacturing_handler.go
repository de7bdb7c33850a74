package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/illumenate-lighting/configurator/app/dto"
	businessflow "github.com/illumenate-lighting/configurator/business_flow"
	"github.com/illumenate-lighting/configurator/utils"
)

// ManufacturingHandlerInterface defines the contract for manufacturing handlers
type ManufacturingHandlerInterface interface {
	GenerateArtifacts(c fiber.Ctx) error
	ExportCutSheet(c fiber.Ctx) error
}

// ManufacturingHandler handles manufacturing artifact HTTP requests
type ManufacturingHandler struct {
	manufacturingFlow businessflow.ManufacturingFlow
	exportFlow        businessflow.ExportFlow
	validator         *validator.Validate
}

// NewManufacturingHandler creates a new manufacturing handler
func NewManufacturingHandler(manufacturingFlow businessflow.ManufacturingFlow, exportFlow businessflow.ExportFlow) *ManufacturingHandler {
	return &ManufacturingHandler{
		manufacturingFlow: manufacturingFlow,
		exportFlow:        exportFlow,
		validator:         validator.New(),
	}
}

func (h *ManufacturingHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ManufacturingHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GenerateArtifacts generates the item code, BOM, and traveler notes for a configuration
func (h *ManufacturingHandler) GenerateArtifacts(c fiber.Ctx) error {
	var req dto.GenerateArtifactsRequest
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

	result, err := h.manufacturingFlow.GenerateArtifacts(h.createRequestContext(c, "/api/v1/manufacturing/artifacts"), &req, metadata)
	if err != nil {
		if businessflow.IsConfigurationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Configuration not found", "CONFIGURATION_NOT_FOUND", nil)
		}

		log.Println("Artifact generation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Artifact generation failed", "ARTIFACT_GENERATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ExportCutSheet streams the cut sheet workbook for a configuration
func (h *ManufacturingHandler) ExportCutSheet(c fiber.Ctx) error {
	configUUID := c.Params("uuid")
	if configUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Configuration UUID is required", "MISSING_CONFIG_UUID", nil)
	}

	filename, content, err := h.exportFlow.ExportCutSheet(h.createRequestContext(c, "/api/v1/configurations/"+configUUID+"/cut-sheet"), configUUID)
	if err != nil {
		if businessflow.IsConfigurationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Configuration not found", "CONFIGURATION_NOT_FOUND", nil)
		}

		log.Println("Cut sheet export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Cut sheet export failed", "CUT_SHEET_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

func (h *ManufacturingHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *ManufacturingHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
