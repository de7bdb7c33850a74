package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/illumenate-lighting/configurator/app/dto"
	"github.com/illumenate-lighting/configurator/app/middleware"
	businessflow "github.com/illumenate-lighting/configurator/business_flow"
	"github.com/illumenate-lighting/configurator/utils"
)

// AuditHandlerInterface defines the contract for coverage audit handlers
type AuditHandlerInterface interface {
	RunCoverageAudit(c fiber.Ctx) error
}

// AuditHandler handles catalog coverage audit HTTP requests
type AuditHandler struct {
	auditFlow businessflow.CoverageAuditFlow
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditFlow businessflow.CoverageAuditFlow) *AuditHandler {
	return &AuditHandler{auditFlow: auditFlow}
}

func (h *AuditHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AuditHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RunCoverageAudit checks every allowed catalog combination for item mapping coverage
func (h *AuditHandler) RunCoverageAudit(c fiber.Ctx) error {
	// Audits walk the whole catalog; give them more room than a quote.
	result, err := h.auditFlow.RunCoverageAudit(h.createRequestContextWithTimeout(c, "/api/v1/catalog/coverage-audit", 2*time.Minute))
	if err != nil {
		log.Println("Coverage audit failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Coverage audit failed", "COVERAGE_AUDIT_FAILED", nil)
	}

	middleware.RecordCoverageAuditResult(len(result.MissingMappings))

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

func (h *AuditHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
