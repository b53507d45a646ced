package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"moneymitra/internal/domain/entity"
	"moneymitra/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ServiceName  = "MoneyMitra Financial Coaching API - Production Ready"
	fallbackMode = "Fallback Mode"
)

var (
	quickChatExample = fiber.Map{
		"question": "How can I save money as a delivery driver?",
		"context":  fiber.Map{"income": "20000", "expenses": "18000", "occupation": "delivery driver"},
	}
	spendingExample = fiber.Map{
		"transactions": []fiber.Map{
			{"amount": "500", "category": "food", "date": "2025-10-14"},
			{"amount": "200", "category": "fuel", "date": "2025-10-14"},
		},
		"user_context": fiber.Map{"occupation": "delivery driver", "income": "20000"},
	}
	profileFields = []string{"income_pattern", "income_range", "occupation", "monthly_expenses", "current_savings", "goals"}
)

type CoachHandler struct {
	coach     *usecase.Coach
	log       *logrus.Logger
	version   string
	endpoints []string
}

func NewCoachHandler(coach *usecase.Coach, log *logrus.Logger, version, prefix string) *CoachHandler {
	var endpoints []string
	for _, route := range []string{"health", "quick-chat", "financial-advice", "analyze-spending", "test"} {
		endpoints = append(endpoints, prefix+"/"+route+"/")
	}
	return &CoachHandler{coach: coach, log: log, version: version, endpoints: endpoints}
}

func (h *CoachHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "healthy",
		"service":         ServiceName,
		"timestamp":       timestamp(),
		"version":         h.version,
		"cerebras_status": h.coach.SelfTest(c.UserContext()),
		"endpoints":       h.endpoints,
	})
}

func (h *CoachHandler) QuickChat(c *fiber.Ctx) error {
	start := time.Now()

	var req entity.ChatRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c)
	}
	if req.Question.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No question provided",
			"example": quickChatExample,
		})
	}

	res, err := h.coach.QuickChat(c.UserContext(), req)
	if errors.Is(err, entity.ErrProviderUnavailable) {
		return unavailable(c, "Financial agent not available. Please check configuration.")
	}
	if err != nil {
		return h.failed(c, "Agent error", err)
	}

	if !res.OK() {
		return c.JSON(fiber.Map{
			"success":       true,
			"response":      res.FallbackText,
			"timestamp":     timestamp(),
			"model":         fallbackMode,
			"error_details": res.ErrorMessage,
		})
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"response":         res.Text,
		"timestamp":        timestamp(),
		"model":            res.ModelLabel,
		"response_time_ms": elapsedMs(start),
		"powered_by":       h.coach.Vendor(),
	})
}

func (h *CoachHandler) FinancialAdvice(c *fiber.Ctx) error {
	start := time.Now()

	var fields map[string]json.RawMessage
	if err := decodeBody(c, &fields); err != nil {
		return invalidBody(c)
	}
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":         false,
			"error":           "No user data provided",
			"required_fields": profileFields,
		})
	}
	var profile entity.ProfileRequest
	if err := decodeBody(c, &profile); err != nil {
		return invalidBody(c)
	}

	advice, err := h.coach.FinancialAdvice(c.UserContext(), profile)
	if errors.Is(err, entity.ErrProviderUnavailable) {
		return unavailable(c, "Financial agent not available")
	}
	if err != nil {
		return h.failed(c, "Financial analysis error", err)
	}

	res := advice.Result
	if !res.OK() {
		return c.JSON(fiber.Map{
			"success":       true,
			"advice":        res.FallbackText,
			"timestamp":     timestamp(),
			"model":         fallbackMode,
			"error_details": res.ErrorMessage,
		})
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"advice":           res.Text,
		"user_profile":     advice.Profile,
		"timestamp":        timestamp(),
		"model":            res.ModelLabel,
		"response_time_ms": elapsedMs(start),
		"analysis_type":    "comprehensive",
	})
}

// AnalyzeSpending always returns the arithmetic summary; the AI commentary
// is best effort and analysis_type says which path produced it.
func (h *CoachHandler) AnalyzeSpending(c *fiber.Ctx) error {
	start := time.Now()

	var req entity.SpendingRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c)
	}
	if len(req.Transactions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No transaction data provided",
			"example": spendingExample,
		})
	}

	summary := usecase.AnalyzeSpending(req.Transactions)
	resp := fiber.Map{
		"success":        true,
		"basic_analysis": summary,
	}

	res, err := h.spendingInsights(c, req, summary)
	switch {
	case errors.Is(err, entity.ErrProviderUnavailable):
		resp["ai_insights"] = "AI analysis not available. Showing basic spending breakdown."
		resp["analysis_type"] = "basic_only"
	case err != nil:
		h.log.WithFields(logrus.Fields{"request_id": requestID(c), "error": err.Error()}).Error("spending insights failed")
		resp["ai_insights"] = fmt.Sprintf("AI analysis error: %s. Basic analysis provided.", err)
		resp["analysis_type"] = "basic_fallback"
	case res.OK():
		resp["ai_insights"] = res.Text
		resp["analysis_type"] = "ai_powered"
	default:
		resp["ai_insights"] = res.FallbackText
		resp["error_details"] = res.ErrorMessage
		resp["analysis_type"] = "basic"
	}

	resp["timestamp"] = timestamp()
	resp["response_time_ms"] = elapsedMs(start)
	return c.JSON(resp)
}

// spendingInsights turns a panic in the AI stage into an error so the
// basic analysis is still served.
func (h *CoachHandler) spendingInsights(c *fiber.Ctx, req entity.SpendingRequest, summary entity.SpendingAnalysis) (res entity.CompletionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.coach.SpendingInsights(c.UserContext(), req, summary)
}

// Diagnostics echoes the request; only POST runs the provider self-test.
func (h *CoachHandler) Diagnostics(c *fiber.Ctx) error {
	resp := fiber.Map{
		"message":         "MoneyMitra API - Production Ready! 🚀",
		"method":          c.Method(),
		"timestamp":       timestamp(),
		"agent_available": h.coach.Available(),
		"cerebras_test":   "run POST to test",
		"data_received":   nil,
		"status":          "All systems operational",
	}
	if c.Method() == fiber.MethodPost {
		resp["cerebras_test"] = h.coach.SelfTest(c.UserContext()) == usecase.StatusConnected
		resp["data_received"] = echoBody(c.Body())
	}
	return c.JSON(resp)
}

func (h *CoachHandler) failed(c *fiber.Ctx, prefix string, err error) error {
	h.log.WithFields(logrus.Fields{"request_id": requestID(c), "error": err.Error()}).Error(prefix)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success":   false,
		"error":     prefix + ": " + err.Error(),
		"timestamp": timestamp(),
	})
}

func unavailable(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"success":   false,
		"error":     msg,
		"timestamp": timestamp(),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid request body",
	})
}

// decodeBody leaves v untouched for an empty body.
func decodeBody(c *fiber.Ctx, v any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidRequest, err)
	}
	return nil
}

func echoBody(body []byte) any {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return fiber.Map{}
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

func timestamp() string {
	return time.Now().Format(time.RFC3339Nano)
}

func elapsedMs(start time.Time) float64 {
	ms := float64(time.Since(start).Microseconds()) / 1000
	return math.Round(ms*100) / 100
}
