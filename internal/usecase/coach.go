package usecase

import (
	"context"
	"fmt"

	"moneymitra/internal/domain/entity"
	"moneymitra/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ConnectionStatus string

const (
	StatusConnected        ConnectionStatus = "connected"
	StatusConnectionFailed ConnectionStatus = "connection_failed"
	StatusError            ConnectionStatus = "error"
	StatusUnknown          ConnectionStatus = "unknown"
)

const spendingFallback = "AI analysis temporarily unavailable. Basic analysis provided."

// selfTestRequest is the canned question used to probe the provider.
var selfTestRequest = entity.ChatRequest{
	Question: entity.NewText("How can I save money as a delivery driver?"),
	Context: entity.ChatContext{
		Income:     entity.NewText("20000"),
		Occupation: entity.NewText("delivery driver"),
	},
}

// Coach runs the coaching flows. A Coach built without a provider is
// unavailable and every flow returns entity.ErrProviderUnavailable.
type Coach struct {
	completer *Completer
	vendor    string
	log       *logrus.Logger
}

func NewCoach(provider repository.CompletionProvider, log *logrus.Logger) *Coach {
	c := &Coach{log: log}
	if provider != nil {
		c.completer = NewCompleter(provider, log)
		c.vendor = provider.Vendor()
	}
	return c
}

// Vendor is the provider's vendor name, empty when the coach is unavailable.
func (c *Coach) Vendor() string {
	return c.vendor
}

func (c *Coach) Available() bool {
	return c.completer != nil
}

func (c *Coach) QuickChat(ctx context.Context, req entity.ChatRequest) (entity.CompletionResult, error) {
	if !c.Available() {
		return entity.CompletionResult{}, entity.ErrProviderUnavailable
	}

	fallback := fmt.Sprintf("I understand you're asking about: %s. While I'm experiencing technical issues, here's basic advice: Track your daily earnings and expenses, save 10-15%% when possible, and build an emergency fund gradually.", req.Question.Value)
	return c.completer.Complete(ctx, "quick_chat", QuickChatCall.request(QuickChatPrompt(req)), fallback), nil
}

type Advice struct {
	Result  entity.CompletionResult
	Profile entity.UserProfile
}

func (c *Coach) FinancialAdvice(ctx context.Context, p entity.ProfileRequest) (*Advice, error) {
	if !c.Available() {
		return nil, entity.ErrProviderUnavailable
	}

	prompt, err := FinancialAdvicePrompt(p)
	if err != nil {
		return nil, fmt.Errorf("build advice prompt: %w", err)
	}

	occupation := p.Occupation.Or(DefaultOccupation)
	fallback := fmt.Sprintf("Financial coaching for %s: Focus on tracking daily earnings, saving 10-15%% when possible, and building emergency fund gradually. Consider your irregular income pattern when planning expenses.", occupation)

	return &Advice{
		Result: c.completer.Complete(ctx, "financial_advice", FinancialAdviceCall.request(prompt), fallback),
		Profile: entity.UserProfile{
			Occupation:    occupation,
			IncomePattern: p.IncomePattern.Or(DefaultIncomePattern),
			RiskLevel:     AssessRisk(p.CurrentSavings, p.MonthlyExpenses),
		},
	}, nil
}

// SpendingInsights asks the provider to comment on an already computed
// summary of req.Transactions.
func (c *Coach) SpendingInsights(ctx context.Context, req entity.SpendingRequest, summary entity.SpendingAnalysis) (entity.CompletionResult, error) {
	if !c.Available() {
		return entity.CompletionResult{}, entity.ErrProviderUnavailable
	}

	prompt, err := SpendingPrompt(req.Transactions, req.UserContext, summary)
	if err != nil {
		return entity.CompletionResult{}, fmt.Errorf("build spending prompt: %w", err)
	}
	return c.completer.Complete(ctx, "analyze_spending", SpendingCall.request(prompt), spendingFallback), nil
}

// SelfTest sends one canned question to the provider. It never fails; a
// panic inside the provider is reported as StatusError.
func (c *Coach) SelfTest(ctx context.Context) (status ConnectionStatus) {
	if !c.Available() {
		return StatusUnknown
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.WithField("panic", r).Error("provider self-test panicked")
			status = StatusError
		}
	}()

	res, _ := c.QuickChat(ctx, selfTestRequest)
	if !res.OK() {
		return StatusConnectionFailed
	}
	return StatusConnected
}
