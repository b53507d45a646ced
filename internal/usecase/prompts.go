package usecase

import (
	"encoding/json"
	"fmt"

	"moneymitra/internal/domain/entity"
)

// Call-site limits for each endpoint family.
var (
	QuickChatCall       = callSpec{MaxTokens: 500, Temperature: 0.1}
	FinancialAdviceCall = callSpec{MaxTokens: 1500, Temperature: 0.1}
	SpendingCall        = callSpec{MaxTokens: 800, Temperature: 0.1}
)

type callSpec struct {
	MaxTokens   int
	Temperature float32
}

func (c callSpec) request(p entity.Prompt) entity.CompletionRequest {
	return entity.CompletionRequest{Prompt: p, MaxTokens: c.MaxTokens, Temperature: c.Temperature}
}

const noTransactionData = "No recent transaction data provided"

const quickChatSystemPrompt = `You are MoneyMitra, a friendly AI financial coach specializing in helping Indian gig workers, delivery drivers, auto drivers, and people with irregular income.

Key Guidelines:
- Give practical, actionable advice in simple Hindi/English
- Understand Indian financial tools (UPI, digital wallets, bank accounts)
- Consider irregular income challenges
- Be encouraging and supportive
- Keep responses concise but helpful (3-5 sentences)
- Include specific amount suggestions when relevant`

const quickChatUserTemplate = `User Profile:
- Occupation: %s
- Monthly Income: ₹%s
- Monthly Expenses: ₹%s
- Location: %s

Question: %s`

const financialAdviceSystemPrompt = "You are MoneyMitra, an expert financial coach for Indian gig workers and people with irregular income. Provide detailed, practical, and culturally relevant financial advice."

// Placeholders: occupation, income pattern, income range, expenses, savings,
// goals, family size, location, transactions, occupation.
const financialAdviceUserTemplate = `As MoneyMitra, provide comprehensive financial coaching for this Indian user:

USER PROFILE:
- Occupation: %s
- Income Pattern: %s
- Monthly Income Range: ₹%s
- Monthly Expenses: ₹%s
- Current Savings: ₹%s
- Financial Goals: %s
- Family Size: %s
- Location: %s

RECENT TRANSACTIONS:
%s

Please provide a detailed analysis covering:

1. FINANCIAL HEALTH ASSESSMENT
   - Current financial position analysis
   - Income vs expenses evaluation
   - Savings rate assessment

2. RISK ANALYSIS
   - Identify immediate financial risks (next 30 days)
   - Medium-term concerns (3-6 months)
   - Emergency fund adequacy

3. PERSONALIZED RECOMMENDATIONS
   - 3 immediate actions (this week)
   - 3 short-term strategies (next 3 months)
   - 2 long-term goals (6+ months)

4. PRACTICAL TIPS
   - Specific to %s and irregular income
   - Include Indian financial tools and cultural context
   - Realistic amount targets based on their income level

Keep advice practical, encouraging, and culturally relevant for Indian users.`

const spendingSystemPrompt = "You are MoneyMitra, analyzing spending patterns for Indian gig workers. Provide practical insights and actionable recommendations."

const spendingUserTemplate = `Analyze this spending pattern for an Indian gig worker:

TRANSACTIONS DATA:
%s

SPENDING SUMMARY:
- Total Spent: ₹%s
- Category Breakdown: %s

USER CONTEXT:
- Occupation: %s
- Monthly Income: ₹%s

Provide:
1. SPENDING INSIGHTS (3-4 key observations)
2. RISK WARNINGS (if any category is too high)
3. OPTIMIZATION SUGGESTIONS (2-3 specific recommendations)
4. MONEY-SAVING TIPS (tailored to their occupation)

Keep response concise and actionable.`

// Profile defaults applied to absent request fields.
const (
	DefaultOccupation      = "gig worker"
	DefaultChatLocation    = "India"
	DefaultChatAmount      = "N/A"
	DefaultIncomePattern   = "irregular"
	DefaultIncomeRange     = "15000-25000"
	DefaultMonthlyExpenses = "15000"
	DefaultCurrentSavings  = "2000"
	DefaultGoals           = "save money"
	DefaultFamilySize      = "3-4 members"
	DefaultProfileLocation = "urban India"
	DefaultSpendingIncome  = "irregular"
)

func QuickChatPrompt(req entity.ChatRequest) entity.Prompt {
	ctx := req.Context
	return entity.Prompt{
		System: quickChatSystemPrompt,
		User: fmt.Sprintf(quickChatUserTemplate,
			ctx.Occupation.Or(DefaultOccupation),
			ctx.Income.Or(DefaultChatAmount),
			ctx.Expenses.Or(DefaultChatAmount),
			ctx.Location.Or(DefaultChatLocation),
			req.Question.Value,
		),
	}
}

func FinancialAdvicePrompt(p entity.ProfileRequest) (entity.Prompt, error) {
	transactions := noTransactionData
	if len(p.RecentTransactions) > 0 {
		rendered, err := json.MarshalIndent(p.RecentTransactions, "", "  ")
		if err != nil {
			return entity.Prompt{}, fmt.Errorf("render transactions: %w", err)
		}
		transactions = string(rendered)
	}

	occupation := p.Occupation.Or(DefaultOccupation)
	return entity.Prompt{
		System: financialAdviceSystemPrompt,
		User: fmt.Sprintf(financialAdviceUserTemplate,
			occupation,
			p.IncomePattern.Or(DefaultIncomePattern),
			p.IncomeRange.Or(DefaultIncomeRange),
			p.MonthlyExpenses.Or(DefaultMonthlyExpenses),
			p.CurrentSavings.Or(DefaultCurrentSavings),
			p.Goals.Or(DefaultGoals),
			p.FamilySize.Or(DefaultFamilySize),
			p.Location.Or(DefaultProfileLocation),
			transactions,
			occupation,
		),
	}, nil
}

func SpendingPrompt(transactions []entity.Transaction, uc entity.SpendingContext, summary entity.SpendingAnalysis) (entity.Prompt, error) {
	rendered, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return entity.Prompt{}, fmt.Errorf("render transactions: %w", err)
	}
	breakdown, err := json.Marshal(summary.CategoryBreakdown)
	if err != nil {
		return entity.Prompt{}, fmt.Errorf("render category breakdown: %w", err)
	}

	return entity.Prompt{
		System: spendingSystemPrompt,
		User: fmt.Sprintf(spendingUserTemplate,
			string(rendered),
			formatAmount(summary.TotalSpent),
			string(breakdown),
			uc.Occupation.Or(DefaultOccupation),
			uc.Income.Or(DefaultSpendingIncome),
		),
	}, nil
}
