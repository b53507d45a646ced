package entity

// ChatContext is the optional profile sent with a quick-chat question.
type ChatContext struct {
	Income     Text `json:"income"`
	Expenses   Text `json:"expenses"`
	Occupation Text `json:"occupation"`
	Location   Text `json:"location"`
}

type ChatRequest struct {
	Question Text        `json:"question"`
	Context  ChatContext `json:"context"`
}

// ProfileRequest is the full profile for comprehensive advice. Every field
// is optional; see the prompt builder for the defaults.
type ProfileRequest struct {
	IncomePattern      Text          `json:"income_pattern"`
	IncomeRange        Text          `json:"income_range"`
	Occupation         Text          `json:"occupation"`
	MonthlyExpenses    Text          `json:"monthly_expenses"`
	CurrentSavings     Text          `json:"current_savings"`
	Goals              Text          `json:"goals"`
	FamilySize         Text          `json:"family_size"`
	Location           Text          `json:"location"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

type SpendingContext struct {
	Occupation Text `json:"occupation"`
	Income     Text `json:"income"`
}

type SpendingRequest struct {
	Transactions []Transaction   `json:"transactions"`
	UserContext  SpendingContext `json:"user_context"`
}

// UserProfile is the profile summary echoed back with comprehensive advice.
type UserProfile struct {
	Occupation    string    `json:"occupation"`
	IncomePattern string    `json:"income_pattern"`
	RiskLevel     RiskLevel `json:"risk_level"`
}
