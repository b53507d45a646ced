package entity

type RiskLevel string

const (
	RiskHigh    RiskLevel = "High Risk"
	RiskMedium  RiskLevel = "Medium Risk"
	RiskLow     RiskLevel = "Low Risk"
	RiskUnknown RiskLevel = "Unknown"
)
