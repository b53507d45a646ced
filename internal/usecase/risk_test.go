package usecase

import (
	"testing"
	"time"

	"moneymitra/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAssessRisk(t *testing.T) {
	set := entity.NewText
	cases := []struct {
		name     string
		savings  entity.Text
		expenses entity.Text
		want     entity.RiskLevel
	}{
		{"example", set("2000"), set("15000"), entity.RiskMedium},
		{"high", set("100"), set("15000"), entity.RiskHigh},
		{"boundary 0.1 is medium", set("1500"), set("15000"), entity.RiskMedium},
		{"boundary 0.3 is low", set("4500"), set("15000"), entity.RiskLow},
		{"low", set("30000"), set("15000"), entity.RiskLow},
		{"zero savings", set("0"), set("15000"), entity.RiskHigh},
		{"zero expenses", set("2000"), set("0"), entity.RiskUnknown},
		{"missing expenses", set("2000"), entity.Text{}, entity.RiskUnknown},
		{"missing savings", entity.Text{}, set("15000"), entity.RiskUnknown},
		{"non-numeric expenses", set("2000"), set("lots"), entity.RiskUnknown},
		{"non-numeric savings", set("none"), set("15000"), entity.RiskUnknown},
		{"underflowing expenses", set("2000"), set("1e-2000000000"), entity.RiskUnknown},
		{"overflowing expenses", set("2000"), set("1e400"), entity.RiskUnknown},
		{"underflowing savings", set("1e-2000000000"), set("15000"), entity.RiskHigh},
		{"overflowing savings", set("1e999999999"), set("15000"), entity.RiskUnknown},
		{"tiny ratio", set("1e-300"), set("1e300"), entity.RiskHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Now()
			assert.Equal(t, tc.want, AssessRisk(tc.savings, tc.expenses))
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}
