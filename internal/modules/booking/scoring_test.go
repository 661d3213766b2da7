package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestLeadScore_MaxBuckets(t *testing.T) {
	data := QualificationData{
		Budget:             "more_than_10k",
		Urgency:            "urgent",
		Challenge:          "scaling",
		HasWebsite:         boolPtr(true),
		HasActiveCampaigns: boolPtr(true),
		CompanySize:        "large",
	}

	assert.Equal(t, 100, LeadScore(data))
}

func TestLeadScore_MinimalLead(t *testing.T) {
	data := QualificationData{
		Budget:    "less_than_1k",
		Urgency:   "not_urgent",
		Challenge: "unknown_value",
	}

	assert.Equal(t, 10, LeadScore(data))
}

func TestLeadScore_UnrecognizedValuesContributeZero(t *testing.T) {
	data := QualificationData{
		Budget:      "what",
		Urgency:     "eventually",
		Challenge:   "everything",
		CompanySize: "galactic",
	}

	assert.Equal(t, 0, LeadScore(data))
}

func TestLeadScore_Deterministic(t *testing.T) {
	data := QualificationData{
		Budget:             "3k_to_5k",
		Urgency:            "within_week",
		Challenge:          "high_cpa",
		HasWebsite:         boolPtr(true),
		HasActiveCampaigns: boolPtr(false),
		CompanySize:        "small",
	}

	first := LeadScore(data)
	second := LeadScore(data)

	assert.Equal(t, first, second)
	assert.Equal(t, 25+20+20+5+0+7, first)
}

func TestLeadScore_BucketMaximumsSumToHundred(t *testing.T) {
	maxOf := func(m map[string]int) int {
		max := 0
		for _, v := range m {
			if v > max {
				max = v
			}
		}
		return max
	}

	total := maxOf(budgetScores) + maxOf(urgencyScores) + maxOf(challengeScores) + 10 + maxOf(companySizeScores)
	assert.Equal(t, 100, total)
}

func TestLeadScore_AlwaysInRange(t *testing.T) {
	budgets := []string{"", "less_than_1k", "more_than_10k", "junk"}
	urgencies := []string{"", "urgent", "junk"}
	challenges := []string{"", "scaling", "junk"}
	sizes := []string{"", "large", "junk"}

	for _, b := range budgets {
		for _, u := range urgencies {
			for _, ch := range challenges {
				for _, sz := range sizes {
					score := LeadScore(QualificationData{
						Budget:             b,
						Urgency:            u,
						Challenge:          ch,
						CompanySize:        sz,
						HasWebsite:         boolPtr(true),
						HasActiveCampaigns: boolPtr(true),
					})
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, 100)
				}
			}
		}
	}
}
