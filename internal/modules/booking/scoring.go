package booking

// Lead quality scoring. Each bucket is an independent data-driven table so
// unrecognized values contribute 0 instead of erroring; the bucket maximums
// sum to exactly 100 (35+25+20+10+10).

var budgetScores = map[string]int{
	"less_than_1k":  5,
	"1k_to_3k":      15,
	"3k_to_5k":      25,
	"5k_to_10k":     30,
	"more_than_10k": 35,
}

var urgencyScores = map[string]int{
	"not_urgent":   5,
	"within_month": 15,
	"within_week":  20,
	"urgent":       25,
}

var challengeScores = map[string]int{
	"no_traffic":      15,
	"low_conversions": 18,
	"high_cpa":        20,
	"scaling":         20,
	"competitor":      12,
	"new_project":     10,
	"team_training":   8,
	"audit":           15,
}

var companySizeScores = map[string]int{
	"freelancer": 2,
	"startup":    5,
	"small":      7,
	"medium":     10,
	"large":      10,
}

// LeadScore computes the 0-100 lead quality score. Pure function of the
// qualification data.
func LeadScore(data QualificationData) int {
	score := 0

	score += budgetScores[data.Budget]
	score += urgencyScores[data.Urgency]
	score += challengeScores[data.Challenge]

	if data.HasWebsite != nil && *data.HasWebsite {
		score += 5
	}
	if data.HasActiveCampaigns != nil && *data.HasActiveCampaigns {
		score += 5
	}

	score += companySizeScores[data.CompanySize]

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
