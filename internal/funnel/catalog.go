package funnel

// Question is one quiz step with its fixed answer options.
type Question struct {
	Text    string
	Options []string
}

// Has reports whether answer is one of the question's options.
func (q Question) Has(answer string) bool {
	for _, opt := range q.Options {
		if opt == answer {
			return true
		}
	}
	return false
}

// Questions is the lead-qualification quiz, in order.
var Questions = []Question{
	{
		Text: "What is your main goal?",
		Options: []string{
			"Lose weight in a healthy way",
			"Manage type 2 diabetes",
			"Improve eating habits",
			"Follow a medical treatment",
		},
	},
	{
		Text: "Are you already using a weight management medication?",
		Options: []string{
			"Yes, Mounjaro",
			"Yes, another medication",
			"No, but I'm interested",
			"No, tracking only",
		},
	},
	{
		Text: "How do you prefer to follow your progress?",
		Options: []string{
			"Detailed charts and statistics",
			"Simple daily logging",
			"Reminders and notifications",
			"All of the above",
		},
	},
}

// PlanDetails describes one plan card on the plan selection screen.
// Prices are display strings; checkout is a stub.
type PlanDetails struct {
	ID      Plan
	Name    string
	Price   string
	Period  string
	Total   string
	Savings string
}

// PlanCatalog returns the plan cards with the configured display prices.
func PlanCatalog(monthlyPrice, annualPrice string) []PlanDetails {
	return []PlanDetails{
		{
			ID:     PlanMonthly,
			Name:   "Monthly Plan",
			Price:  monthlyPrice,
			Period: "/month",
		},
		{
			ID:      PlanAnnual,
			Name:    "Annual Plan",
			Price:   annualPrice,
			Period:  "/month",
			Total:   "R$ 358,80/year",
			Savings: "Save R$ 240/year",
		},
	}
}

// PlanByID returns the catalog entry for plan, or false when unknown.
func PlanByID(catalog []PlanDetails, plan Plan) (PlanDetails, bool) {
	for _, details := range catalog {
		if details.ID == plan {
			return details, true
		}
	}
	return PlanDetails{}, false
}
