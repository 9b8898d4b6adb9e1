// Package guidance walks users through a step-by-step financial decision
// flowchart and a short questionnaire, producing tailored advice.
package guidance

// Option is one choice offered at a flowchart step. Exactly one of Next
// and AdviceKey is set: Next points at another step, AdviceKey at a
// terminal advice template.
type Option struct {
	Text      string `json:"text"`
	Next      int    `json:"next,omitempty"`
	AdviceKey string `json:"advice,omitempty"`
}

// Step is one decision point in the flowchart.
type Step struct {
	Step        int      `json:"step"`
	Question    string   `json:"question"`
	Explanation string   `json:"explanation"`
	Options     []Option `json:"options"`
}

// AdviceSection is one heading with its bullet points.
type AdviceSection struct {
	Heading string   `json:"heading"`
	Points  []string `json:"points"`
}

// Advice is a terminal recommendation reached from the flowchart.
type Advice struct {
	Title    string          `json:"title"`
	Sections []AdviceSection `json:"sections"`
	NextStep string          `json:"next_step"`
}

// flowchartSteps is the decision tree, ordered by priority: budget first,
// then expensive debt, safety net, retirement, cheaper debt, tax shelter,
// and finally open-market investing.
var flowchartSteps = []Step{
	{
		Step:        1,
		Question:    "Step 1: Do you have a budget?",
		Explanation: "A budget helps you track income and expenses, ensuring you're spending less than you earn.",
		Options: []Option{
			{Text: "Yes, I have a budget", Next: 2},
			{Text: "No, I don't have a budget", AdviceKey: "createBudget"},
		},
	},
	{
		Step:        2,
		Question:    "Step 2: Do you have high-interest debt?",
		Explanation: "High-interest debt (credit cards, payday loans) should be prioritized as it grows quickly.",
		Options: []Option{
			{Text: "Yes, I have high-interest debt", AdviceKey: "payOffDebt"},
			{Text: "No high-interest debt", Next: 3},
		},
	},
	{
		Step:        3,
		Question:    "Step 3: Do you have an emergency fund?",
		Explanation: "An emergency fund (3-6 months of expenses) protects you from unexpected costs.",
		Options: []Option{
			{Text: "Yes, I have 3-6 months saved", Next: 4},
			{Text: "No, or less than 3 months", AdviceKey: "buildEmergencyFund"},
		},
	},
	{
		Step:        4,
		Question:    "Step 4: Are you contributing to retirement?",
		Explanation: "Taking advantage of employer matching and tax-advantaged accounts is crucial for long-term wealth.",
		Options: []Option{
			{Text: "Yes, I'm contributing to retirement", Next: 5},
			{Text: "No retirement contributions yet", AdviceKey: "startRetirement"},
		},
	},
	{
		Step:        5,
		Question:    "Step 5: Do you have any moderate-interest debt?",
		Explanation: "Debt with 4-7% interest (student loans, car loans) should be evaluated against investment returns.",
		Options: []Option{
			{Text: "Yes, I have moderate debt", AdviceKey: "moderateDebt"},
			{Text: "No moderate debt", Next: 6},
		},
	},
	{
		Step:        6,
		Question:    "Step 6: Are you maximizing tax-advantaged accounts?",
		Explanation: "401(k), IRA, HSA contributions reduce taxable income and grow tax-free.",
		Options: []Option{
			{Text: "Yes, I'm maxing them out", Next: 7},
			{Text: "No, I can contribute more", AdviceKey: "maxTaxAdvantaged"},
		},
	},
	{
		Step:        7,
		Question:    "Step 7: Ready to invest for long-term growth?",
		Explanation: "With basics covered, you can focus on building wealth through diversified investments.",
		Options: []Option{
			{Text: "Yes, tell me about investing", AdviceKey: "startInvesting"},
			{Text: "I want to review my plan", AdviceKey: "comprehensiveReview"},
		},
	},
}

// adviceTemplates maps every terminal AdviceKey to its full recommendation.
var adviceTemplates = map[string]Advice{
	"createBudget": {
		Title: "Priority: Create a Budget",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"A budget is the foundation of financial health",
					"Helps you understand where your money goes",
					"Ensures you spend less than you earn",
					"Identifies areas to cut back and save more",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"Track all income sources (salary, side hustles, etc.)",
					"List all expenses for the past 3 months",
					"Categorize expenses: needs, wants, savings",
					"Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings",
					"Use budgeting apps like Mint or YNAB to automate tracking",
				},
			},
		},
		NextStep: "Once you have a budget and are spending less than you earn, move to Step 2: Tackling high-interest debt.",
	},
	"payOffDebt": {
		Title: "Priority: Eliminate High-Interest Debt",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"Credit card debt often has 15-25% interest rates",
					"This interest compounds quickly, making it harder to escape",
					"Paying this off gives you a guaranteed 'return' equal to the interest rate",
					"Frees up cash flow for other financial goals",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"List all debts with interest rates",
					"Pay minimum on all debts to avoid penalties",
					"Put extra money toward highest-interest debt first (avalanche method)",
					"Consider balance transfer to 0% APR card if you have good credit",
					"Avoid taking on new high-interest debt",
				},
			},
		},
		NextStep: "After eliminating high-interest debt, build your emergency fund (Step 3).",
	},
	"buildEmergencyFund": {
		Title: "Priority: Build Emergency Fund",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"Life is unpredictable: job loss, medical bills, car repairs",
					"Without savings, emergencies lead to debt",
					"Provides peace of mind and financial stability",
					"Prevents you from derailing other financial goals",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"Start with $1,000 as a starter emergency fund",
					"Then build to 3-6 months of essential expenses",
					"Keep it in a high-yield savings account (easy access, earns interest)",
					"Automate monthly transfers to this account",
					"Only use for true emergencies, then replenish",
				},
			},
		},
		NextStep: "With an emergency fund in place, start contributing to retirement (Step 4).",
	},
	"startRetirement": {
		Title: "Priority: Start Retirement Contributions",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"Time is your greatest asset in investing",
					"Compound growth means money invested early grows exponentially",
					"Employer matching is free money (100% instant return)",
					"Tax advantages reduce your current tax bill",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"Contribute at least enough to get full employer match (if offered)",
					"Open a 401(k) through your employer",
					"If no 401(k), open a Roth IRA or Traditional IRA",
					"Start with at least 10-15% of gross income",
					"Invest in low-cost index funds (target-date funds are great for beginners)",
				},
			},
		},
		NextStep: "Once you're contributing to retirement, evaluate moderate-interest debt (Step 5).",
	},
	"moderateDebt": {
		Title: "Evaluate Moderate-Interest Debt",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"Debt at 4-7% interest is a gray area",
					"Stock market averages 7-10% returns historically",
					"It's often better to invest than pay off this debt aggressively",
					"Balance paying down debt with building wealth",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"Continue making regular payments on these loans",
					"Don't rush to pay them off early",
					"Focus on investing extra money in retirement accounts",
					"If debt causes stress, split extra money 50/50 between debt and investing",
					"Refinance if you can get a lower rate",
				},
			},
		},
		NextStep: "Continue to Step 6: Maximizing tax-advantaged accounts.",
	},
	"maxTaxAdvantaged": {
		Title: "Maximize Tax-Advantaged Accounts",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"Contributions to 401(k) and IRA reduce taxable income",
					"Money grows tax-free until retirement",
					"HSA is triple tax-advantaged (tax-free in, growth, and out)",
					"Maximizes long-term wealth building",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"Max out 401(k) ($23,000/year for 2024)",
					"Max out IRA ($7,000/year for 2024)",
					"If you have an HSA, contribute the max ($4,150 individual, $8,300 family)",
					"Consider backdoor Roth IRA if income is too high",
					"Invest contributions in diversified index funds",
				},
			},
		},
		NextStep: "Once tax-advantaged accounts are maxed, invest in taxable accounts (Step 7).",
	},
	"startInvesting": {
		Title: "Build Wealth Through Investing",
		Sections: []AdviceSection{
			{
				Heading: "Why This Matters",
				Points: []string{
					"You've covered the basics - now focus on wealth building",
					"Investing in stocks historically returns 7-10% annually",
					"Diversification protects against risk",
					"Time in the market beats timing the market",
				},
			},
			{
				Heading: "Action Steps",
				Points: []string{
					"Open a taxable brokerage account (Vanguard, Fidelity, Schwab)",
					"Invest in low-cost index funds (S&P 500, total market)",
					"Consider 3-fund portfolio: US stocks, international stocks, bonds",
					"Set up automatic monthly investments (dollar-cost averaging)",
					"Don't panic during market downturns - stay the course",
					"Review portfolio annually, rebalance as needed",
				},
			},
		},
		NextStep: "You're on the path to financial independence! Consider exploring real estate, side businesses, or other advanced strategies.",
	},
	"comprehensiveReview": {
		Title: "Comprehensive Financial Health Check",
		Sections: []AdviceSection{
			{
				Heading: "You're Doing Great!",
				Points: []string{
					"You have a budget and live below your means",
					"No high-interest debt",
					"Emergency fund is fully funded",
					"Contributing to retirement accounts",
					"Managing moderate debt wisely",
					"Maximizing tax-advantaged accounts",
				},
			},
			{
				Heading: "Areas to Consider",
				Points: []string{
					"Increase retirement contributions if possible",
					"Explore taxable investing for additional growth",
					"Consider life insurance and estate planning",
					"Optimize tax strategy with a professional",
					"Explore real estate or alternative investments",
					"Plan for major life expenses (home, education, etc.)",
				},
			},
		},
		NextStep: "Keep reviewing and adjusting your plan annually. You're well on your way to financial freedom!",
	},
}
