package concepts

// seedConcepts is the starter catalog applied on first run.
var seedConcepts = []Concept{
	{
		Title:       "Budget",
		Description: "A plan that tracks income and expenses so you spend less than you earn.",
		Category:    "Basics",
	},
	{
		Title:       "Emergency Fund",
		Description: "Savings covering 3-6 months of essential expenses, kept accessible for unexpected costs.",
		Category:    "Saving",
	},
	{
		Title:       "Compound Interest",
		Description: "Interest earned on both the original amount and previously accumulated interest.",
		Category:    "Investing",
	},
	{
		Title:       "Diversification",
		Description: "Spreading investments across different assets to reduce the impact of any single loss.",
		Category:    "Investing",
	},
	{
		Title:       "Index Fund",
		Description: "A low-cost fund that tracks a market index instead of picking individual stocks.",
		Category:    "Investing",
	},
	{
		Title:       "Inflation",
		Description: "The gradual rise in prices that reduces what a unit of money can buy over time.",
		Category:    "Economics",
	},
	{
		Title:       "401(k)",
		Description: "An employer-sponsored retirement account funded with pre-tax contributions, often with matching.",
		Category:    "Retirement",
	},
	{
		Title:       "Roth IRA",
		Description: "A retirement account funded with after-tax money whose qualified withdrawals are tax-free.",
		Category:    "Retirement",
	},
	{
		Title:       "Credit Score",
		Description: "A number summarizing how reliably you repay borrowed money, used by lenders to set terms.",
		Category:    "Credit",
	},
	{
		Title:       "Dollar-Cost Averaging",
		Description: "Investing a fixed amount on a regular schedule regardless of market price.",
		Category:    "Investing",
	},
	{
		Title:       "Asset Allocation",
		Description: "How a portfolio is divided among stock, bond, and cash investments based on goals and risk.",
		Category:    "Investing",
	},
	{
		Title:       "Liquidity",
		Description: "How quickly an asset can be converted to cash without losing value.",
		Category:    "Basics",
	},
}
