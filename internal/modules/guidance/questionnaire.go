package guidance

// QuestionOption is one answer to a questionnaire question. Value is the
// machine key submitted back when asking for recommendations.
type QuestionOption struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Question is one questionnaire question.
type Question struct {
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}

// Questions returns the quick questionnaire.
func Questions() []Question {
	return questionnaireQuestions
}

var questionnaireQuestions = []Question{
	{
		Text: "What is your primary financial goal?",
		Options: []QuestionOption{
			{Text: "Saving for retirement", Value: "retirement"},
			{Text: "Building an emergency fund", Value: "emergency"},
			{Text: "Paying off debt", Value: "debt"},
			{Text: "Investing for growth", Value: "investing"},
		},
	},
	{
		Text: "How much do you currently have in savings?",
		Options: []QuestionOption{
			{Text: "Less than $1,000", Value: "low"},
			{Text: "$1,000 - $5,000", Value: "medium"},
			{Text: "$5,000 - $10,000", Value: "high"},
			{Text: "More than $10,000", Value: "veryhigh"},
		},
	},
	{
		Text: "What is your risk tolerance for investments?",
		Options: []QuestionOption{
			{Text: "Conservative - I prefer stability", Value: "conservative"},
			{Text: "Moderate - Balanced approach", Value: "moderate"},
			{Text: "Aggressive - I can handle volatility", Value: "aggressive"},
		},
	},
	{
		Text: "Do you have any high-interest debt?",
		Options: []QuestionOption{
			{Text: "Yes, significant debt (>$5,000)", Value: "high"},
			{Text: "Yes, some debt (<$5,000)", Value: "some"},
			{Text: "No debt", Value: "none"},
		},
	},
	{
		Text: "What is your investment timeline?",
		Options: []QuestionOption{
			{Text: "Short-term (0-3 years)", Value: "short"},
			{Text: "Medium-term (3-10 years)", Value: "medium"},
			{Text: "Long-term (10+ years)", Value: "long"},
		},
	},
}

// Answers holds questionnaire responses keyed by question subject.
type Answers struct {
	Goal     string `json:"goal"`
	Savings  string `json:"savings"`
	Risk     string `json:"risk"`
	Debt     string `json:"debt"`
	Timeline string `json:"timeline"`
}

// Recommendation is one tailored suggestion derived from the answers.
type Recommendation struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Recommendations maps questionnaire answers to concrete suggestions.
// Unrecognized or empty answer values simply contribute nothing.
func Recommendations(answers Answers) []Recommendation {
	recs := make([]Recommendation, 0, 3)

	switch answers.Goal {
	case "emergency":
		recs = append(recs, Recommendation{
			Label: "Priority",
			Text:  "Build an emergency fund of 3-6 months of expenses",
		})
	case "retirement":
		recs = append(recs, Recommendation{
			Label: "Priority",
			Text:  "Maximize retirement contributions (401k, IRA)",
		})
	}

	if answers.Debt == "high" || answers.Debt == "some" {
		recs = append(recs, Recommendation{
			Label: "Important",
			Text:  "Focus on paying off high-interest debt first",
		})
	}

	switch answers.Risk {
	case "aggressive":
		recs = append(recs, Recommendation{
			Label: "Investment Style",
			Text:  "Consider growth-focused stock portfolios",
		})
	case "conservative":
		recs = append(recs, Recommendation{
			Label: "Investment Style",
			Text:  "Focus on bonds and stable dividend stocks",
		})
	}

	return recs
}
