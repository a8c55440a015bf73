package wellbeing

// Recommendation is static advice selected by burnout level.
type Recommendation struct {
	Headline string   `json:"headline"`
	Tips     []string `json:"tips,omitempty"`
}

var baseTips = []string{
	"plan short breaks during the day",
	"limit overtime and work at your own pace",
	"discuss workload and support options with your manager",
	"set aside time for rest, sleep and things you enjoy",
}

var recommendations = map[Level]Recommendation{
	LevelLow: {
		Headline: "Your burnout level is low. Keep the habits that work for you.",
		Tips:     baseTips[3:],
	},
	LevelMedium: {
		Headline: "Some strain is showing. Pay attention to areas scored high or very high.",
		Tips:     baseTips[:2],
	},
	LevelHigh: {
		Headline: "Your burnout level is high. In the coming days try to:",
		Tips:     baseTips,
	},
	LevelVeryHigh: {
		Headline: "Your burnout level is very high. Consider talking to your manager or HR soon, and try to:",
		Tips:     baseTips,
	},
}

// RecommendationFor looks up advice for level. A nil level asks the user to
// take the test first.
func RecommendationFor(level *Level) Recommendation {
	if level == nil {
		return Recommendation{
			Headline: "Take the burnout survey so we can prepare recommendations on managing stress and recovering energy.",
		}
	}
	if rec, ok := recommendations[*level]; ok {
		return rec
	}
	return Recommendation{}
}
