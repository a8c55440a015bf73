package wellbeing

// DomainScore is one row of the domain breakdown.
type DomainScore struct {
	Domain Domain `json:"domain"`
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Level  Level  `json:"level"`
	Fill   int    `json:"fill"`
}

// DomainBreakdown is the per-domain view of the latest test.
type DomainBreakdown struct {
	Physical  DomainScore `json:"physical"`
	Emotional DomainScore `json:"emotional"`
	Cognitive DomainScore `json:"cognitive"`
}

// Rows returns the breakdown in display order.
func (b DomainBreakdown) Rows() []DomainScore {
	return []DomainScore{b.Physical, b.Emotional, b.Cognitive}
}

// Navigation describes the displayed month and its neighbours.
type Navigation struct {
	Year       int   `json:"year"`
	MonthIndex int   `json:"month_index"`
	Prev       Month `json:"prev"`
	Next       Month `json:"next"`
}

// View is everything a rendering layer needs to draw the dashboard.
type View struct {
	EffectiveScore *int               `json:"effective_score"`
	Level          *Level             `json:"level"`
	LatestTest     *BurnoutTestResult `json:"latest_test"`
	Domains        *DomainBreakdown   `json:"domain_breakdown"`
	Recommendation Recommendation     `json:"recommendation"`
	Grid           MonthGrid          `json:"grid"`
	Percentages    Percentages        `json:"bucket_percentages"`
	Navigation     Navigation         `json:"navigation"`
}

// EffectiveScore resolves the score the dashboard reports. A persisted score
// always wins over the latest test total; with neither, ok is false.
func EffectiveScore(persisted *int, latest *BurnoutTestResult) (score int, ok bool) {
	if persisted != nil {
		return *persisted, true
	}
	if latest != nil {
		return latest.TotalScore, true
	}
	return 0, false
}

// Breakdown classifies each domain of a test result.
func Breakdown(test BurnoutTestResult) DomainBreakdown {
	row := func(d Domain, score int) DomainScore {
		return DomainScore{
			Domain: d,
			Score:  score,
			Max:    d.Max(),
			Level:  ClassifyDomain(d, score),
			Fill:   FillFor(d, score),
		}
	}
	return DomainBreakdown{
		Physical:  row(DomainPhysical, test.PhysicalScore),
		Emotional: row(DomainEmotional, test.EmotionalScore),
		Cognitive: row(DomainCognitive, test.CognitiveScore),
	}
}

// Compose combines the user's stored score, the latest test and the month
// grid into a View. Domain rows only appear when a test exists.
func Compose(persisted *int, latest *BurnoutTestResult, grid MonthGrid) View {
	current := Month{Year: grid.Year, Month: grid.Month}
	view := View{
		LatestTest:  latest,
		Grid:        grid,
		Percentages: grid.Percentages(),
		Navigation: Navigation{
			Year:       current.Year,
			MonthIndex: current.Index(),
			Prev:       current.Prev(),
			Next:       current.Next(),
		},
	}

	if score, ok := EffectiveScore(persisted, latest); ok {
		level := ClassifyTotal(score)
		view.EffectiveScore = &score
		view.Level = &level
	}
	if latest != nil {
		breakdown := Breakdown(*latest)
		view.Domains = &breakdown
	}
	view.Recommendation = RecommendationFor(view.Level)
	return view
}
