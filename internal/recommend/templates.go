package recommend

import "maturity-insights-go/internal/types"

// band classifies a 0-100 dimension score into the template tier.
func band(score float64) string {
	switch {
	case score < 40:
		return "low"
	case score < 70:
		return "medium"
	}
	return "high"
}

// templates maps "<dimension>:<band>" to the recommendations issued
// when a dimension lands in that band.
func templates() map[string][]types.Recommendation {
	return map[string][]types.Recommendation{
		"individual:low": {
			{
				ID:       "ind-low-1",
				Category: "training",
				Priority: "critical",
				Title:    "Launch AI Literacy Program",
				Description: "Roll out a structured AI literacy curriculum covering core concepts, " +
					"everyday tools and safe usage for every employee.",
				Rationale:         "Individual adoption scores show most employees lack baseline AI fluency, which blocks every other initiative.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "individual", PotentialGain: 15, Timeframe: "3 months"},
				ActionItems: []types.ActionItem{
					{Action: "Select a curriculum provider and pilot cohort", Owner: "L&D Lead", Deadline: "Week 2"},
					{Action: "Schedule company-wide training waves", Owner: "L&D Lead", Deadline: "Week 4"},
					{Action: "Measure completion and tool adoption", Owner: "People Ops", Deadline: "Week 12"},
				},
				Resources: []types.Resource{
					{Type: "course", Title: "AI Fundamentals for Business", Description: "Self-paced introduction to practical AI usage"},
				},
				RelatedDimensions: []string{"individual"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "medium",
			},
			{
				ID:       "ind-low-2",
				Category: "culture",
				Priority: "high",
				Title:    "Address AI Anxiety",
				Description: "Run open forums and manager briefings that address job-security fears " +
					"and set honest expectations about how AI changes roles.",
				Rationale:         "Low individual scores often trace to fear rather than ability; anxiety suppresses voluntary adoption.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "individual", PotentialGain: 10, Timeframe: "2 months"},
				ActionItems: []types.ActionItem{
					{Action: "Host monthly AI open-forum sessions", Owner: "HR Director", Deadline: "Week 3"},
					{Action: "Publish a role-evolution FAQ", Owner: "HR Director", Deadline: "Week 6"},
				},
				RelatedDimensions: []string{"individual", "cultural"},
				EstimatedEffort:   "low",
				EstimatedCost:     "free",
			},
		},
		"individual:medium": {
			{
				ID:       "ind-med-1",
				Category: "training",
				Priority: "high",
				Title:    "Advanced AI Skills Development",
				Description: "Move beyond basics with role-specific workshops on prompt engineering, " +
					"workflow automation and tool chaining.",
				Rationale:         "Employees use AI casually but have not translated it into measurable productivity gains.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "individual", PotentialGain: 12, Timeframe: "4 months"},
				ActionItems: []types.ActionItem{
					{Action: "Map advanced skill needs per role family", Owner: "L&D Lead", Deadline: "Week 4"},
					{Action: "Run role-specific workshop series", Owner: "Team Leads", Deadline: "Week 10"},
				},
				RelatedDimensions: []string{"individual"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "medium",
			},
		},
		"individual:high": {
			{
				ID:       "ind-high-1",
				Category: "culture",
				Priority: "medium",
				Title:    "AI Innovation Champions Program",
				Description: "Formalize your strongest AI users as champions who mentor peers, " +
					"evaluate new tools and showcase wins.",
				Rationale:         "High individual fluency is an asset worth institutionalizing before enthusiasm plateaus.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "individual", PotentialGain: 8, Timeframe: "6 months"},
				ActionItems: []types.ActionItem{
					{Action: "Nominate champions from each department", Owner: "Department Heads", Deadline: "Week 4"},
					{Action: "Launch a monthly show-and-tell series", Owner: "Champions", Deadline: "Week 8"},
				},
				RelatedDimensions: []string{"individual", "cultural"},
				EstimatedEffort:   "low",
				EstimatedCost:     "low",
			},
		},
		"leadership:low": {
			{
				ID:       "lead-low-1",
				Category: "leadership",
				Priority: "critical",
				Title:    "Executive AI Immersion",
				Description: "Put the executive team through an intensive AI immersion: hands-on tool " +
					"sessions, competitor case studies and a strategy workshop.",
				Rationale:         "Leadership scores indicate executives lack the first-hand context to sponsor AI credibly.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "leadership", PotentialGain: 20, Timeframe: "2 months"},
				ActionItems: []types.ActionItem{
					{Action: "Book a two-day executive immersion session", Owner: "CEO Office", Deadline: "Week 3"},
					{Action: "Draft an AI ambition statement afterwards", Owner: "Executive Team", Deadline: "Week 6"},
				},
				Resources: []types.Resource{
					{Type: "service", Title: "Executive AI Briefing", Description: "Facilitated immersion tailored to the leadership team"},
				},
				RelatedDimensions: []string{"leadership"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "high",
			},
		},
		"leadership:medium": {
			{
				ID:       "lead-med-1",
				Category: "leadership",
				Priority: "high",
				Title:    "Visible AI Leadership",
				Description: "Have executives publicly use AI in their own work and narrate it: " +
					"all-hands demos, written updates, personal use cases.",
				Rationale:         "Teams adopt what leaders visibly practice; silent approval reads as indifference.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "leadership", PotentialGain: 15, Timeframe: "3 months"},
				ActionItems: []types.ActionItem{
					{Action: "Each executive shares one AI use case at all-hands", Owner: "Executive Team", Deadline: "Week 4"},
					{Action: "Add an AI progress section to monthly updates", Owner: "Chief of Staff", Deadline: "Week 6"},
				},
				RelatedDimensions: []string{"leadership", "cultural"},
				EstimatedEffort:   "low",
				EstimatedCost:     "free",
			},
		},
		"leadership:high": {
			{
				ID:       "lead-high-1",
				Category: "leadership",
				Priority: "medium",
				Title:    "AI Governance Board",
				Description: "Establish a cross-functional governance board that owns AI policy, " +
					"risk review and investment prioritization.",
				Rationale:         "Strong leadership engagement should graduate into durable governance before scale creates risk.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "leadership", PotentialGain: 10, Timeframe: "4 months"},
				ActionItems: []types.ActionItem{
					{Action: "Charter the board and appoint members", Owner: "CEO", Deadline: "Week 4"},
					{Action: "Publish the first AI usage policy", Owner: "Governance Board", Deadline: "Week 12"},
				},
				RelatedDimensions: []string{"leadership", "embedding"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "low",
			},
		},
		"cultural:low": {
			{
				ID:       "cult-low-1",
				Category: "culture",
				Priority: "critical",
				Title:    "Build Psychological Safety for AI",
				Description: "Make AI experimentation explicitly safe: no-blame pilots, celebrated " +
					"failures and protected time to learn.",
				Rationale:         "Cultural scores show employees hide or avoid AI use, which starves the organization of learning.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "cultural", PotentialGain: 18, Timeframe: "3 months"},
				ActionItems: []types.ActionItem{
					{Action: "Announce a no-blame AI experimentation policy", Owner: "CEO", Deadline: "Week 2"},
					{Action: "Add learning time to team capacity planning", Owner: "Department Heads", Deadline: "Week 6"},
				},
				RelatedDimensions: []string{"cultural"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "free",
			},
		},
		"cultural:medium": {
			{
				ID:       "cult-med-1",
				Category: "culture",
				Priority: "high",
				Title:    "AI Community of Practice",
				Description: "Create a standing community where practitioners across teams share " +
					"prompts, workflows and lessons learned.",
				Rationale:         "Pockets of AI enthusiasm exist but knowledge stays siloed within teams.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "cultural", PotentialGain: 12, Timeframe: "4 months"},
				ActionItems: []types.ActionItem{
					{Action: "Stand up a shared AI channel and playbook repo", Owner: "Community Lead", Deadline: "Week 3"},
					{Action: "Run biweekly practice-sharing sessions", Owner: "Community Lead", Deadline: "Week 6"},
				},
				RelatedDimensions: []string{"cultural", "individual"},
				EstimatedEffort:   "low",
				EstimatedCost:     "free",
			},
		},
		"cultural:high": {
			{
				ID:       "cult-high-1",
				Category: "culture",
				Priority: "medium",
				Title:    "AI Innovation Lab",
				Description: "Dedicate a small cross-functional lab to prototype AI products and " +
					"process redesigns ahead of the core business.",
				Rationale:         "A culture this receptive can support structured innovation beyond incremental tooling.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "cultural", PotentialGain: 10, Timeframe: "6 months"},
				ActionItems: []types.ActionItem{
					{Action: "Charter the lab with a quarterly prototype goal", Owner: "Innovation Lead", Deadline: "Week 6"},
					{Action: "Demo lab output at quarterly reviews", Owner: "Innovation Lead", Deadline: "Quarterly"},
				},
				RelatedDimensions: []string{"cultural", "embedding"},
				EstimatedEffort:   "high",
				EstimatedCost:     "high",
			},
		},
		"embedding:low": {
			{
				ID:       "emb-low-1",
				Category: "process",
				Priority: "critical",
				Title:    "AI Process Assessment",
				Description: "Audit core business processes to identify where AI can remove manual " +
					"effort, ranked by value and feasibility.",
				Rationale:         "Embedding scores show AI lives in individual workflows, not organizational processes.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "embedding", PotentialGain: 15, Timeframe: "2 months"},
				ActionItems: []types.ActionItem{
					{Action: "Inventory top 20 processes by effort spent", Owner: "Operations Lead", Deadline: "Week 4"},
					{Action: "Rank AI-automation candidates with owners", Owner: "Operations Lead", Deadline: "Week 8"},
				},
				RelatedDimensions: []string{"embedding"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "low",
			},
		},
		"embedding:medium": {
			{
				ID:       "emb-med-1",
				Category: "technology",
				Priority: "high",
				Title:    "AI Integration Roadmap",
				Description: "Sequence the integration of AI into core systems: CRM, content pipeline, " +
					"reporting, with owners and budgets per step.",
				Rationale:         "Point solutions exist but nothing connects them; integration is the next maturity step.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "embedding", PotentialGain: 18, Timeframe: "6 months"},
				ActionItems: []types.ActionItem{
					{Action: "Draft the integration sequence and budget", Owner: "CTO", Deadline: "Week 6"},
					{Action: "Deliver the first integrated workflow", Owner: "Engineering Lead", Deadline: "Week 20"},
				},
				RelatedDimensions: []string{"embedding", "velocity"},
				EstimatedEffort:   "high",
				EstimatedCost:     "medium",
			},
		},
		"embedding:high": {
			{
				ID:       "emb-high-1",
				Category: "technology",
				Priority: "medium",
				Title:    "AI-Native Processes",
				Description: "Redesign selected processes AI-first rather than augmenting the legacy " +
					"flow, starting where volume is highest.",
				Rationale:         "With AI already embedded, the remaining upside is in rethinking processes around it.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "embedding", PotentialGain: 12, Timeframe: "9 months"},
				ActionItems: []types.ActionItem{
					{Action: "Pick two high-volume processes for AI-first redesign", Owner: "Operations Lead", Deadline: "Week 8"},
					{Action: "Run old and new flows in parallel and compare", Owner: "Operations Lead", Deadline: "Week 24"},
				},
				RelatedDimensions: []string{"embedding"},
				EstimatedEffort:   "high",
				EstimatedCost:     "high",
			},
		},
		"velocity:low": {
			{
				ID:       "vel-low-1",
				Category: "process",
				Priority: "high",
				Title:    "Streamline AI Approval Process",
				Description: "Replace ad hoc tool approvals with a lightweight pre-approved list and " +
					"a fast-track review for everything else.",
				Rationale:         "Velocity scores show good ideas die waiting for permission.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "velocity", PotentialGain: 20, Timeframe: "2 months"},
				ActionItems: []types.ActionItem{
					{Action: "Publish a pre-approved AI tool list", Owner: "IT Lead", Deadline: "Week 3"},
					{Action: "Set a five-day SLA for new tool review", Owner: "IT Lead", Deadline: "Week 5"},
				},
				RelatedDimensions: []string{"velocity"},
				EstimatedEffort:   "low",
				EstimatedCost:     "free",
			},
		},
		"velocity:medium": {
			{
				ID:       "vel-med-1",
				Category: "technology",
				Priority: "high",
				Title:    "AI Sandbox Environment",
				Description: "Provide a sanctioned sandbox with approved models and anonymized data " +
					"so teams can prototype without risk reviews per experiment.",
				Rationale:         "Experimentation happens but each attempt re-litigates security and data questions.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "velocity", PotentialGain: 15, Timeframe: "3 months"},
				ActionItems: []types.ActionItem{
					{Action: "Provision the sandbox with approved models", Owner: "Engineering Lead", Deadline: "Week 6"},
					{Action: "Seed it with anonymized sample datasets", Owner: "Data Lead", Deadline: "Week 8"},
				},
				RelatedDimensions: []string{"velocity", "embedding"},
				EstimatedEffort:   "medium",
				EstimatedCost:     "medium",
			},
		},
		"velocity:high": {
			{
				ID:       "vel-high-1",
				Category: "measurement",
				Priority: "medium",
				Title:    "AI Acceleration Metrics",
				Description: "Instrument the idea-to-production pipeline and publish cycle-time and " +
					"adoption metrics per quarter.",
				Rationale:         "High velocity without measurement cannot be defended at budget time or tuned further.",
				ExpectedImpact:    types.ExpectedImpact{Dimension: "velocity", PotentialGain: 8, Timeframe: "4 months"},
				ActionItems: []types.ActionItem{
					{Action: "Define cycle-time and adoption metrics", Owner: "Operations Lead", Deadline: "Week 4"},
					{Action: "Publish the first quarterly metrics report", Owner: "Operations Lead", Deadline: "Week 14"},
				},
				RelatedDimensions: []string{"velocity"},
				EstimatedEffort:   "low",
				EstimatedCost:     "low",
			},
		},
	}
}
