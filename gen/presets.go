package gen

// Presets mirror the two demo datasets this generator grew out of. Every
// number in here is demo tuning, not a model of anything; override freely
// via YAML config.

// InsuranceConfig is the fraud-network demo: 50 agents, 200 policyholders,
// 1500 claims, with three dense fraud rings pinned to the first agents and
// policyholders and a uniform long tail behind them.
func InsuranceConfig() Config {
	cfg := Config{
		Seed: DEFAULT_SEED,
		Top: TopConfig{
			Count:      50,
			IDPrefix:   "AGENT_",
			NamePrefix: "Agent",
			Categories: []Category{
				{Label: "Senior", Weight: 1},
				{Label: "Junior", Weight: 1},
				{Label: "Manager", Weight: 1},
			},
			Statuses: []Category{{Label: "Active", Weight: 1}},
			Metric:   Range{Min: 0, Max: 1_000_000},
		},
		Mid: MidConfig{
			Count:      200,
			IDPrefix:   "PH_",
			NamePrefix: "Policyholder",
			Clusters: []Bound{
				{Upper: 40, ID: "ring-0"},
				{Upper: 80, ID: "ring-1"},
				{Upper: 120, ID: "ring-2"},
			},
			Income:          Range{Min: 25_000, Max: 75_000},
			BirthBase:       "1980-01-01",
			BirthStrideDays: 100,
			RiskProb:        0.10,
			RiskHighLabel:   "High Risk",
			RiskNormalLabel: "Standard",
		},
		Leaf: LeafConfig{
			Count:      1500,
			IDPrefix:   "CLAIM_",
			NamePrefix: "Claim",
			Clusters: []Bound{
				{Upper: 40, ID: "ring-0"},
				{Upper: 80, ID: "ring-1"},
				{Upper: 120, ID: "ring-2"},
			},
			Amount: RangeTiers{
				Tiers: []RangeTier{
					{Upper: 300, Min: 25_000, Max: 75_000},
					{Upper: 600, Min: 5_000, Max: 20_000},
				},
				Tail: Range{Min: 500, Max: 5_000},
			},
			Score: RangeTiers{
				Tiers: []RangeTier{
					{Upper: 300, Min: 60, Max: 100},
					{Upper: 600, Min: 20, Max: 50},
				},
				Tail: Range{Min: 0, Max: 20},
			},
			Status: StatusTiers{
				Tiers: []StatusTier{
					{Upper: 100, Categories: []Category{{Label: "Under Investigation", Weight: 1}}},
					{Upper: 250, Categories: []Category{{Label: "Pending Review", Weight: 1}}},
				},
				Tail: []Category{
					{Label: "Denied", Weight: 0.05},
					{Label: "Approved", Weight: 0.95},
				},
			},
			Types: []Category{
				{Label: "Auto", Weight: 1},
				{Label: "Home", Weight: 1},
				{Label: "Health", Weight: 1},
				{Label: "Liability", Weight: 1},
			},
			SameDayProb:    0.15,
			SharedAddrProb: 0.08,
			ProcessingMax:  30,
			BaseDate:       DEFAULT_BASE_DATE,
			DateWindowDays: 180,
			DescPrefix:     "Damage to ",
			DescDetails: map[string]string{
				"Auto":   "vehicle VIN ending in XXX",
				"Home":   "roof due to storm",
				"Health": "emergency room visit",
			},
			DescDefault: "property damage",
		},
	}
	cfg.applyDefaults()
	return cfg
}

// ProjectConfig is the project-management demo: 10 projects with ~400 tasks
// referencing them directly (no mid layer). Task delay rides the score
// field, estimated hours ride the amount field. The first two projects are
// the deliberately at-risk hubs.
func ProjectConfig() Config {
	cfg := Config{
		Seed: DEFAULT_SEED,
		Top: TopConfig{
			Count:      10,
			IDPrefix:   "PROJ_",
			IDStrategy: IDUUID,
			NamePrefix: "Project",
			Categories: []Category{
				{Label: "Infrastructure", Weight: 1},
				{Label: "Product", Weight: 2},
				{Label: "Research", Weight: 1},
			},
			Statuses: []Category{
				{Label: "On Track", Weight: 0.5},
				{Label: "At Risk", Weight: 0.2},
				{Label: "Delayed", Weight: 0.2},
				{Label: "Completed", Weight: 0.1},
			},
			Metric: Range{Min: 200_000, Max: 5_000_000},
		},
		Leaf: LeafConfig{
			Count:      400,
			IDPrefix:   "TASK_",
			IDStrategy: IDUUID,
			NamePrefix: "Task",
			Clusters: []Bound{
				{Upper: 60, ID: "at-risk-0"},
				{Upper: 120, ID: "at-risk-1"},
			},
			ClusterTail: "on-track",
			// Estimated hours.
			Amount: RangeTiers{
				Tiers: []RangeTier{
					{Upper: 60, Min: 40, Max: 160},
					{Upper: 120, Min: 40, Max: 160},
				},
				Tail: Range{Min: 4, Max: 80},
			},
			// Delay days: at-risk clusters slip hard, the tail barely.
			Score: RangeTiers{
				Tiers: []RangeTier{
					{Upper: 60, Min: 5, Max: 30},
					{Upper: 120, Min: 3, Max: 20},
				},
				Tail: Range{Min: 0, Max: 5},
			},
			Status: StatusTiers{
				Tiers: []StatusTier{
					{Upper: 120, Categories: []Category{
						{Label: "Blocked", Weight: 0.4},
						{Label: "In Progress", Weight: 0.5},
						{Label: "Not Started", Weight: 0.1},
					}},
				},
				Tail: []Category{
					{Label: "Not Started", Weight: 0.2},
					{Label: "In Progress", Weight: 0.4},
					{Label: "Blocked", Weight: 0.1},
					{Label: "Completed", Weight: 0.3},
				},
			},
			Types: []Category{
				{Label: "Developer", Weight: 1},
				{Label: "Analyst", Weight: 1},
				{Label: "PM", Weight: 1},
				{Label: "QA", Weight: 1},
				{Label: "DevOps", Weight: 1},
			},
			ProcessingMax:  45,
			BaseDate:       DEFAULT_BASE_DATE,
			DateWindowDays: 365,
			DescPrefix:     "Assigned to ",
			DescDetails: map[string]string{
				"Developer": "feature branch work",
				"QA":        "regression verification",
				"DevOps":    "pipeline maintenance",
			},
			DescDefault: "planning and coordination",
		},
	}
	cfg.applyDefaults()
	return cfg
}
