package types

// Tier identifies a suggestion priority bucket.
type Tier string

// Suggestion tiers, from most to least urgent.
const (
	TierCritical    Tier = "critical"
	TierImportant   Tier = "important"
	TierEnhancement Tier = "enhancement"
)

// Tiers lists all suggestion tiers in priority order.
var Tiers = []Tier{TierCritical, TierImportant, TierEnhancement}

// SuggestionSet holds prioritized improvement suggestions and the derived action plan.
type SuggestionSet struct {
	// ByPriority maps each tier to its deduplicated suggestion list.
	ByPriority map[Tier][]string `json:"suggestions_by_priority"`

	// ActionPlan holds one entry per non-empty tier, in order
	// critical, important, enhancement.
	ActionPlan []ActionItem `json:"action_plan"`

	// TotalSuggestions is the number of suggestions across all tiers.
	TotalSuggestions int `json:"total_suggestions"`

	// Error carries an upstream analysis error; when set the tiers are empty.
	Error string `json:"error,omitempty"`
}

// ActionItem is a single entry in the improvement action plan.
type ActionItem struct {
	Priority string   `json:"priority"`
	Timeline string   `json:"timeline"`
	Items    []string `json:"items"`
	Impact   string   `json:"impact"`
}
