package models

// BudgetTier buckets the per-person trip budget.
type BudgetTier string

const (
	BudgetEconomy  BudgetTier = "economy"
	BudgetMidRange BudgetTier = "mid_range"
	BudgetLuxury   BudgetTier = "luxury"
)

// ItineraryRequest carries structured trip preferences for the planner
// collaborator. Interests must be non-empty and DurationDays at least 1;
// both are checked locally before any network call.
type ItineraryRequest struct {
	Interests    []string   `json:"interests"`
	DurationDays int        `json:"duration_days"`
	BudgetTier   BudgetTier `json:"budget_tier"`
	Notes        string     `json:"notes"`
}

// Activity categories the planner is asked to use.
const (
	ActivitySightseeing = "Sightseeing"
	ActivityFood        = "Food"
	ActivityTravel      = "Travel"
	ActivityStay        = "Stay"
)

type ItineraryActivity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ItineraryDay struct {
	Day        string              `json:"day"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
}
