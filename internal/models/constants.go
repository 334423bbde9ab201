package models

const (
	// DateLayout is the calendar-date format used for all booking dates.
	// Lexicographic order on this layout matches date order.
	DateLayout = "2006-01-02"

	// DefaultGuideFlatRate is the assumed cost of one guided tour. Guide
	// pricing is not itemized in the catalog, so this is a policy value.
	DefaultGuideFlatRate = 4000

	// DefaultGuideTourHours is the assumed duration of one guided tour.
	DefaultGuideTourHours = 8

	// HoursPerNight converts hotel nights into explored hours.
	HoursPerNight = 24

	// DefaultStateTTL is how long a pending booking intent survives in the
	// state repository, in seconds.
	DefaultStateTTL = 24 * 60 * 60

	// ActionStateKey keys the coordinator's single logical session state.
	ActionStateKey = "session"
)

// Coordinator steps. An absent state record is Idle.
const (
	StepAwaitingAuth    = "awaiting_auth"
	StepAwaitingDetails = "awaiting_details"
)

// View is an opaque navigation target.
type View string

const (
	ViewHome    View = "home"
	ViewHotels  View = "hotels"
	ViewGuides  View = "guides"
	ViewMaps    View = "maps"
	ViewMarkets View = "markets"
	ViewPlan    View = "plan"
	ViewProfile View = "profile"
)

// NoticeKind distinguishes notification flavors. The distinction is
// cosmetic only; nothing persisted depends on it.
type NoticeKind string

const (
	NoticeWelcome      NoticeKind = "welcome"
	NoticeResume       NoticeKind = "resume"
	NoticeRegistered   NoticeKind = "registered"
	NoticeConfirmation NoticeKind = "confirmation"
	NoticeCancelled    NoticeKind = "cancelled"
)

// Notice is a transient, auto-dismissing user notification.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}
