package domain

import "fmt"

// CourtCategory partitions courts into the two fixed kinds the club runs
type CourtCategory string

const (
	CategoryRegular CourtCategory = "regular" // tennis courts
	CategoryBeach   CourtCategory = "beach"   // sand courts
)

// Court id ranges. The category of a court is derived from its id,
// it is never stored separately.
const (
	FirstRegularCourtID = 1
	LastRegularCourtID  = 2
	FirstBeachCourtID   = 3
	LastBeachCourtID    = 4
)

// KnownCourt returns true if the id belongs to one of the club's courts
func KnownCourt(courtID int) bool {
	return courtID >= FirstRegularCourtID && courtID <= LastBeachCourtID
}

// CategoryForCourt derives the category from the court id.
// Calling it with an unknown id is a programming error caught by KnownCourt
// during validation; it falls back to regular.
func CategoryForCourt(courtID int) CourtCategory {
	if courtID >= FirstBeachCourtID {
		return CategoryBeach
	}
	return CategoryRegular
}

// CourtName returns the display name used by the club ("Quadra 1", "Areia 1")
func CourtName(courtID int) string {
	if CategoryForCourt(courtID) == CategoryBeach {
		return fmt.Sprintf("Areia %d", courtID-LastRegularCourtID)
	}
	return fmt.Sprintf("Quadra %d", courtID)
}
