package domain

// GameType classifies what a reservation slot is used for
type GameType string

const (
	GameNormal          GameType = "normal"
	GamePyramid         GameType = "pyramid" // ranked ladder challenge
	GameClass           GameType = "class"   // lesson given by a teacher
	GameBeachTennis     GameType = "beach_tennis"
	GameFootvolley      GameType = "footvolley"
	GameBeachVolleyball GameType = "beach_volleyball"
	GameInterdiction    GameType = "interdiction" // administrative court closure
)

// BeachGameTypes lists the sub-sports played on sand courts
var BeachGameTypes = []GameType{GameBeachTennis, GameFootvolley, GameBeachVolleyball}

// IsBeachSport returns true for the three sand sub-sports
func (g GameType) IsBeachSport() bool {
	return g == GameBeachTennis || g == GameFootvolley || g == GameBeachVolleyball
}

// IsAdversarial returns true when the game type requires an opponent.
// Only regular-court normal and pyramid games have an adversary role.
func (g GameType) IsAdversarial() bool {
	return g == GameNormal || g == GamePyramid
}

// CountsTowardQuota returns false for classifications exempt from quota
// accounting: lessons and interdictions never consume a member's caps.
func (g GameType) CountsTowardQuota() bool {
	return g != GameClass && g != GameInterdiction
}

// AllowedOnCategory returns true if the game type is legal on the court category
func (g GameType) AllowedOnCategory(category CourtCategory) bool {
	switch g {
	case GameNormal, GamePyramid:
		return category == CategoryRegular
	case GameBeachTennis, GameFootvolley, GameBeachVolleyball:
		return category == CategoryBeach
	case GameClass, GameInterdiction:
		return true
	default:
		return false
	}
}

// Valid returns true for a known classification
func (g GameType) Valid() bool {
	switch g {
	case GameNormal, GamePyramid, GameClass,
		GameBeachTennis, GameFootvolley, GameBeachVolleyball,
		GameInterdiction:
		return true
	default:
		return false
	}
}
