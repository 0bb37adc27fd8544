package scorecard

import "strings"

// TargetGames lists the game families kept in the final output. Matching is
// a case-insensitive substring test, so "Golden Tee Unplugged 2016 - Special
// Edition" matches "Golden Tee Unplugged". Supporting another game means
// adding it here.
var TargetGames = []string{
	"Golden Tee Unplugged",
	"Golden Tee Fore",
	"Power Putt",
}

// IsTargetGame reports whether name belongs to one of the target game
// families. An empty name never matches.
func IsTargetGame(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, game := range TargetGames {
		if strings.Contains(lower, strings.ToLower(game)) {
			return true
		}
	}
	return false
}
