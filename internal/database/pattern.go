package database

import (
	"strings"

	"gorm.io/gorm"
)

// LikeEscape is the escape character used by ContainsPattern.
const LikeEscape = `\`

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// ContainsPattern builds a LIKE pattern matching values that contain s.
// Wildcards in s match literally; use it together with ESCAPE LikeEscape.
// s is lowercased the way the store's LOWER() does: sqlite folds ASCII
// letters only, other dialects fold all of Unicode.
func ContainsPattern(db *gorm.DB, s string) string {
	return "%" + likeEscaper.Replace(lowerFor(db.Dialector.Name(), s)) + "%"
}

func lowerFor(dialect, s string) string {
	if dialect != "sqlite" {
		return strings.ToLower(s)
	}
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
