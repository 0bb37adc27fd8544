package scorecard

import "time"

// EntryReference is a scorecard-detail link discovered on a leaderboard
// listing page. GameHint is best-effort context from the surrounding row and
// is superseded by the game name read from the scorecard page itself.
type EntryReference struct {
	URL      string `json:"url"`
	GameHint string `json:"game_hint,omitempty"`
}

// Player is one score row from the scorecard table. Scores holds the raw
// cell texts in column order, aligned with Scorecard.HoleLabels[1:].
type Player struct {
	PlayerNumber string   `json:"player_number"`
	Scores       []string `json:"scores"`
}

// Scorecard is the normalized result of parsing one entry page. Optional
// fields are pointers so that a field absent from the page can be told apart
// from one that was present but empty.
type Scorecard struct {
	EntryURL  string  `json:"entry_url"`
	Game      string  `json:"game"`
	Username  *string `json:"username,omitempty"`
	Course    *string `json:"course,omitempty"`
	Date      *string `json:"date,omitempty"`
	CaptureID *string `json:"capture_id,omitempty"`

	// HoleLabels is the table's header row in column order. The first label
	// is the row-name column (e.g. "Hole"); Distances, Pars, and every
	// player's Scores align with HoleLabels[1:].
	HoleLabels []string `json:"hole_labels"`
	Distances  []string `json:"distances"`
	Pars       []string `json:"pars"`
	Players    []Player `json:"players"`

	// Summary fields taken from the tail of player 1's score row.
	TotalScore *string `json:"total_score,omitempty"`
	ScoreVsPar *string `json:"score_vs_par,omitempty"`
	GSP        *string `json:"gsp,omitempty"`

	YoutubeVideo *string `json:"youtube_video,omitempty"`
	YoutubeEmbed *string `json:"youtube_embed,omitempty"`

	// Assigned by the caller, not the parser.
	ScrapedAt   time.Time `json:"scraped_at"`
	QueryUserID string    `json:"query_user_id,omitempty"`
}

// New creates a Scorecard for the given entry URL with empty hole and score
// data. Parsers fill in whatever the page actually provides.
func New(entryURL string) *Scorecard {
	return &Scorecard{
		EntryURL:   entryURL,
		HoleLabels: []string{},
		Distances:  []string{},
		Pars:       []string{},
		Players:    []Player{},
	}
}
