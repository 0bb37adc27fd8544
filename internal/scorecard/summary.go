package scorecard

// Summarize derives the summary fields from a player's score row. The source
// site lays the row out as [hole scores..., OUT, IN, TOT, +/-, GSP], so the
// values are read by fixed offset from the tail:
//
//	total score  = scores[len-3], only when len > 3
//	score vs par = scores[len-2], only when len > 2
//	GSP          = scores[len-1], only when len > 0
//
// A row too short for an offset simply leaves that field nil. The offsets are
// never validated against the header row; if the site changes its trailing
// column layout these values shift silently.
func Summarize(scores []string) (total, vsPar, gsp *string) {
	n := len(scores)
	if n > 3 {
		total = &scores[n-3]
	}
	if n > 2 {
		vsPar = &scores[n-2]
	}
	if n > 0 {
		gsp = &scores[n-1]
	}
	return total, vsPar, gsp
}
