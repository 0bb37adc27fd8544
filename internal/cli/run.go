package cli

import (
	"context"
	"time"

	"github.com/tsandberg/gt-scorecards/internal/logger"
	"github.com/tsandberg/gt-scorecards/internal/scorecard"
	"github.com/tsandberg/gt-scorecards/internal/scraper"
)

// runStats counts pipeline progress for the end-of-run summary.
type runStats struct {
	Users   int
	Entries int
	Kept    int
	Skipped int
}

// collectScorecards runs the strictly sequential scrape: for each user id,
// fetch the listing page, then fetch and parse each entry one at a time. A
// failed listing fetch skips that user; a failed entry fetch skips that
// entry; neither aborts the run. Scorecards whose game falls outside the
// target family are dropped. userDelay is the politeness pause between
// distinct users.
func collectScorecards(ctx context.Context, s *scraper.Scraper, ids []string, userDelay time.Duration, log *logger.Logger) ([]*scorecard.Scorecard, runStats) {
	var stats runStats
	cards := make([]*scorecard.Scorecard, 0)

	for i, id := range ids {
		if i > 0 && userDelay > 0 {
			time.Sleep(userDelay)
		}
		stats.Users++

		entries, err := s.FetchUserListing(ctx, id)
		if err != nil {
			log.Error("listing fetch failed, skipping user", logger.Fields{"query_id": id}, err)
			continue
		}
		log.Debug("listing fetched", logger.Fields{"query_id": id, "entries": len(entries)})

		for _, ref := range entries {
			stats.Entries++

			card, err := s.FetchScorecard(ctx, ref)
			if err != nil {
				stats.Skipped++
				log.Error("scorecard fetch failed, skipping entry", logger.Fields{"url": ref.URL}, err)
				continue
			}
			if !scorecard.IsTargetGame(card.Game) {
				stats.Skipped++
				log.Debug("game outside target family, dropped", logger.Fields{"url": ref.URL, "game": card.Game})
				continue
			}

			card.ScrapedAt = time.Now().UTC()
			card.QueryUserID = id
			cards = append(cards, card)
			stats.Kept++
			log.Info("scorecard kept", logger.Fields{"query_id": id, "game": card.Game, "url": card.EntryURL})
		}
	}

	return cards, stats
}
