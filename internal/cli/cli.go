package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tsandberg/gt-scorecards/internal/export"
	"github.com/tsandberg/gt-scorecards/internal/logger"
	"github.com/tsandberg/gt-scorecards/internal/scraper"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagIDs          string
	flagIDsFile      string
	flagBaseURL      string
	flagCSVOut       string
	flagJSONOut      string
	flagRequestDelay time.Duration
	flagUserDelay    time.Duration
	flagRetries      uint64
	flagTimeout      time.Duration
	flagVerbose      bool
)

// NewRootCmd creates the root command for gt-scorecards.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gt-scorecards",
		Short: "Export Golden Tee scorecards from the leaderboard site",
		Long: `gt-scorecards scrapes the arcade leaderboard site for the scorecards of
one or more users, keeps the Golden Tee Unplugged, Golden Tee Fore and
Power Putt entries, and writes them out as flattened CSV and structured
JSON. Fetching is strictly sequential with politeness pauses between
requests and between users.`,
		SilenceUsage: true,
		RunE:         runScrape,
	}

	cmd.Flags().StringVar(&flagIDs, "ids", "", "Comma-separated user query ids")
	cmd.Flags().StringVar(&flagIDsFile, "ids-file", "", "File with one user query id per line (# comments and blank lines skipped)")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", scraper.DefaultBaseURL, "Leaderboard site origin")
	cmd.Flags().StringVar(&flagCSVOut, "csv", "scorecards.csv", "CSV output path (empty to skip)")
	cmd.Flags().StringVar(&flagJSONOut, "json", "scorecards.json", "JSON output path (empty to skip)")
	cmd.Flags().DurationVar(&flagRequestDelay, "request-delay", scraper.DefaultRequestDelay, "Minimum pause between page fetches")
	cmd.Flags().DurationVar(&flagUserDelay, "user-delay", 10*time.Second, "Pause between distinct users")
	cmd.Flags().Uint64Var(&flagRetries, "retries", scraper.DefaultMaxRetries, "Retries per fetch before the page is skipped")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", scraper.Timeout, "HTTP timeout per request")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	ids, err := resolveIDs(flagIDs, flagIDsFile)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no user ids given: use --ids or --ids-file")
	}

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)

	fetcher := scraper.NewFetcher(flagTimeout, flagRequestDelay, flagRetries)
	s := scraper.New(fetcher, flagBaseURL)

	log.Info("starting scrape", logger.Fields{
		"users":    len(ids),
		"base_url": s.BaseURL(),
	})

	cards, stats := collectScorecards(cmd.Context(), s, ids, flagUserDelay, log)

	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scorecards found.")
	} else {
		if flagCSVOut != "" {
			if err := export.WriteCSVFile(flagCSVOut, cards); err != nil {
				return fmt.Errorf("writing CSV: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d scorecards to %s\n", len(cards), flagCSVOut)
		}
		if flagJSONOut != "" {
			if err := export.WriteJSONFile(flagJSONOut, cards); err != nil {
				return fmt.Errorf("writing JSON: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d scorecards to %s\n", len(cards), flagJSONOut)
		}
	}

	log.Info("scrape complete", logger.Fields{
		"users":   stats.Users,
		"entries": stats.Entries,
		"kept":    stats.Kept,
		"skipped": stats.Skipped,
	})
	return nil
}

// Execute runs the root command and exits the process on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
