package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gameshub/domain"
)

var feedsCmd = &cobra.Command{
	Use:     "feeds",
	Aliases: []string{"feed"},
	Short:   "Inspect and import RSS feeds",
}

var feedsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the feeds of a project",
	Args:    cobra.NoArgs,
	RunE:    runFeedsList,
}

var feedsImportCmd = &cobra.Command{
	Use:   "import <feedID>",
	Short: "Run one import of a feed now",
	Long: `Run one import of a feed in-process, the same way the admin API's
import endpoint does. Disabled feeds are imported too.`,
	Args: cobra.ExactArgs(1),
	RunE: runFeedsImport,
}

func init() {
	feedsListCmd.Flags().String("project", "", "project ID (required)")
	feedsListCmd.Flags().Bool("json", false, "output as JSON")
	_ = feedsListCmd.MarkFlagRequired("project")

	feedsCmd.AddCommand(feedsListCmd, feedsImportCmd)
	rootCmd.AddCommand(feedsCmd)
}

func runFeedsList(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("project")
	projectID, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("--project must be a UUID: %w", err)
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	var feeds []*domain.Feed
	for page := 1; ; page++ {
		result, err := s.container.FeedUsecase.ListFeeds(ctx, projectID, domain.NewPage(page, domain.MaxPerPage))
		if err != nil {
			return err
		}
		feeds = append(feeds, result.Items...)
		if len(result.Items) == 0 || int64(len(feeds)) >= result.Total {
			break
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), feeds)
	}
	return renderTable(cmd.OutOrStdout(), []string{"ID", "TITLE", "INTERVAL", "STATUS", "LAST SUCCESS", "URL"}, feedRows(feeds))
}

func feedRows(feeds []*domain.Feed) [][]string {
	rows := make([][]string, 0, len(feeds))
	for _, f := range feeds {
		lastSuccess := "never"
		if f.LastSuccessAt != nil {
			lastSuccess = f.LastSuccessAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			f.ID.String(),
			f.Title,
			strconv.Itoa(f.IntervalMinutes) + "m",
			feedStatus(f.Enabled, f.ConsecutiveFailures),
			lastSuccess,
			f.URL,
		})
	}
	return rows
}

func runFeedsImport(cmd *cobra.Command, args []string) error {
	feedID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("feedID must be a UUID: %w", err)
	}

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.container.FeedImportUsecase.ImportFeed(ctx, feedID, domain.TriggerManual)
	if err != nil {
		if result != nil && result.Disabled {
			fmt.Fprintln(cmd.ErrOrStderr(), errColor.Sprint("feed disabled after repeated failures"))
		}
		return err
	}
	success("fetched %d items: %d new, %d skipped, %d game jobs queued in %s",
		result.Fetched, result.New, result.Skipped, result.JobsQueued, result.Duration.Round(time.Millisecond))
	return nil
}
