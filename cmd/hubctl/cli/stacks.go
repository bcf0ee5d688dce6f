package cli

import (
	"context"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"gameshub/config"
	"gameshub/driver/stack_registry"
)

const stackPingTimeout = 5 * time.Second

var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Inspect service stacks",
}

var stacksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured service stacks",
	Long: `List the default stack and every stack declared in the stacks file.

Examples:
  hubctl stacks list                 # Names, search hosts and index prefixes
  hubctl stacks list --ping          # Also check Redis and Meilisearch
  hubctl stacks list --json`,
	Args: cobra.NoArgs,
	RunE: runStacksList,
}

type stackView struct {
	config.StackConfig
	Status string `json:"status,omitempty"`
}

func init() {
	stacksListCmd.Flags().Bool("json", false, "output as JSON")
	stacksListCmd.Flags().Bool("ping", false, "check connectivity of each stack")

	stacksCmd.AddCommand(stacksListCmd)
	rootCmd.AddCommand(stacksCmd)
}

func runStacksList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	ping, _ := cmd.Flags().GetBool("ping")

	cfg, err := loadServerConfig()
	if err != nil {
		return err
	}
	stacks, err := config.LoadServiceStacks(cfg)
	if err != nil {
		return err
	}

	views := make([]stackView, 0, len(stacks))
	for _, s := range stacks {
		views = append(views, stackView{StackConfig: s})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })

	if ping {
		registry := stack_registry.NewRegistry(stacks, cfg.Search.TaskTimeout)
		defer func() { _ = registry.Close() }()
		for i := range views {
			views[i].Status = pingStack(cmd.Context(), registry, views[i].Name)
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), views)
	}

	header := []string{"STACK", "SEARCH HOST", "INDEX PREFIX"}
	if ping {
		header = append(header, "STATUS")
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		row := []string{boldColor.Sprint(v.Name), v.SearchHost, v.IndexPrefix}
		if ping {
			row = append(row, colorStatus(v.Status))
		}
		rows = append(rows, row)
	}
	return renderTable(cmd.OutOrStdout(), header, rows)
}

func pingStack(ctx context.Context, registry *stack_registry.Registry, name string) string {
	ctx, cancel := context.WithTimeout(ctx, stackPingTimeout)
	defer cancel()
	if err := registry.Ping(ctx, name); err != nil {
		return err.Error()
	}
	return "ok"
}

func colorStatus(status string) string {
	if status == "ok" {
		return okColor.Sprint(status)
	}
	return errColor.Sprint(status)
}
