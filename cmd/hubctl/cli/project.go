package cli

import (
	"github.com/spf13/cobra"

	"gameshub/domain"
	"gameshub/usecase/project_usecase"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects"},
	Short:   "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Args:  cobra.NoArgs,
	RunE:  runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	Args:    cobra.NoArgs,
	RunE:    runProjectList,
}

func init() {
	projectCreateCmd.Flags().String("name", "", "project name (required)")
	projectCreateCmd.Flags().String("slug", "", "lower-kebab slug (required)")
	projectCreateCmd.Flags().String("stack", "", "service stack (default stack when empty)")
	_ = projectCreateCmd.MarkFlagRequired("name")
	_ = projectCreateCmd.MarkFlagRequired("slug")

	projectListCmd.Flags().Bool("json", false, "output as JSON")

	projectCmd.AddCommand(projectCreateCmd, projectListCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	slug, _ := cmd.Flags().GetString("slug")
	stack, _ := cmd.Flags().GetString("stack")

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	project, err := s.container.ProjectUsecase.CreateProject(ctx, project_usecase.CreateProjectInput{
		Name:         name,
		Slug:         slug,
		ServiceStack: stack,
	})
	if err != nil {
		return err
	}
	success("created project %s on stack %s (%s)", boldColor.Sprint(project.Slug), project.ServiceStack, project.ID)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	var projects []*domain.Project
	for page := 1; ; page++ {
		result, err := s.container.ProjectUsecase.ListProjects(ctx, domain.NewPage(page, domain.MaxPerPage))
		if err != nil {
			return err
		}
		projects = append(projects, result.Items...)
		if len(result.Items) == 0 || int64(len(projects)) >= result.Total {
			break
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), projects)
	}
	return renderTable(cmd.OutOrStdout(), []string{"ID", "SLUG", "NAME", "STACK", "CREATED"}, projectRows(projects))
}

func projectRows(projects []*domain.Project) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID.String(),
			boldColor.Sprint(p.Slug),
			p.Name,
			p.ServiceStack,
			p.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows
}
