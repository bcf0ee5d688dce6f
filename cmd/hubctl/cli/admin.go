package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gameshub/domain"
)

const adminPasswordEnv = "HUBCTL_ADMIN_PASSWORD"

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Long: `Create an admin account.

The password is read from --password or, when the flag is empty, from
HUBCTL_ADMIN_PASSWORD. Accounts without a password can only sign in
through OAuth.

Examples:
  HUBCTL_ADMIN_PASSWORD=... hubctl admin create --email ops@example.com --role owner
  hubctl admin create --email editor@example.com --name Editor --role editor`,
	Args: cobra.NoArgs,
	RunE: runAdminCreate,
}

func init() {
	adminCreateCmd.Flags().String("email", "", "admin email (required)")
	adminCreateCmd.Flags().String("name", "", "display name")
	adminCreateCmd.Flags().String("role", string(domain.RoleEditor), "role: owner, admin or editor")
	adminCreateCmd.Flags().String("password", "", "password (prefer "+adminPasswordEnv+")")
	_ = adminCreateCmd.MarkFlagRequired("email")

	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminCreate(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv(adminPasswordEnv)
	}

	if !domain.AdminRole(role).Valid() {
		return fmt.Errorf("unknown role %q", role)
	}

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	admin, err := s.container.AuthUsecase.CreateAdmin(ctx, email, name, domain.AdminRole(role), password)
	if err != nil {
		return err
	}
	success("created %s %s (%s)", admin.Role, boldColor.Sprint(admin.Email), admin.ID)
	return nil
}
