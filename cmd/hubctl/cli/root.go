// Package cli contains the hubctl commands
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gameshub/config"
	"gameshub/di"
	"gameshub/driver/hub_db"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	logger  *slog.Logger
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "Games hub operator CLI",
	Long: `hubctl manages a games hub deployment from the command line.

Commands that touch projects, admins or feeds run in-process against the
same database and service stacks as the server.

Example usage:
  hubctl migrate up                          # Apply pending migrations
  hubctl admin create --email ops@example.com --role owner
  hubctl project create --name "Daily News" --slug daily-news
  hubctl feeds list --project <id>           # List a project's feeds
  hubctl feeds import <feedID>               # Run one import now
  hubctl stacks list --json                  # Show configured stacks`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hubctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres URL (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().String("stacks-file", "", "service stacks YAML file")

	_ = viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindPFlag("stacks_file", rootCmd.PersistentFlags().Lookup("stacks-file"))
}

// initConfig reads ~/.hubctl.yaml and HUBCTL_* variables.
func initConfig() error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if noColor {
		color.NoColor = true
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".hubctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HUBCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("database_url", "HUBCTL_DATABASE_URL", "DATABASE_URL")
	_ = viper.BindEnv("stacks_file", "HUBCTL_STACKS_FILE", "SERVICE_STACKS_FILE")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("configuration loaded", "file", filepath.Clean(used))
	}
	return nil
}

func databaseURL() (string, error) {
	url := viper.GetString("database_url")
	if url == "" {
		return "", fmt.Errorf("database URL not set: use --database-url, HUBCTL_DATABASE_URL or database_url in ~/.hubctl.yaml")
	}
	return url, nil
}

// loadServerConfig resolves the server config from the environment with the
// CLI's database and stacks settings taking precedence.
func loadServerConfig() (*config.Config, error) {
	overrides := map[string]string{
		"DATABASE_URL":        viper.GetString("database_url"),
		"SERVICE_STACKS_FILE": viper.GetString("stacks_file"),
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, err
		}
	}
	return config.NewConfig()
}

// session is an in-process set of server components for one command.
type session struct {
	cfg       *config.Config
	pool      *pgxpool.Pool
	container *di.ApplicationComponents
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("loading server config: %w", err)
	}
	pool, err := hub_db.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	container, err := di.NewApplicationComponents(ctx, cfg, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &session{cfg: cfg, pool: pool, container: container}, nil
}

func (s *session) Close() {
	if err := s.container.Close(); err != nil {
		logger.Warn("closing service stacks", "error", err)
	}
	s.pool.Close()
}
