package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/adapters/progress"
	"github.com/trebuchet-org/tcfg/internal/app"
	"github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tcfg",
		Short: "Smart contract toolchain configuration",
		Long: `tcfg builds the toolchain configuration record (compilers, networks,
reporters, explorer verification and coverage) from built-in declarations,
an optional toolchain.toml and the environment, and hands it to external tools.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")
			if projectRoot == "" {
				var err error
				if projectRoot, err = config.FindProjectRoot(); err != nil {
					projectRoot = "."
				}
			}

			v := config.SetupViper(projectRoot, cmd)
			if v.GetString("project_root") == "" {
				v.Set("project_root", projectRoot)
			}

			var sink usecase.ProgressSink = progress.NewNopSink()
			if !v.GetBool("json") && !v.GetBool("non_interactive") {
				sink = progress.NewSpinnerSink(cmd.ErrOrStderr())
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured. PostRun hooks are skipped when RunE
			// fails, so the cancel runs from a wrapped RunE instead.
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				run := cmd.RunE
				cmd.RunE = func(cmd *cobra.Command, args []string) error {
					defer cancel()
					return run(cmd, args)
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with toolchain.toml or a hardhat config)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "Dotenv files to read after the process environment (default .env,.env.local)")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when a credential or API key variable is unset")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands",
	})

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "main"
	rootCmd.AddCommand(exportCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "main"
	rootCmd.AddCommand(checkCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "inspect"
	rootCmd.AddCommand(networksCmd)

	networkCmd := NewNetworkCmd()
	networkCmd.GroupID = "inspect"
	rootCmd.AddCommand(networkCmd)

	explorersCmd := NewExplorersCmd()
	explorersCmd.GroupID = "inspect"
	rootCmd.AddCommand(explorersCmd)

	accountsCmd := NewAccountsCmd()
	accountsCmd.GroupID = "inspect"
	rootCmd.AddCommand(accountsCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
