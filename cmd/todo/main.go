package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastygo/todo/internal/cli"
	"github.com/fastygo/todo/pkg/logger"
	"github.com/fastygo/todo/repository/memory"
	taskUC "github.com/fastygo/todo/usecase/task"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Interactive in-memory todo list",
		Long:         "Manage a todo list from a numbered menu. Tasks live in memory and are gone when the program exits.",
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringP("config", "c", "", "Path to a TOML config file (default: user config dir)")
	cmd.Flags().Bool("no-color", false, "Disable coloured output")
	cmd.Flags().String("status", "", "Filter for View Tasks: all, pending, completed")
	cmd.Flags().String("sort", "", "Order for View Tasks: created, title")
	cmd.Flags().String("log-level", "warn", "Log level for diagnostics written to stderr")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	logLevel, _ := cmd.Flags().GetString("log-level")

	required := configPath != ""
	if !required {
		configPath = cli.DefaultConfigPath()
	}
	cfg, err := cli.LoadConfig(configPath, required)
	if err != nil {
		return err
	}

	status := cfg.DefaultStatus
	if cmd.Flags().Changed("status") {
		status, _ = cmd.Flags().GetString("status")
	}
	sort := cfg.DefaultSort
	if cmd.Flags().Changed("sort") {
		sort, _ = cmd.Flags().GetString("sort")
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    logLevel,
		Encoding: "console",
		Output:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	zapLogger.Debug("cli starting",
		zap.String("config", configPath),
		zap.String("status", status),
		zap.String("sort", sort))

	out := cmd.OutOrStdout()
	styles := cli.NewStyles(out, cfg.Color && !noColor)

	tasks := taskUC.New(memory.NewTaskRepository(nil), nil, zapLogger)
	app := cli.New(tasks, cmd.InOrStdin(), out, cli.Options{
		Styles: &styles,
		Status: status,
		Sort:   sort,
	})
	return app.Run(cmd.Context())
}
