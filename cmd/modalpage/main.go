package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"modalpage/internal/config"
	"modalpage/internal/logger"
	"modalpage/internal/trace"
	"modalpage/internal/ui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "modalpage",
		Short:         "A page with a button that opens an animated modal dialog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags())
		},
	}

	flags := root.Flags()
	flags.Bool("animate", true, "animate the dialog in and out")
	flags.Bool("mouse", true, "enable mouse clicks and hover")
	flags.Bool("close-on-backdrop", true, "close the dialog when the backdrop is clicked")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file")

	root.AddCommand(newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the modalpage config file",
	}

	var global bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			write := config.WriteProject
			if global {
				write = config.WriteGlobal
			}
			path, err := write(config.Default())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&global, "global", false, "write to the XDG config directory instead of ./modalpage.yml")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func run(ctx context.Context, flags *pflag.FlagSet) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Default.SetLevel(level)
	if cfg.LogFile != "" {
		f, err := tea.LogToFileWith(cfg.LogFile, "modalpage", logger.Default)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("starting tracer: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown: %v", err)
		}
	}()

	model := ui.NewAppModel(ui.Options{
		Animate:         cfg.Animate,
		CloseOnBackdrop: cfg.CloseOnBackdrop,
		Tracer:          tp.Tracer(),
		Logger:          logger.Default,
	})
	defer model.Unmount()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	logger.Info("starting (animate=%v mouse=%v)", cfg.Animate, cfg.Mouse)

	if _, err := tea.NewProgram(model.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
