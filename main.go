// Package main is the entry point for scrubber, a terminal media scrubber.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/scrubber/internal/app"
	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/errmsg"
	applog "github.com/llehouerou/scrubber/internal/log"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/notify"
	"github.com/llehouerou/scrubber/internal/state"
)

func init() {
	rootCmd.Flags().StringP("config", "c", "", "Read an additional config file")
	rootCmd.Flags().BoolP("autoplay", "a", false, "Start playing as soon as the media is ready")
	rootCmd.Flags().BoolP("loop", "l", false, "Wrap to the start at the end of the media")
	rootCmd.Flags().Bool("no-resume", false, "Do not restore or save the playback position")
}

var rootCmd = &cobra.Command{
	Use:   "scrubber [url]",
	Short: "Play and scrub through media from the terminal",
	Long: "Play and scrub through media from the terminal.\n\n" +
		"Media is described by a sim:// URL, for example\n" +
		"  sim://trailer?frames=2400&fps=24&aspect=2.39",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(lo.Must(cmd.Flags().GetString("config")))
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg, args)
		return run(cfg)
	},
}

// applyFlags lets the command line override the config files.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.URL = args[0]
	}
	if cmd.Flags().Changed("autoplay") {
		cfg.AutoPlay = lo.Must(cmd.Flags().GetBool("autoplay"))
	}
	if cmd.Flags().Changed("loop") {
		cfg.Loop = lo.Must(cmd.Flags().GetBool("loop"))
	}
	if lo.Must(cmd.Flags().GetBool("no-resume")) {
		cfg.Resume = lo.ToPtr(false)
	}
}

func run(cfg *config.Config) error {
	logFile, err := applog.Setup(cfg.GetLogConfig())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := applog.For("main")

	store, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Error("closing state")
		}
	}()

	var opts []app.Option
	if cfg.Notifications {
		notifier, err := notify.New()
		if err != nil {
			logger.WithError(err).Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			opts = append(opts, app.WithNotifier(notifier))
		}
	}

	m, err := app.New(cfg, store, opts...)
	if err != nil {
		logger.WithError(err).Error("startup failed")
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if cfg.MPRISEnabled() {
		remote, err := mpris.New(app.RemoteDispatcher(program))
		if err != nil {
			logger.WithError(err).Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer remote.Close()
			m.SetRemote(remote)
		}
	}

	if _, err := program.Run(); err != nil {
		return err
	}
	logger.Info("exited")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
