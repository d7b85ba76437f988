package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vix/internal/app"
	"github.com/zjrosen/vix/internal/config"
	"github.com/zjrosen/vix/internal/log"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color
	// BEFORE any Bubble Tea program starts. This prevents the
	// terminal's OSC 11 response from racing with Bubble Tea's input
	// loop and appearing as garbage text in the document.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vix [file]",
	Short:   "A terminal markdown editor with vi-style modal editing",
	Long:    `A terminal editor for markdown notes with a modal vi keymap, linewise yank and delete, auto-indent, live file reload and an inline preview.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vix/vix.yaml)")
	rootCmd.Flags().Bool("no-vim", false,
		"start with the vi keymap disabled")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to ~/.config/vix/debug.log")

	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("editor.vim_mode", defaults.Editor.VimMode)
	viper.SetDefault("editor.block_cursor", defaults.Editor.BlockCursor)
	viper.SetDefault("editor.auto_indent", defaults.Editor.AutoIndent)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("theme.markdown_style", defaults.Theme.MarkdownStyle)

	viper.SetEnvPrefix("VIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path := config.DefaultConfigPath(); path != "" {
		viper.SetConfigFile(path)
	}

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if noVim, _ := cmd.Flags().GetBool("no-vim"); noVim {
		cfg.Editor.VimMode = false
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("VIX_DEBUG") != "" {
		cleanup, err := log.Init(config.DefaultLogPath())
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	model, err := app.New(cfg, filePath, configPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
