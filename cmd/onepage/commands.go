package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath  string
	statePath   string
	noState     bool
	speedMS     int
	easingName  string
	anchorList  []string
	lockAnchors bool
	noMenu      bool
	noMouse     bool
	forceInit   bool

	rootCmd = &cobra.Command{
		Use:   "onepage FILE[#anchor]",
		Short: "Page through a document one screen-sized section at a time",
		Long: `onepage splits a Markdown or text file into sections at its headings and
"---" breaks, then shows exactly one section at a time. Keys, the mouse wheel
and mouse drags each move one section, with an animated scroll in between.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runView, // Defined in cmd_view.go
	}

	anchorsCmd = &cobra.Command{
		Use:   "anchors FILE",
		Short: "List the sections of a document and their anchors",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnchors, // Defined in cmd_anchors.go
	}

	gotoCmd = &cobra.Command{
		Use:   "goto FILE#anchor",
		Short: "Move a running viewer (and the next one started) to a section",
		Args:  cobra.ExactArgs(1),
		RunE:  runGoto, // Defined in cmd_anchors.go
	}

	// --- Configuration ---
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file holding the defaults",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit, // Defined in cmd_config.go
	}
	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath, // Defined in cmd_config.go
	}
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow, // Defined in cmd_config.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Location state file (default: user state dir)")

	rootCmd.Flags().BoolVar(&noState, "no-state", false, "Keep the current section in memory only")
	rootCmd.Flags().IntVar(&speedMS, "speed", 0, "Transition duration in milliseconds")
	rootCmd.Flags().StringVar(&easingName, "easing", "", "Easing curve (linear, ease-out-cubic, ease-in-out-quad, ease-in-out-cubic)")
	rootCmd.PersistentFlags().StringSliceVar(&anchorList, "anchors", nil, "Anchor names by section position, overriding the derived ones")
	rootCmd.Flags().BoolVar(&lockAnchors, "lock-anchors", false, "Do not record the current section")
	rootCmd.Flags().BoolVar(&noMenu, "no-menu", false, "Hide the section menu")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Ignore the mouse wheel and drags")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)
	rootCmd.AddCommand(anchorsCmd, gotoCmd, configCmd)
}
