// Package cli provides the command-line interface for iro.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/irofield/iro/internal/version"
)

var (
	verbose bool

	// log is the application logger, configured in the root
	// PersistentPreRun and shared by all commands.
	log hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "iro",
		Short: "Generate terminal colour schemes from wallpapers",
		Long: `Iro derives a 16-slot terminal colour scheme from a wallpaper image
and writes it into your application configs (kitty, hyprland, waybar,
shell), optionally applying the wallpaper itself via hyprpaper.

The pipeline extracts the image's dominant colours, harmonises their
hues, adjusts them to a named style and maps them onto the standard
ANSI slots, guaranteeing a usable red/yellow/green/cyan/blue/magenta
spread even for monochrome imagery.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			log = hclog.New(&hclog.LoggerOptions{
				Name:   "iro",
				Level:  level,
				Output: os.Stderr,
			})
		},
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(initCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
