package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/irofield/iro/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the iro config and wallpaper directories",
	Long: `Create the configuration directory with a default config file and the
wallpaper directory it points at, then print shell-integration
instructions. Existing config files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := config.Path()
		if _, err := os.Stat(cfgPath); err == nil {
			fmt.Printf("Config already exists at %s\n", cfgPath)
		} else {
			if err := config.Save(config.Default()); err != nil {
				return err
			}
			fmt.Printf("Wrote default config to %s\n", cfgPath)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Wallpaper.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create wallpaper dir: %w", err)
		}
		fmt.Printf("Wallpaper directory: %s\n", cfg.Wallpaper.Dir)

		colorsPath := filepath.Join(filepath.Dir(cfgPath), "colors.sh")
		fmt.Println()
		fmt.Println("To load the generated colours into your shell, add this to your shell rc:")
		fmt.Printf("  [ -f %s ] && . %s\n", colorsPath, colorsPath)
		return nil
	},
}
