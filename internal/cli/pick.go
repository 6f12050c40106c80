package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irofield/iro/internal/config"
	"github.com/irofield/iro/internal/image"
	"github.com/irofield/iro/internal/picker"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a wallpaper interactively and generate from it",
	Long: `Browse the configured wallpaper directory in an interactive list.
Selecting an entry runs the full generate flow for it; the generate
flags (style, mode, wallpaper application) all apply.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		files, err := image.ScanDirectoryForImages(cfg.Wallpaper.Dir)
		if err != nil {
			return fmt.Errorf("cannot list wallpapers: %w", err)
		}

		choice, err := picker.Run(files)
		if err != nil {
			return err
		}
		if choice == "" {
			log.Debug("picker aborted")
			return nil
		}
		return generateFrom(cmd, cfg, choice)
	},
}

func init() {
	// Pick shares the generate tunables.
	pickCmd.Flags().AddFlagSet(generateCmd.Flags())
}
