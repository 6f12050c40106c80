package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/irofield/iro/internal/colour"
	"github.com/irofield/iro/internal/config"
	"github.com/irofield/iro/internal/image"
	"github.com/irofield/iro/internal/output"
	"github.com/irofield/iro/internal/wallpaper"
)

var (
	// Generate command flags
	generateStyle      string
	generateMode       string
	generateBackground string
	generateBGColor    string
	generateColours    int
	generateDiversity  float64
	generateRandom     bool
	generateMonitor    string
	generateSet        bool
	generateReload     bool
	generateNoPreview  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [image]",
	Short: "Generate a colour scheme from a wallpaper",
	Long: `Generate a terminal colour scheme from a wallpaper image and write it
into the supported application configs.

Without an image argument, --random picks one from the configured
wallpaper directory. Flags override the corresponding config values
for this invocation only.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF, AVIF

Examples:
  # Generate from a specific wallpaper
  iro generate ~/Pictures/walls/forest.png

  # Generate from a random wallpaper and apply it
  iro generate --random --set-wallpaper

  # Light kawaii scheme with a custom background
  iro generate -s kawaii -m light --background custom --background-color "#fdf6f8" wall.jpg

  # Regenerate and reload waybar/hyprland
  iro generate --reload wall.jpg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "", "palette style (see 'iro styles')")
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "scheme mode (dark, light, auto)")
	generateCmd.Flags().StringVar(&generateBackground, "background", "", "background style (extracted, pure-dark, pure-light, custom)")
	generateCmd.Flags().StringVar(&generateBGColor, "background-color", "", "custom background colour (#rrggbb)")
	generateCmd.Flags().IntVarP(&generateColours, "colors", "c", 0, "number of colours to extract")
	generateCmd.Flags().Float64Var(&generateDiversity, "diversity", 0, "minimum perceptual distance between extracted colours")
	generateCmd.Flags().BoolVar(&generateRandom, "random", false, "pick a random wallpaper from the configured directory")
	generateCmd.Flags().StringVar(&generateMonitor, "monitor", "", "apply the wallpaper to a single monitor")
	generateCmd.Flags().BoolVar(&generateSet, "set-wallpaper", false, "apply the wallpaper via hyprpaper")
	generateCmd.Flags().BoolVar(&generateReload, "reload", false, "restart waybar and reload hyprland afterwards")
	generateCmd.Flags().BoolVar(&generateNoPreview, "no-preview", false, "suppress the colour preview")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	imagePath, err := resolveWallpaper(cmd, args, cfg)
	if err != nil {
		return err
	}
	return generateFrom(cmd, cfg, imagePath)
}

// resolveWallpaper decides which image to use: the positional argument,
// or a random pick from the configured wallpaper directory.
func resolveWallpaper(cmd *cobra.Command, args []string, cfg config.Config) (string, error) {
	if len(args) == 1 {
		if err := image.ValidateImagePath(args[0]); err != nil {
			return "", fmt.Errorf("invalid image path: %w", err)
		}
		return image.ResolveImagePath(args[0])
	}
	if !generateRandom {
		return "", fmt.Errorf("no image given; pass a path or use --random")
	}

	files, err := image.ScanDirectoryForImages(cfg.Wallpaper.Dir)
	if err != nil {
		return "", fmt.Errorf("cannot pick a random wallpaper: %w", err)
	}
	path, err := image.SelectRandomImage(files)
	if err != nil {
		return "", err
	}
	log.Debug("picked random wallpaper", "path", path)
	return path, nil
}

// generateFrom runs the full generation flow for the given image. It is
// shared by generate and pick.
func generateFrom(cmd *cobra.Command, cfg config.Config, imagePath string) error {
	fmt.Printf("Generating scheme from %s\n", imagePath)

	pixels, err := image.LoadPixels(image.NewFileLoader(), imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	modeWord := cfg.Theme.Mode
	if cmd.Flags().Changed("mode") {
		modeWord = generateMode
	}
	mode := colour.ResolveMode(pixels, modeWord)

	opts := optionsFrom(cmd.Flags(), cfg, mode)
	if !colour.KnownStyle(opts.Style) {
		fmt.Printf("Unknown style %q, using %q (did you mean %q?)\n",
			opts.Style, colour.DefaultStyleName, colour.ClosestStyleName(opts.Style))
	}

	scheme := colour.Generate(pixels, opts)
	log.Debug("generated scheme", "style", scheme.StyleName, "mode", scheme.Mode.String(),
		"background", scheme.Background.Hex(), "accent", scheme.Accent.Hex())

	writer := output.NewWriter(log)
	written, err := writer.WriteAll(scheme)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Printf("Wrote %s\n", path)
	}

	if generateSet || generateMonitor != "" {
		mgr := wallpaper.NewManager(log)
		if err := mgr.Set(context.Background(), imagePath, generateMonitor); err != nil {
			return err
		}
	}
	if generateReload {
		mgr := wallpaper.NewManager(log)
		if err := mgr.Reload(context.Background()); err != nil {
			return err
		}
	}

	if !generateNoPreview && isTerminal(os.Stdout) {
		fmt.Println()
		fmt.Print(renderSchemePreview(scheme))
	}
	return nil
}

// optionsFrom merges the config with any flags set on this invocation.
func optionsFrom(flags *pflag.FlagSet, cfg config.Config, mode colour.Mode) colour.Options {
	opts := colour.DefaultOptions()
	opts.Mode = mode

	opts.Style = cfg.Palette.Style
	if flags.Changed("style") {
		opts.Style = generateStyle
	}
	if cfg.Palette.DiversityThreshold > 0 {
		opts.DiversityThreshold = cfg.Palette.DiversityThreshold
	}
	if flags.Changed("diversity") {
		opts.DiversityThreshold = generateDiversity
	}
	if cfg.Palette.ColorCount > 0 {
		opts.ColorCount = cfg.Palette.ColorCount
	}
	if flags.Changed("colors") {
		opts.ColorCount = generateColours
	}

	opts.BackgroundStyle, opts.BackgroundHex = cfg.BackgroundStyle(mode.String())
	if flags.Changed("background") {
		opts.BackgroundStyle = generateBackground
	}
	if flags.Changed("background-color") {
		opts.BackgroundHex = generateBGColor
	}
	return opts
}
