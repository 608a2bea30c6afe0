package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ZacxDev/carousel-engine/pkg/carousel"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "carousel-engine",
		Short: "A compositing and timing engine for photo carousels",
		Long: `carousel-engine renders multi-slide photo carousels for social media:
vintage-camera color filters, text overlays, per-platform image export, and
an audio-synced video reel.

Examples:
  # Export a project's slides for Instagram and Reddit
  carousel-engine export -p project.yaml -o ./out --platforms instagram,reddit

  # Render the project's video reel
  carousel-engine render -p project.yaml -o reel.mp4`,
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Assemble the project's video reel",
		Long: `Assemble the project's ready slides into an H.264/AAC reel with the
configured transition and timing mode. Match-audio timing divides the trimmed
audio track evenly across slides; custom timing uses a fixed slide duration.

Example:
  carousel-engine render -p project.yaml -o reel.mp4 --width 1080 --height 1350`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := carousel.RenderVideoOptions{}
			opts.ProjectPath, _ = cmd.Flags().GetString("project")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.Width, _ = cmd.Flags().GetInt("width")
			opts.Height, _ = cmd.Flags().GetInt("height")
			opts.FPS, _ = cmd.Flags().GetInt("fps")
			opts.FontPath, _ = cmd.Flags().GetString("font")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			timing, err := carousel.RenderVideo(signalContext(), opts)
			if err != nil {
				if types.IsCancellation(err) {
					fmt.Println("render cancelled")
					return nil
				}
				return err
			}
			fmt.Printf("rendered %s (%s)\n", opts.OutputPath, carousel.FormatDuration(timing.TotalDuration))
			return nil
		},
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export slides as per-platform images",
		Long: fmt.Sprintf(`Composite every ready slide for each target platform and write the
results plus a manifest.json to the output directory.

Supported platforms:
%s
Example:
  carousel-engine export -p project.yaml -o ./out --platforms instagram,reddit`,
			formatSupportedPlatforms()),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := carousel.ExportOptions{}
			opts.ProjectPath, _ = cmd.Flags().GetString("project")
			opts.OutputDir, _ = cmd.Flags().GetString("output")
			platformsFlag, _ := cmd.Flags().GetString("platforms")
			if platformsFlag != "" {
				opts.Platforms = strings.Split(platformsFlag, ",")
			}
			opts.Concurrency, _ = cmd.Flags().GetInt("concurrency")
			opts.FontPath, _ = cmd.Flags().GetString("font")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			results, err := carousel.ExportImages(signalContext(), opts)
			if err != nil {
				if types.IsCancellation(err) {
					fmt.Println("export cancelled")
					return nil
				}
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Printf("failed: slide %d for %s: %v\n", r.SlideIndex, r.Platform, r.Err)
				}
			}
			fmt.Printf("exported %d of %d slide/platform pairs\n", len(results)-failed, len(results))
			return nil
		},
	}

	timingCmd = &cobra.Command{
		Use:   "timing",
		Short: "Show the project's derived reel timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, _ := cmd.Flags().GetString("project")
			project, err := carousel.LoadProject(projectPath)
			if err != nil {
				return err
			}
			t, err := carousel.ComputeTiming(project)
			if err != nil {
				return err
			}
			fmt.Printf("slide:      %s\n", carousel.FormatDuration(t.SlideDuration))
			fmt.Printf("transition: %s\n", carousel.FormatDuration(t.TransitionDuration))
			fmt.Printf("total:      %s\n", carousel.FormatDuration(t.TotalDuration))
			return nil
		},
	}

	platformsCmd = &cobra.Command{
		Use:   "platforms",
		Short: "List supported export platforms and filter presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(formatSupportedPlatforms())
			fmt.Println("Filter presets:")
			for _, name := range carousel.GetPresetNames() {
				fmt.Printf("- %s\n", name)
			}
		},
	}
)

func formatSupportedPlatforms() string {
	var sb strings.Builder
	for _, platform := range carousel.GetSupportedPlatforms() {
		sb.WriteString(fmt.Sprintf("- %s\n", platform))
	}
	return sb.String()
}

// signalContext cancels on SIGINT/SIGTERM so an in-flight render discards
// its partial output instead of leaving a broken artifact.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx
}

func init() {
	renderCmd.Flags().StringP("project", "p", "", "Project YAML file")
	renderCmd.Flags().StringP("output", "o", "", "Output video path")
	renderCmd.Flags().Int("width", 0, "Output width (default 1080)")
	renderCmd.Flags().Int("height", 0, "Output height (default 1350)")
	renderCmd.Flags().Int("fps", 0, "Frame rate (default 30)")
	renderCmd.Flags().String("font", "", "TTF font for text overlays")
	renderCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	renderCmd.MarkFlagRequired("project")
	renderCmd.MarkFlagRequired("output")

	exportCmd.Flags().StringP("project", "p", "", "Project YAML file")
	exportCmd.Flags().StringP("output", "o", "", "Output directory")
	exportCmd.Flags().String("platforms", "", "Comma-separated platform list (default: all)")
	exportCmd.Flags().Int("concurrency", 0, "Parallel compositing limit (default: CPU count)")
	exportCmd.Flags().String("font", "", "TTF font for text overlays")
	exportCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	exportCmd.MarkFlagRequired("project")
	exportCmd.MarkFlagRequired("output")

	timingCmd.Flags().StringP("project", "p", "", "Project YAML file")
	timingCmd.MarkFlagRequired("project")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(timingCmd)
	rootCmd.AddCommand(platformsCmd)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
