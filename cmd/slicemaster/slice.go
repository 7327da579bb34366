package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	slicemaster "github.com/kanniganfan/SliceMaster"
)

var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Detect sprite islands and export them as numbered PNG crops",
	RunE:  runSlice,
}

func init() {
	sliceCmd.Flags().StringP("input", "i", "", "Input sprite sheet")
	sliceCmd.Flags().StringP("output", "o", ".", "Output directory for crops")
	sliceCmd.Flags().Float64("threshold", 10, "Background color distance threshold")
	sliceCmd.Flags().Int("min-area", 64, "Minimum island pixel count and bounding-box area")
	sliceCmd.Flags().Bool("ignore-nested", false, "Drop islands fully contained in larger ones")
	sliceCmd.Flags().String("json", "", "Write the detected rects to a JSON manifest")
	sliceCmd.Flags().Int("scale", 1, "Nearest-neighbor upscale factor for exported crops")
	sliceCmd.Flags().Bool("skip-duplicates", false, "Skip crops that near-duplicate an earlier one")
	sliceCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outDir, _ := cmd.Flags().GetString("output")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	minArea, _ := cmd.Flags().GetInt("min-area")
	ignoreNested, _ := cmd.Flags().GetBool("ignore-nested")
	jsonPath, _ := cmd.Flags().GetString("json")
	scale, _ := cmd.Flags().GetInt("scale")
	skipDuplicates, _ := cmd.Flags().GetBool("skip-duplicates")

	pm, err := slicemaster.LoadPixmap(inputPath)
	if err != nil {
		return err
	}

	rects := slicemaster.DetectIslands(pm, slicemaster.DetectOptions{
		Threshold:    threshold,
		MinArea:      minArea,
		IgnoreNested: ignoreNested,
	})
	if len(rects) == 0 {
		fmt.Println("no sprites detected")
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	var kept []*slicemaster.Pixmap
	written := 0
	for _, r := range rects {
		sprite, err := pm.Crop(r)
		if err != nil {
			return fmt.Errorf("cropping %+v: %w", r, err)
		}
		if skipDuplicates && isDuplicate(sprite, kept) {
			continue
		}
		kept = append(kept, sprite)

		out := sprite
		if scale > 1 {
			out, err = sprite.Resized(r.Width*scale, r.Height*scale)
			if err != nil {
				return fmt.Errorf("scaling crop: %w", err)
			}
		}
		name := filepath.Join(outDir, fmt.Sprintf("sprite_%03d.png", written))
		if err := out.SavePNG(name); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		written++
	}

	if jsonPath != "" {
		data, err := json.MarshalIndent(rects, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}

	fmt.Printf("Detected %d sprites, wrote %d crops to %s\n", len(rects), written, outDir)
	return nil
}

// isDuplicate reports whether sprite near-duplicates any earlier crop,
// using the default detection threshold.
func isDuplicate(sprite *slicemaster.Pixmap, kept []*slicemaster.Pixmap) bool {
	threshold := slicemaster.DefaultDetectOptions().Threshold
	for _, k := range kept {
		if slicemaster.NearDuplicate(sprite, k, threshold) {
			return true
		}
	}
	return false
}
