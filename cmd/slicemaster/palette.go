package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	slicemaster "github.com/kanniganfan/SliceMaster"
	"github.com/kanniganfan/SliceMaster/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Extract a color palette from an image",
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().StringP("input", "i", "", "Input image")
	paletteCmd.Flags().IntP("colors", "k", 8, "Number of palette colors")
	paletteCmd.Flags().String("method", "dominant", "Extraction method (dominant, kmeans)")
	paletteCmd.Flags().String("swatch", "", "Write a swatch strip PNG to this path")
	paletteCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	k, _ := cmd.Flags().GetInt("colors")
	methodStr, _ := cmd.Flags().GetString("method")
	swatchPath, _ := cmd.Flags().GetString("swatch")

	var method palette.Method
	switch methodStr {
	case "dominant":
		method = palette.MethodDominant
	case "kmeans":
		method = palette.MethodKMeans
	default:
		return fmt.Errorf("unknown method %q (want dominant or kmeans)", methodStr)
	}

	pm, err := slicemaster.LoadPixmap(inputPath)
	if err != nil {
		return err
	}

	colors := palette.Extract(pm, k, method)
	if len(colors) == 0 {
		return fmt.Errorf("no palette extracted from %s", inputPath)
	}
	palette.SortByBrightness(colors)

	for _, c := range colors {
		fmt.Println(c.Hex())
	}

	if swatchPath != "" {
		img := palette.Swatch(colors, 64)
		f, err := os.Create(swatchPath)
		if err != nil {
			return fmt.Errorf("creating swatch file: %w", err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding swatch: %w", err)
		}
	}
	return nil
}
