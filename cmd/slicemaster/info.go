package main

import (
	"fmt"

	"github.com/spf13/cobra"

	slicemaster "github.com/kanniganfan/SliceMaster"
	"github.com/kanniganfan/SliceMaster/palette"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report image dimensions, background model, and detected islands",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringP("input", "i", "", "Input image")
	infoCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	pm, err := slicemaster.LoadPixmap(inputPath)
	if err != nil {
		return err
	}

	bg := slicemaster.InferBackground(pm)
	rects := slicemaster.DetectIslands(pm, slicemaster.DefaultDetectOptions())

	fmt.Printf("Size:       %dx%d\n", pm.Width(), pm.Height())
	if bg.Kind == slicemaster.BackgroundSolid {
		fmt.Printf("Background: %s %s\n", bg.Kind, bg.Color)
	} else {
		fmt.Printf("Background: %s\n", bg.Kind)
		fmt.Printf("Wand hint:  %s (dominant image color)\n", palette.SuggestBackground(pm))
	}
	fmt.Printf("Islands:    %d\n", len(rects))
	for i, r := range rects {
		fmt.Printf("  %3d: x=%d y=%d w=%d h=%d\n", i, r.X, r.Y, r.Width, r.Height)
	}
	return nil
}
