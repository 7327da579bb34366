package main

import (
	"github.com/spf13/cobra"

	slicemaster "github.com/kanniganfan/SliceMaster"
)

var featherCmd = &cobra.Command{
	Use:   "feather",
	Short: "Soften sprite edges by feathering the alpha channel",
	RunE:  runFeather,
}

func init() {
	featherCmd.Flags().StringP("input", "i", "", "Input image")
	featherCmd.Flags().StringP("output", "o", "", "Output PNG")
	featherCmd.Flags().Int("radius", 2, "Feather radius in pixels")
	featherCmd.MarkFlagRequired("input")
	featherCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(featherCmd)
}

func runFeather(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	radius, _ := cmd.Flags().GetInt("radius")

	pm, err := slicemaster.LoadPixmap(inputPath)
	if err != nil {
		return err
	}
	slicemaster.FeatherAlpha(pm, radius)
	return pm.SavePNG(outputPath)
}
