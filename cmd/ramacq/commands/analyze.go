package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ramacq/internal/catalog"
	"ramacq/internal/services/analysis"
)

func analyzeCmd() *cobra.Command {
	var (
		version string
		mask    bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <image> <plugin> [-- extra args]",
		Short: "Run a Volatility plugin against a captured image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := wire.Analysis.Run(cmd.Context(), args[0], args[1], analysis.RunOptions{
				Version:   analysis.Version(version),
				ExtraArgs: args[2:],
			})
			if err != nil {
				return err
			}
			if mask {
				output = catalog.MaskSensitive(output)
			}
			fmt.Println(output)
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", string(analysis.V3), "volatility generation (v3|v2)")
	cmd.Flags().BoolVar(&mask, "mask", false, "mask privacy-sensitive identifiers in output")
	return cmd
}

func pluginsCmd() *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Print the curated plugin catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, section := range catalog.PluginSections(analysis.Version(version)) {
				fmt.Printf("%s\n", section.Title)
				for _, p := range section.Plugins {
					fmt.Printf("  %-32s %s\n", p.Name, p.Description)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", string(analysis.V3), "volatility generation (v3|v2)")
	return cmd
}
