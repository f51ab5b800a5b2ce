package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func evidenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evidence",
		Short: "Inspect the captured-image record",
	}
	cmd.AddCommand(evidenceListCmd(), evidenceClearCmd())
	return cmd
}

func evidenceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List captured memory images",
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := wire.Evidence.ListImages()
			if err != nil {
				return err
			}
			if len(images) == 0 {
				fmt.Println("no captured images recorded")
				return nil
			}
			for _, img := range images {
				fmt.Printf("%s  case=%s  by=%s  %s  %.2f MiB\n  sha256=%s\n  %s\n",
					img.CapturedAt.Format("2006-01-02 15:04:05"),
					img.CaseID, img.RecoveredBy, img.ImageID,
					float64(img.SizeBytes)/(1<<20), img.SHA256, img.Path)
			}
			return nil
		},
	}
}

func evidenceClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded image entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the evidence record without --yes")
			}
			if err := wire.Evidence.Clear(); err != nil {
				return err
			}
			fmt.Println("evidence record cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing the record")
	return cmd
}
