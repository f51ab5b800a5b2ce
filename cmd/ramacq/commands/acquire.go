package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ramacq/internal/services/acquisition"
)

func acquireCmd() *cobra.Command {
	var (
		caseID   string
		operator string
		outDir   string
		tool     string
		label    string
	)
	cmd := &cobra.Command{
		Use:   "acquire",
		Short: "Capture a RAM image and record it as evidence",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.Acquisition.Acquire(cmd.Context(), acquisition.Config{
				CaseID:     caseID,
				OperatorID: operator,
				OutputDir:  outDir,
				ToolPath:   tool,
				Label:      label,
				ExtraArgs:  args,
			})
			if err != nil {
				return err
			}
			if err := wire.Evidence.AddImage(result.Image); err != nil {
				return err
			}
			wire.Audit.Record(operator, "acquire", result.Image.ImageID,
				map[string]string{"case_id": caseID, "sha256": result.Image.SHA256})
			fmt.Println(result.Log)
			return nil
		},
	}
	cmd.Flags().StringVar(&caseID, "case", "", "case identifier")
	cmd.Flags().StringVar(&operator, "operator", "", "operator user id")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for the image")
	cmd.Flags().StringVar(&tool, "tool", "", "path to the WinPmem executable")
	cmd.Flags().StringVar(&label, "label", "", "explicit image id (default <case>_<timestamp>)")
	_ = cmd.MarkFlagRequired("case")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("tool")
	return cmd
}
