package cmd

import (
	"fmt"

	"fixturegen/pkg/utils"
	"fixturegen/pkg/writer"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify FILE...",
	Short: "Check fixture files",
	Long: `Check that each file holds one decimal integer per newline-terminated line,
that the values are non-decreasing and, if --min/--max are given, within bounds.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Bool("sorted", true, "Require non-decreasing values")
	verifyCmd.Flags().Int64("min", 0, "Smallest allowed value")
	verifyCmd.Flags().Int64("max", 0, "Largest allowed value")
}

func runVerify(cmd *cobra.Command, args []string) error {
	sorted, _ := cmd.Flags().GetBool("sorted")
	check := writer.Check{Sorted: sorted}
	if cmd.Flags().Changed("min") {
		v, _ := cmd.Flags().GetInt64("min")
		check.Min = &v
	}
	if cmd.Flags().Changed("max") {
		v, _ := cmd.Flags().GetInt64("max")
		check.Max = &v
	}

	tableData := pterm.TableData{
		{"File", "Lines", "First", "Last", "Status"},
	}

	failed := 0
	for _, path := range args {
		summary, err := writer.VerifyFile(path, check)
		if err != nil {
			failed++
			utils.Error.Println(err)
			tableData = append(tableData, []string{path, "-", "-", "-", pterm.LightRed("FAIL")})
			continue
		}

		first, last := "-", "-"
		if summary.Lines > 0 {
			first = fmt.Sprintf("%d", summary.First)
			last = fmt.Sprintf("%d", summary.Last)
		}
		tableData = append(tableData, []string{
			path, fmt.Sprintf("%d", summary.Lines), first, last, pterm.LightGreen("OK"),
		})
	}

	utils.PrintSection("Verification")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	if failed > 0 {
		return errors.Errorf("%d of %d fixtures failed verification", failed, len(args))
	}
	utils.Success.Printf("%d fixtures verified\n", len(args))
	return nil
}
