package cmd

import (
	"path/filepath"

	"fixturegen/pkg/generator"
	"fixturegen/pkg/reporter"
	"fixturegen/pkg/utils"
	"fixturegen/pkg/writer"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var canonicalCmd = &cobra.Command{
	Use:   "canonical",
	Short: "Generate the canonical integer sets",
	Long: `Write the six canonical sets, each to <name>.txt:

  empty     no values
  zero      0
  nonzero   1 .. MAX-1
  naturals  0 .. MAX-1
  odds      1, 3, .. below MAX
  evens     0, 2, .. below MAX

MAX defaults to 1000000.`,
	Args: cobra.NoArgs,
	RunE: runCanonical,
}

func init() {
	rootCmd.AddCommand(canonicalCmd)

	canonicalCmd.Flags().Int64P("max-number", "x", generator.DefaultMaxNumber, "Exclusive upper bound of the sets")
	canonicalCmd.Flags().StringSliceP("only", "o", nil, "Only write these sets (comma separated)")
	canonicalCmd.Flags().StringP("manifest", "m", "", "Write a run manifest (.json, .yaml)")
}

func runCanonical(cmd *cobra.Command, args []string) error {
	cc := cfg.Canonical
	applyInt64(cmd, "max-number", &cc.MaxNumber)
	applyStringSlice(cmd, "only", &cc.Only)
	manifest := cfg.Output.Manifest
	applyString(cmd, "manifest", &manifest)

	sets, err := generator.SelectSets(generator.CanonicalSets(cc.MaxNumber), cc.Only)
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		return err
	}

	var jobs []writer.Job
	var names []string
	for _, set := range sets {
		jobs = append(jobs, writer.Job{
			Path:   filepath.Join(cfg.Output.Dir, set.Filename()),
			Values: set.Values(),
		})
		names = append(names, set.Name)
	}

	pool := writer.NewPool(cfg.Output.Workers)

	if !quiet {
		progressBar, _ := pterm.DefaultProgressbar.
			WithTotal(len(jobs)).
			WithTitle("Writing canonical sets").
			WithShowElapsedTime(true).
			WithShowCount(true).
			Start()
		pool.OnDone = func(result *writer.Result) {
			utils.Debug.Printf("%s: %d lines\n", result.Path, result.Lines)
			progressBar.Increment()
		}
		defer progressBar.Stop()
	}

	results, err := pool.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	pool.Stats.Print()

	if manifest != "" {
		rep := reporter.NewReporter("canonical", reporter.CanonicalParams{
			MaxNumber: cc.MaxNumber,
			Sets:      names,
		})
		rep.AddFiles(results...)
		if err := rep.GenerateReport(manifest); err != nil {
			return err
		}
		utils.Success.Printf("Manifest saved to %s\n", manifest)
	}

	utils.Success.Println(pool.Stats.Summary())
	return nil
}
