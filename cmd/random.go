package cmd

import (
	"path/filepath"
	"slices"

	"fixturegen/pkg/generator"
	"fixturegen/pkg/reporter"
	"fixturegen/pkg/utils"
	"fixturegen/pkg/writer"

	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate files of sorted random integers",
	Long: `Generate N random integers in [min, max], sort them and write the same
sequence into total-files files named 1_<filename> ... K_<filename>.

If max is not greater than min, max becomes N*5:
  fixturegen random --n 10 --min 5 --max 3    # draws from [5, 50]`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().IntP("n", "n", 100, "Total number of integers to generate")
	randomCmd.Flags().Int64("min", 0, "Minimum integer to generate (inclusive)")
	randomCmd.Flags().Int64("max", 0, "Maximum integer to generate (inclusive)")
	randomCmd.Flags().StringP("filename", "f", "", "Output file name (default \"<n>.txt\")")
	randomCmd.Flags().IntP("total-files", "t", 1, "Number of identical output files")
	randomCmd.Flags().Uint64P("seed", "s", 0, "Random seed (0 picks a fresh one)")
	randomCmd.Flags().StringP("manifest", "m", "", "Write a run manifest (.json, .yaml)")
}

func runRandom(cmd *cobra.Command, args []string) error {
	rc := cfg.Random
	applyInt(cmd, "n", &rc.Count)
	applyInt64(cmd, "min", &rc.Min)
	applyInt64(cmd, "max", &rc.Max)
	applyString(cmd, "filename", &rc.Filename)
	applyInt(cmd, "total-files", &rc.TotalFiles)
	applyUint64(cmd, "seed", &rc.Seed)
	manifest := cfg.Output.Manifest
	applyString(cmd, "manifest", &manifest)

	params := generator.RandomParams{
		Count:      rc.Count,
		Min:        rc.Min,
		Max:        rc.Max,
		Stem:       rc.Filename,
		TotalFiles: rc.TotalFiles,
	}.Normalize()

	rg := generator.NewRandomGenerator(rc.Seed)
	params.Seed = rg.Seed()
	utils.Debug.Printf("Seed: %d\n", params.Seed)

	numbers, err := rg.Generate(params)
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		return err
	}

	var jobs []writer.Job
	for _, name := range params.ReplicaNames() {
		jobs = append(jobs, writer.Job{
			Path:   filepath.Join(cfg.Output.Dir, name),
			Values: slices.Values(numbers),
		})
	}

	pool := writer.NewPool(cfg.Output.Workers)
	pool.OnStart = func(job writer.Job) {
		utils.Info.Printf("Writing %d random nums from %d to %d into file %s\n",
			params.Count, params.Min, params.Max, job.Path)
	}

	results, err := pool.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	pool.Stats.Print()

	if manifest != "" {
		rep := reporter.NewReporter("random", params)
		rep.AddFiles(results...)
		if err := rep.GenerateReport(manifest); err != nil {
			return err
		}
		utils.Success.Printf("Manifest saved to %s\n", manifest)
	}

	utils.Success.Println(pool.Stats.Summary())
	return nil
}
