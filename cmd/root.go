package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fixturegen/pkg/utils"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	outputDir string
	workers   int
	quiet     bool
	debug     bool
	noBanner  bool
	version   = "1.0.0"

	cfg *utils.Config
)

var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "Integer test fixture generator",
	Long: `fixturegen writes text files of integers, one per line, for use as test fixtures.

  random     N sorted random integers, optionally replicated into several files
  canonical  the fixed sets empty, zero, nonzero, naturals, odds and evens
  verify     check that fixture files are well formed, sorted and in range`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// flags parsed fine, errors from here on are not usage errors
		cmd.SilenceUsage = true

		utils.InitLogger(debug)
		utils.SetQuiet(quiet)
		if !noBanner && !quiet {
			utils.PrintBanner(version)
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		applyString(cmd, "dir", &cfg.Output.Dir)
		applyInt(cmd, "workers", &cfg.Output.Workers)
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.SetQuiet(false)
		utils.Error.Println(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+utils.DefaultConfigPath+")")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "dir", "d", ".", "Output directory")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "Number of files written concurrently")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all console output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug messages")
	rootCmd.PersistentFlags().BoolVar(&noBanner, "no-banner", false, "Do not print the banner")
}

func loadConfig() (*utils.Config, error) {
	if cfgFile != "" {
		c, err := utils.LoadConfig(cfgFile)
		if err != nil {
			return nil, errors.Wrap(err, "config")
		}
		utils.Debug.Printf("Loaded config %s\n", cfgFile)
		return c, nil
	}

	if !utils.FileExists(utils.DefaultConfigPath) {
		return utils.DefaultConfig(), nil
	}

	c, err := utils.LoadConfig(utils.DefaultConfigPath)
	if err != nil {
		utils.Warning.Printf("Ignoring %v, using defaults\n", err)
		return utils.DefaultConfig(), nil
	}
	utils.Debug.Printf("Loaded config %s\n", utils.DefaultConfigPath)
	return c, nil
}
