package cmd

import "github.com/spf13/cobra"

// The apply helpers copy a flag over its config value only when the flag was
// set on the command line, so flags beat the config file and the config file
// beats the flag defaults.

func applyInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

func applyInt64(cmd *cobra.Command, name string, dst *int64) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt64(name)
	}
}

func applyUint64(cmd *cobra.Command, name string, dst *uint64) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetUint64(name)
	}
}

func applyString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func applyStringSlice(cmd *cobra.Command, name string, dst *[]string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetStringSlice(name)
	}
}
