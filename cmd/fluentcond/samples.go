package main

import (
	"github.com/ib-77/fluentcond/internal/samples"
	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Run the walkthrough of every chain shape",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		samples.Run(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
