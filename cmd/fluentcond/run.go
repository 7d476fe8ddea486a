package main

import (
	"errors"
	"fmt"

	"github.com/ib-77/fluentcond/internal/scenario"
	"github.com/spf13/cobra"
)

var errScenariosFailed = errors.New("scenarios failed")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run declarative scenarios",
	Long:  `Loads scenarios from a YAML file (or the embedded default set), concludes each chain once and checks its expectations.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		failFast, _ := cmd.Flags().GetBool("fail-fast")
		return runScenarios(cmd, file, failFast)
	},
}

func init() {
	runCmd.Flags().StringP("file", "f", "", "Scenario file (defaults to the embedded set)")
	runCmd.Flags().Bool("fail-fast", false, "Stop at the first failing scenario")
	rootCmd.AddCommand(runCmd)
}

func runScenarios(cmd *cobra.Command, file string, failFast bool) error {
	logger, err := loggerFor(cmd)
	if err != nil {
		return err
	}

	var scenarios []scenario.Scenario
	if file == "" {
		scenarios, err = scenario.Default()
	} else {
		scenarios, err = scenario.LoadFile(file)
	}
	if err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	reports := scenario.NewRunner(cmd.OutOrStdout(), logger).RunAll(scenarios, failFast)

	failed := 0
	for _, r := range reports {
		if !r.Passed {
			failed++
		}
	}
	logger.Info("scenarios finished", "total", len(reports), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errScenariosFailed, failed, len(reports))
	}
	return nil
}
