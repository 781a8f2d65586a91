package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/membranelab/crossflow/datarecording"
)

var reportFlags struct {
	dbPath string
	steps  bool
	runID  string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the runs recorded in a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDBPath(reportFlags.dbPath)
		if path == "" {
			return fmt.Errorf("no database given; use --db or CROSSFLOW_DB")
		}

		reader := datarecording.NewReader(path + ".sqlite3")
		defer reader.Close()

		reader.MapTable(datarecording.RunTableName, datarecording.RunEntry{})
		reader.MapTable(datarecording.StepTableName, datarecording.StepEntry{})

		runs, total, err := reader.Query(
			context.Background(),
			datarecording.RunTableName,
			datarecording.QueryParams{},
		)
		if err != nil {
			return err
		}

		cmd.Printf("%d recorded runs\n", total)
		for _, r := range runs {
			run := r.(datarecording.RunEntry)
			cmd.Printf("%s: %s, permeate %.2f L, retentate %.2f L, "+
				"concentration %.2f g/L, time %.2f h\n",
				run.RunID, run.StopReason, run.FinalPermeateVolume,
				run.FinalRetentateVolume, run.FinalConcentration,
				run.TimeSeconds/3600)
		}

		if reportFlags.steps {
			return reportSteps(cmd, reader)
		}

		return nil
	},
}

func reportSteps(cmd *cobra.Command, reader datarecording.DataReader) error {
	params := datarecording.QueryParams{OrderBy: "ElapsedSeconds"}
	if reportFlags.runID != "" {
		params.Where = "RunID = ?"
		params.Args = []any{reportFlags.runID}
	}

	steps, _, err := reader.Query(
		context.Background(),
		datarecording.StepTableName,
		params,
	)
	if err != nil {
		return err
	}

	for _, s := range steps {
		step := s.(datarecording.StepEntry)
		cmd.Printf("%s t %.2f h: volume %.2f L, concentration %.2f g/L, "+
			"flux %.4f\n",
			step.RunID, step.ElapsedSeconds/3600, step.Volume,
			step.Concentration, step.Flux)
	}

	return nil
}

func init() {
	f := reportCmd.Flags()

	f.StringVar(&reportFlags.dbPath, "db", "",
		"database path (default CROSSFLOW_DB)")
	f.BoolVar(&reportFlags.steps, "steps", false,
		"also list the recorded steps")
	f.StringVar(&reportFlags.runID, "run", "",
		"limit --steps to one run id")

	rootCmd.AddCommand(reportCmd)
}
