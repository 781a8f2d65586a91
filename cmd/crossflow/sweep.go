package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/membranelab/crossflow/datarecording"
	"github.com/membranelab/crossflow/monitoring"
	"github.com/membranelab/crossflow/scenario"
	"github.com/membranelab/crossflow/sim"
)

var sweepFlags struct {
	record      bool
	dbPath      string
	monitor     bool
	monitorPort int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <scenario.yaml>",
	Short: "Run every parameter set of a YAML scenario",
	Long: `Sweep runs each parameter set of the scenario in its own ` +
		`goroutine. Orchestrators share no state, so the runs proceed ` +
		`independently; recording and monitoring sinks are shared.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		var runRecorder *datarecording.RunRecorder
		if sweepFlags.record {
			recorder := datarecording.New(resolveDBPath(sweepFlags.dbPath))
			runRecorder = datarecording.NewRunRecorder(recorder)
		}

		var monitor *monitoring.Monitor
		if sweepFlags.monitor {
			monitor = monitoring.NewMonitor()
			if sweepFlags.monitorPort > 0 {
				monitor.WithPortNumber(sweepFlags.monitorPort)
			}
			monitor.StartServer()
		}

		type outcome struct {
			name   string
			result sim.CompletedSimulation
			err    error
		}

		outcomes := make([]outcome, len(s.Runs))

		var wg sync.WaitGroup
		for i, params := range s.Runs {
			orchestrator, err := params.Builder().Build()
			if err != nil {
				return fmt.Errorf("%s: %w", params.Name, err)
			}

			if runRecorder != nil {
				orchestrator.AcceptHook(runRecorder)
			}
			if monitor != nil {
				monitor.Track(params.Name, orchestrator)
			}

			wg.Add(1)
			go func(i int, params scenario.Parameters) {
				defer wg.Done()

				result, err := orchestrator.RunSimulation(params.TimeStep())
				outcomes[i] = outcome{params.Name, result, err}
			}(i, params)
		}
		wg.Wait()

		failed := 0
		for _, o := range outcomes {
			if o.err != nil {
				cmd.Printf("%s: failed: %v\n", o.name, o.err)
				failed++
				continue
			}
			printResult(cmd, o.name, o.result)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d runs failed", failed, len(s.Runs))
		}

		return nil
	},
}

func init() {
	f := sweepCmd.Flags()

	f.BoolVar(&sweepFlags.record, "record", false,
		"record steps and results into a SQLite database")
	f.StringVar(&sweepFlags.dbPath, "db", "",
		"database path for --record (default CROSSFLOW_DB or generated)")
	f.BoolVar(&sweepFlags.monitor, "monitor", false,
		"serve live progress over HTTP")
	f.IntVar(&sweepFlags.monitorPort, "monitor-port", 0,
		"port for --monitor (default random)")

	rootCmd.AddCommand(sweepCmd)
}
