package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/membranelab/crossflow/datarecording"
	"github.com/membranelab/crossflow/monitoring"
	"github.com/membranelab/crossflow/sim"
)

var runFlags struct {
	volume              float64
	concentration       float64
	tmp                 float64
	membraneArea        float64
	mwco                float64
	concentrationFactor float64
	soluteMW            float64
	timeStepSeconds     float64
	maxHours            float64

	record      bool
	dbPath      string
	monitor     bool
	monitorPort int
	openBrowser bool
	verbose     bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single filtration simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		builder := sim.MakeOrchestratorBuilder().
			WithVolume(runFlags.volume).
			WithConcentration(runFlags.concentration).
			WithTMP(runFlags.tmp).
			WithMembraneArea(runFlags.membraneArea).
			WithMWCO(runFlags.mwco).
			WithConcentrationFactor(runFlags.concentrationFactor)

		if runFlags.soluteMW > 0 {
			builder = builder.WithSoluteMolecularWeight(runFlags.soluteMW)
		}

		if runFlags.maxHours > 0 {
			builder = builder.WithTerminationCriteria(
				sim.NewMaxSimulationTimeCriterion(
					sim.VTimeInSec(runFlags.maxHours) * sim.OneHour))
		}

		orchestrator, err := builder.Build()
		if err != nil {
			return err
		}

		if runFlags.verbose {
			logger := log.New(os.Stderr, "crossflow ", log.LstdFlags)
			orchestrator.AcceptHook(sim.NewRunLogger(logger))
		}

		if runFlags.record {
			recorder := datarecording.New(resolveDBPath(runFlags.dbPath))
			orchestrator.AcceptHook(datarecording.NewRunRecorder(recorder))
		}

		if runFlags.monitor {
			monitor := monitoring.NewMonitor()
			if runFlags.monitorPort > 0 {
				monitor.WithPortNumber(runFlags.monitorPort)
			}
			if runFlags.openBrowser {
				monitor.WithBrowser()
			}
			monitor.Track("run", orchestrator)
			monitor.StartServer()
		}

		result, err := orchestrator.RunSimulation(
			sim.VTimeInSec(runFlags.timeStepSeconds))
		if err != nil {
			return err
		}

		printResult(cmd, "run", result)

		return nil
	},
}

func printResult(cmd *cobra.Command, name string, r sim.CompletedSimulation) {
	cmd.Printf("%s: permeate %.2f L, retentate %.2f L, "+
		"concentration %.2f g/L, time %.2f h\n",
		name, r.FinalPermeateVolume, r.FinalRetentateVolume,
		r.FinalConcentration, r.Time.Hours())
}

// resolveDBPath falls back to the CROSSFLOW_DB environment variable, then to
// an auto-generated name.
func resolveDBPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return envOr("CROSSFLOW_DB", "")
}

func init() {
	f := runCmd.Flags()

	f.Float64Var(&runFlags.volume, "volume", 1000.0,
		"initial hold-up volume (L)")
	f.Float64Var(&runFlags.concentration, "concentration", 10.0,
		"initial solute concentration (g/L)")
	f.Float64Var(&runFlags.tmp, "tmp", 500000.0,
		"trans-membrane pressure (Pa)")
	f.Float64Var(&runFlags.membraneArea, "area", 5.0,
		"membrane area (m²)")
	f.Float64Var(&runFlags.mwco, "mwco", 10000.0,
		"molecular weight cut-off (Da)")
	f.Float64Var(&runFlags.concentrationFactor, "concentration-factor", 5.0,
		"target concentration factor")
	f.Float64Var(&runFlags.soluteMW, "solute-mw", 0,
		"solute molecular weight (Da), defaults to casein")
	f.Float64Var(&runFlags.timeStepSeconds, "time-step",
		float64(sim.DefaultTimeStep), "integration time step (s)")
	f.Float64Var(&runFlags.maxHours, "max-hours", 0,
		"stop after this much simulated time (h)")

	f.BoolVar(&runFlags.record, "record", false,
		"record steps and results into a SQLite database")
	f.StringVar(&runFlags.dbPath, "db", "",
		"database path for --record (default CROSSFLOW_DB or generated)")
	f.BoolVar(&runFlags.monitor, "monitor", false,
		"serve live progress over HTTP")
	f.IntVar(&runFlags.monitorPort, "monitor-port", 0,
		"port for --monitor (default random)")
	f.BoolVar(&runFlags.openBrowser, "open", false,
		"open the monitor in a browser")
	f.BoolVar(&runFlags.verbose, "verbose", false,
		"log every step to stderr")

	rootCmd.AddCommand(runCmd)
}
