// Package monitoring turns filtration simulations into an HTTP server that
// reports live run progress, orchestrator state, process resources, and
// Prometheus metrics.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/membranelab/crossflow/sim"
)

// Monitor allows external monitoring of filtration runs.
type Monitor struct {
	portNumber  int
	openBrowser bool

	metrics *Metrics

	runsLock      sync.Mutex
	runs          []*RunProgress
	orchestrators map[string]*sim.FiltrationOrchestrator
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:       NewMetrics(),
		orchestrators: make(map[string]*sim.FiltrationOrchestrator),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the run listing in a browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// Metrics returns the Prometheus collectors the monitor maintains.
func (m *Monitor) Metrics() *Metrics {
	return m.metrics
}

// Track registers an orchestrator under the given name and attaches a hook
// that keeps the monitor's progress record and metrics up to date. The
// returned RunProgress reflects the run as it executes.
func (m *Monitor) Track(
	name string,
	orchestrator *sim.FiltrationOrchestrator,
) *RunProgress {
	targetRetentate := orchestrator.InitialVolume() /
		orchestrator.ConcentrationFactor()

	p := &RunProgress{
		ID:                   xid.New().String(),
		Name:                 name,
		TargetPermeateVolume: orchestrator.InitialVolume() - targetRetentate,
	}

	m.runsLock.Lock()
	m.runs = append(m.runs, p)
	m.orchestrators[p.ID] = orchestrator
	m.runsLock.Unlock()

	orchestrator.AcceptHook(&runTracker{
		monitor:      m,
		progress:     p,
		orchestrator: orchestrator,
	})

	return p
}

// runTracker is the hook that feeds a Monitor.
type runTracker struct {
	monitor      *Monitor
	progress     *RunProgress
	orchestrator *sim.FiltrationOrchestrator
}

func (t *runTracker) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case sim.HookPosRunStart:
		t.progress.Start()
	case sim.HookPosStepComplete:
		info, ok := ctx.Item.(sim.StepInfo)
		if !ok {
			return
		}

		permeate := t.orchestrator.InitialVolume() - info.State.Volume
		t.progress.Update(
			permeate,
			info.State.Concentration,
			float64(info.State.ElapsedTime),
		)

		metrics := t.monitor.metrics
		metrics.StepsTotal.Inc()
		metrics.PermeateVolume.WithLabelValues(t.progress.Name).Set(permeate)
		metrics.Concentration.WithLabelValues(t.progress.Name).
			Set(info.State.Concentration)
	case sim.HookPosRunTerminate:
		info, ok := ctx.Item.(sim.TerminationInfo)
		if !ok {
			return
		}

		t.progress.Complete(info.Reason)
		t.monitor.metrics.RunsCompleted.WithLabelValues(info.Reason).Inc()
	}
}

// StartServer starts the monitor as a web server, on the configured port or
// a random one.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/runs", m.listRuns)
	r.HandleFunc("/api/run/{id}", m.runState)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.Handle("/metrics", m.metrics.Handler())

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	if m.openBrowser {
		_ = browser.OpenURL(url + "/api/runs")
	}

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()
}

func (m *Monitor) listRuns(w http.ResponseWriter, _ *http.Request) {
	m.runsLock.Lock()
	defer m.runsLock.Unlock()

	bytes, err := json.Marshal(m.runs)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) runState(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	m.runsLock.Lock()
	orchestrator, ok := m.orchestrators[id]
	m.runsLock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Run not found"))
		dieOnErr(err)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(orchestrator)
	serializer.SetMaxDepth(2)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
