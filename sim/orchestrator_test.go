package sim

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

// captureHook records every hook invocation for inspection.
type captureHook struct {
	steps        []StepInfo
	terminations []TerminationInfo
	warnings     []string
	runStarts    int
}

func (h *captureHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosRunStart:
		h.runStarts++
	case HookPosStepComplete:
		h.steps = append(h.steps, ctx.Item.(StepInfo))
	case HookPosRunTerminate:
		h.terminations = append(h.terminations, ctx.Item.(TerminationInfo))
	case HookPosConfigWarning:
		h.warnings = append(h.warnings, ctx.Item.(string))
	}
}

func referenceBuilder() OrchestratorBuilder {
	return MakeOrchestratorBuilder().
		WithVolume(1000.0).
		WithConcentration(10.0).
		WithTMP(500000.0).
		WithMembraneArea(5.0).
		WithMWCO(10000.0).
		WithConcentrationFactor(5.0)
}

var _ = Describe("OrchestratorBuilder", func() {
	It("should reject a negative volume", func() {
		_, err := referenceBuilder().WithVolume(-1).Build()

		var vErr *ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Param).To(Equal("volume"))
	})

	It("should reject a zero tmp", func() {
		_, err := referenceBuilder().WithTMP(0).Build()

		var vErr *ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Param).To(Equal("tmp"))
	})

	It("should reject a concentration factor of 1", func() {
		_, err := referenceBuilder().WithConcentrationFactor(1).Build()

		var vErr *ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Param).To(Equal("concentration factor"))
	})

	It("should reject a zero membrane area", func() {
		_, err := referenceBuilder().WithMembraneArea(0).Build()

		var vErr *ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Param).To(Equal("membrane area"))
	})

	It("should build with valid parameters", func() {
		o, err := referenceBuilder().Build()

		Expect(err).To(BeNil())
		Expect(o).NotTo(BeNil())
		Expect(o.InitialVolume()).To(Equal(1000.0))
		Expect(o.InitialConcentration()).To(Equal(10.0))
	})
})

var _ = Describe("FiltrationOrchestrator", func() {
	var (
		mockCtrl     *gomock.Controller
		orchestrator *FiltrationOrchestrator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		var err error
		orchestrator, err = referenceBuilder().Build()
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should return the initial concentration at the initial volume", func() {
		c, err := orchestrator.CurrentConcentration(1000.0)

		Expect(err).To(BeNil())
		Expect(c).To(Equal(10.0))
	})

	It("should fail concentration at zero volume", func() {
		_, err := orchestrator.CurrentConcentration(0)

		var cErr *ComputationError
		Expect(errors.As(err, &cErr)).To(BeTrue())
		Expect(cErr.Quantity).To(Equal("concentration"))
	})

	It("should relate flux and flow rate by the membrane area", func() {
		for _, t := range []VTimeInSec{0, OneHour, 10 * OneHour, 100 * OneHour} {
			flowRate, err := orchestrator.CalculatePermeateFlowRate(t)
			Expect(err).To(BeNil())

			flux, err := orchestrator.CalculateFlux(t)
			Expect(err).To(BeNil())

			Expect(flux).To(BeNumerically("~", flowRate/5.0, 1e-12))
		}
	})

	It("should compute the Darcy flow rate at time zero", func() {
		flowRate, err := orchestrator.CalculatePermeateFlowRate(0)

		Expect(err).To(BeNil())
		// 500000 Pa × 5 m² / (0.001 Pa·s × 0.13e12 Pa·s/m) → L/h
		Expect(flowRate).To(BeNumerically("~", 19.2308, 1e-3))
	})

	It("should run the reference scenario to the concentration target",
		func() {
			hook := &captureHook{}
			orchestrator.AcceptHook(hook)

			result, err := orchestrator.RunSimulation(DefaultTimeStep)

			Expect(err).To(BeNil())
			Expect(result.FinalConcentration).
				To(BeNumerically("~", 50.0, 0.1))
			Expect(result.FinalRetentateVolume).
				To(BeNumerically("~", 200.0, 0.5))
			Expect(result.FinalPermeateVolume).
				To(BeNumerically("~", 800.0, 0.5))
			Expect(result.FinalPermeateVolume + result.FinalRetentateVolume).
				To(BeNumerically("~", 1000.0, 1e-9))

			Expect(hook.runStarts).To(Equal(1))
			Expect(hook.terminations).To(HaveLen(1))
			Expect(hook.terminations[0].Reason).
				To(Equal("concentration factor reached"))
			Expect(hook.terminations[0].Result).To(Equal(result))
		})

	It("should converge toward the same result with a smaller step", func() {
		orchestrator2, err := referenceBuilder().Build()
		Expect(err).To(BeNil())

		coarse, err := orchestrator.RunSimulation(DefaultTimeStep)
		Expect(err).To(BeNil())

		fine, err := orchestrator2.RunSimulation(DefaultTimeStep / 4)
		Expect(err).To(BeNil())

		Expect(fine.FinalRetentateVolume).
			To(BeNumerically("~", 200.0, 0.2))
		Expect(coarse.FinalRetentateVolume).
			To(BeNumerically("~", 200.0, 0.5))
	})

	It("should preserve the mass balance at every step", func() {
		hook := &captureHook{}
		orchestrator.AcceptHook(hook)

		_, err := orchestrator.RunSimulation(DefaultTimeStep)
		Expect(err).To(BeNil())

		for _, step := range hook.steps {
			Expect(step.State.Volume).To(BeNumerically(">=", 0.0))
			Expect(step.State.Concentration).To(BeNumerically(">=", 0.0))

			if step.State.Volume > 0 {
				Expect(step.State.Concentration * step.State.Volume).
					To(BeNumerically("~", 10.0*1000.0, 1e-6))
			}
		}
	})

	It("should reject a non-positive time step", func() {
		_, err := orchestrator.RunSimulation(0)

		var vErr *ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Param).To(Equal("time step"))
	})

	It("should scale the flow rate when the resistance model is swapped",
		func() {
			defaultModel := NewSimplifiedResistanceModel()
			constResistance := 0.2e12

			mockModel := NewMockResistanceModel(mockCtrl)
			mockModel.EXPECT().
				CalculateResistance(gomock.Any()).
				Return(constResistance).
				AnyTimes()

			swapped, err := referenceBuilder().
				WithResistanceModel(mockModel).
				Build()
			Expect(err).To(BeNil())

			for _, t := range []VTimeInSec{0, OneHour, 24 * OneHour} {
				defaultFlow, err := orchestrator.CalculatePermeateFlowRate(t)
				Expect(err).To(BeNil())

				swappedFlow, err := swapped.CalculatePermeateFlowRate(t)
				Expect(err).To(BeNil())

				ratio := defaultModel.CalculateResistance(t) / constResistance
				Expect(swappedFlow).
					To(BeNumerically("~", defaultFlow*ratio, 1e-9))
			}
		})

	It("should abort with a ComputationError on non-positive resistance",
		func() {
			mockModel := NewMockResistanceModel(mockCtrl)
			mockModel.EXPECT().
				CalculateResistance(gomock.Any()).
				Return(-1.0).
				AnyTimes()

			broken, err := referenceBuilder().
				WithResistanceModel(mockModel).
				Build()
			Expect(err).To(BeNil())

			_, err = broken.RunSimulation(DefaultTimeStep)

			var cErr *ComputationError
			Expect(errors.As(err, &cErr)).To(BeTrue())
			Expect(cErr.Quantity).To(Equal("resistance"))
		})

	It("should abort with a ComputationError on non-positive viscosity",
		func() {
			mockModel := NewMockViscosityModel(mockCtrl)
			mockModel.EXPECT().
				CalculateViscosity().
				Return(0.0).
				AnyTimes()

			broken, err := referenceBuilder().
				WithViscosityModel(mockModel).
				Build()
			Expect(err).To(BeNil())

			_, err = broken.RunSimulation(DefaultTimeStep)

			var cErr *ComputationError
			Expect(errors.As(err, &cErr)).To(BeTrue())
			Expect(cErr.Quantity).To(Equal("viscosity"))
		})

	It("should fail with a NonTerminationError when no criterion can fire",
		func() {
			// A low constant resistance drains the tank within a few steps.
			// The concentration is then held at its last defined value, so an
			// unreachable target can never be met.
			mockModel := NewMockResistanceModel(mockCtrl)
			mockModel.EXPECT().
				CalculateResistance(gomock.Any()).
				Return(1e9).
				AnyTimes()

			stuck, err := referenceBuilder().
				WithConcentrationFactor(1e9).
				WithResistanceModel(mockModel).
				WithMaxSteps(500).
				Build()
			Expect(err).To(BeNil())

			_, err = stuck.RunSimulation(DefaultTimeStep)

			var ntErr *NonTerminationError
			Expect(errors.As(err, &ntErr)).To(BeTrue())
			Expect(ntErr.Steps).To(Equal(500))
			Expect(ntErr.State.Volume).To(Equal(0.0))
		})

	It("should stop at a caller-supplied maximum simulation time", func() {
		bounded, err := referenceBuilder().
			WithConcentrationFactor(1e6).
			WithTerminationCriteria(
				NewMaxSimulationTimeCriterion(10 * OneHour)).
			Build()
		Expect(err).To(BeNil())

		hook := &captureHook{}
		bounded.AcceptHook(hook)

		result, err := bounded.RunSimulation(DefaultTimeStep)

		Expect(err).To(BeNil())
		Expect(result.Time).To(Equal(10 * OneHour))
		Expect(hook.terminations[0].Reason).
			To(Equal("maximum simulation time reached"))
	})

	It("should evaluate custom criteria after the defaults", func() {
		custom := NewMockTerminationCriterion(mockCtrl)
		custom.EXPECT().ShouldTerminate(gomock.Any()).Return(true).AnyTimes()
		custom.EXPECT().Name().Return("custom").AnyTimes()

		// The concentration target is reached in the same evaluation where
		// the custom criterion is satisfied; the default wins.
		always, err := referenceBuilder().
			WithConcentrationFactor(1.000001).
			WithTerminationCriteria(custom).
			Build()
		Expect(err).To(BeNil())

		hook := &captureHook{}
		always.AcceptHook(hook)

		_, err = always.RunSimulation(DefaultTimeStep)

		Expect(err).To(BeNil())
		Expect(hook.terminations[0].Reason).
			To(Equal("concentration factor reached"))
	})

	It("should warn when the solute does not exceed the cut-off", func() {
		inconsistent, err := referenceBuilder().
			WithMWCO(30000.0).
			WithTerminationCriteria(
				NewMaxSimulationTimeCriterion(OneHour)).
			Build()
		Expect(err).To(BeNil())

		hook := &captureHook{}
		inconsistent.AcceptHook(hook)

		_, err = inconsistent.RunSimulation(DefaultTimeStep)

		Expect(err).To(BeNil())
		Expect(hook.warnings).NotTo(BeEmpty())
		Expect(hook.warnings[0]).To(ContainSubstring("cut-off"))
	})

	It("should not warn for the reference configuration", func() {
		hook := &captureHook{}
		orchestrator.AcceptHook(hook)

		_, err := orchestrator.RunSimulation(DefaultTimeStep)

		Expect(err).To(BeNil())
		Expect(hook.warnings).To(BeEmpty())
	})

	It("should invoke hooks around the run", func() {
		hook := NewMockHook(mockCtrl)
		orchestrator.AcceptHook(hook)

		runStart := hook.EXPECT().
			Func(gomock.Cond(func(ctx HookCtx) bool {
				return ctx.Pos == HookPosRunStart
			}))
		hook.EXPECT().
			Func(gomock.Cond(func(ctx HookCtx) bool {
				return ctx.Pos == HookPosStepComplete
			})).
			MinTimes(1).
			After(runStart)
		hook.EXPECT().
			Func(gomock.Cond(func(ctx HookCtx) bool {
				return ctx.Pos == HookPosRunTerminate
			}))

		_, err := orchestrator.RunSimulation(DefaultTimeStep)
		Expect(err).To(BeNil())
	})
})
