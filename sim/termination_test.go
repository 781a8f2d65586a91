package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ConcentrationFactorCriterion", func() {
	It("should fire once the target factor is reached", func() {
		c := NewConcentrationFactorCriterion(10.0, 5.0)

		Expect(c.ShouldTerminate(SimulationState{Concentration: 49.9})).
			To(BeFalse())
		Expect(c.ShouldTerminate(SimulationState{Concentration: 50.0})).
			To(BeTrue())
		Expect(c.ShouldTerminate(SimulationState{Concentration: 60.0})).
			To(BeTrue())
	})
})

var _ = Describe("MolecularWeightCriterion", func() {
	It("should never fire as a stop trigger", func() {
		c := NewMolecularWeightCriterion(CaseinMolecularWeight, 500000.0)

		Expect(c.ShouldTerminate(SimulationState{})).To(BeFalse())
		Expect(c.Consistent()).To(BeFalse())
	})

	It("should report a fully retained solute as consistent", func() {
		c := NewMolecularWeightCriterion(CaseinMolecularWeight, 10000.0)

		Expect(c.Consistent()).To(BeTrue())
	})
})

var _ = Describe("MaxSimulationTimeCriterion", func() {
	It("should fire at the time bound", func() {
		c := NewMaxSimulationTimeCriterion(10 * OneHour)

		Expect(c.ShouldTerminate(SimulationState{ElapsedTime: 9 * OneHour})).
			To(BeFalse())
		Expect(c.ShouldTerminate(SimulationState{ElapsedTime: 10 * OneHour})).
			To(BeTrue())
	})
})
