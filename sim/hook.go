package sim

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// HookPosRunStart is a hook position that triggers when a simulation run
// starts, before the first step. The Item is the initial SimulationState.
var HookPosRunStart = &HookPos{Name: "RunStart"}

// HookPosStepComplete is a hook position that triggers after each completed
// step. The Item is a StepInfo.
var HookPosStepComplete = &HookPos{Name: "StepComplete"}

// HookPosRunTerminate is a hook position that triggers when a termination
// criterion stops the run. The Item is a TerminationInfo.
var HookPosRunTerminate = &HookPos{Name: "RunTerminate"}

// HookPosConfigWarning is a hook position that triggers at the beginning of a
// run whose parameters sit outside the typical operating envelope. The Item
// is the warning message.
var HookPosConfigWarning = &HookPos{Name: "ConfigWarning"}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the register Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
