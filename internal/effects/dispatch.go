package effects

import "go.uber.org/zap"

// #region applier-interfaces

// Each collaborator implements only the namespace it consumes and ignores
// the other four notifications entirely.

// EnvironmentApplier consumes environment adjustments (navigation/scene).
type EnvironmentApplier interface {
	ApplyEnvironment(EnvironmentEffects)
}

// ObjectApplier consumes object adjustments (rendering/highlighting).
type ObjectApplier interface {
	ApplyObjects(ObjectEffects)
}

// TaskApplier consumes task adjustments (task runner).
type TaskApplier interface {
	ApplyTasks(TaskEffects)
}

// InterfaceApplier consumes interface adjustments (UI theming).
type InterfaceApplier interface {
	ApplyInterface(InterfaceEffects)
}

// AssistanceApplier consumes assistance adjustments (narration/guidance).
type AssistanceApplier interface {
	ApplyAssistance(AssistanceEffects)
}

// #endregion applier-interfaces

// #region registry

// Registry fans an EffectSet out to registered collaborators, one
// independent notification per namespace.
type Registry struct {
	environment []EnvironmentApplier
	objects     []ObjectApplier
	tasks       []TaskApplier
	ui          []InterfaceApplier
	assistance  []AssistanceApplier
	logger      *zap.Logger
}

// NewRegistry creates an empty dispatch registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

// RegisterEnvironment adds an environment collaborator.
func (r *Registry) RegisterEnvironment(a EnvironmentApplier) { r.environment = append(r.environment, a) }

// RegisterObjects adds an object collaborator.
func (r *Registry) RegisterObjects(a ObjectApplier) { r.objects = append(r.objects, a) }

// RegisterTasks adds a task collaborator.
func (r *Registry) RegisterTasks(a TaskApplier) { r.tasks = append(r.tasks, a) }

// RegisterInterface adds an interface collaborator.
func (r *Registry) RegisterInterface(a InterfaceApplier) { r.ui = append(r.ui, a) }

// RegisterAssistance adds an assistance collaborator.
func (r *Registry) RegisterAssistance(a AssistanceApplier) { r.assistance = append(r.assistance, a) }

// #endregion registry

// #region dispatch

// Dispatch delivers each non-empty namespace to its collaborators.
// Delivery is synchronous and runs after a decision is fully merged, so
// collaborators never observe a half-built set.
func (r *Registry) Dispatch(set EffectSet) {
	delivered := 0
	if set.Environment != (EnvironmentEffects{}) {
		for _, a := range r.environment {
			a.ApplyEnvironment(set.Environment)
			delivered++
		}
	}
	if set.Objects != (ObjectEffects{}) {
		for _, a := range r.objects {
			a.ApplyObjects(set.Objects)
			delivered++
		}
	}
	if set.Tasks != (TaskEffects{}) {
		for _, a := range r.tasks {
			a.ApplyTasks(set.Tasks)
			delivered++
		}
	}
	if set.Interface != (InterfaceEffects{}) {
		for _, a := range r.ui {
			a.ApplyInterface(set.Interface)
			delivered++
		}
	}
	if set.Assistance != (AssistanceEffects{}) {
		for _, a := range r.assistance {
			a.ApplyAssistance(set.Assistance)
			delivered++
		}
	}
	r.logger.Debug("dispatched effect set", zap.Int("notifications", delivered))
}

// #endregion dispatch
