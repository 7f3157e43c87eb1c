package effects

// #region overlay

// Overlay copies every set (non-nil) field of src over dst and returns the
// result. Precedence is therefore explicit call order: whatever is overlaid
// last wins each field it sets. Fields src leaves nil keep dst's value.
func Overlay(dst, src EffectSet) EffectSet {
	dst.Environment = overlayEnvironment(dst.Environment, src.Environment)
	dst.Objects = overlayObjects(dst.Objects, src.Objects)
	dst.Tasks = overlayTasks(dst.Tasks, src.Tasks)
	dst.Interface = overlayInterface(dst.Interface, src.Interface)
	dst.Assistance = overlayAssistance(dst.Assistance, src.Assistance)
	return dst
}

// #endregion overlay

// #region per-namespace

func overlayEnvironment(dst, src EnvironmentEffects) EnvironmentEffects {
	if src.FrequentBreaks != nil {
		dst.FrequentBreaks = src.FrequentBreaks
	}
	if src.ReducedDistraction != nil {
		dst.ReducedDistraction = src.ReducedDistraction
	}
	if src.AmbientVolume != nil {
		dst.AmbientVolume = src.AmbientVolume
	}
	if src.SessionLength != nil {
		dst.SessionLength = src.SessionLength
	}
	return dst
}

func overlayObjects(dst, src ObjectEffects) ObjectEffects {
	if src.Scale != nil {
		dst.Scale = src.Scale
	}
	if src.Spacing != nil {
		dst.Spacing = src.Spacing
	}
	if src.Contrast != nil {
		dst.Contrast = src.Contrast
	}
	if src.Highlight != nil {
		dst.Highlight = src.Highlight
	}
	if src.SnapToTarget != nil {
		dst.SnapToTarget = src.SnapToTarget
	}
	return dst
}

func overlayTasks(dst, src TaskEffects) TaskEffects {
	if src.Difficulty != nil {
		dst.Difficulty = src.Difficulty
	}
	if src.StepGranularity != nil {
		dst.StepGranularity = src.StepGranularity
	}
	if src.TimeLimit != nil {
		dst.TimeLimit = src.TimeLimit
	}
	if src.RepeatInstructions != nil {
		dst.RepeatInstructions = src.RepeatInstructions
	}
	return dst
}

func overlayInterface(dst, src InterfaceEffects) InterfaceEffects {
	if src.Contrast != nil {
		dst.Contrast = src.Contrast
	}
	if src.TextScale != nil {
		dst.TextScale = src.TextScale
	}
	if src.AudioCues != nil {
		dst.AudioCues = src.AudioCues
	}
	if src.Captions != nil {
		dst.Captions = src.Captions
	}
	if src.SimplifiedLayout != nil {
		dst.SimplifiedLayout = src.SimplifiedLayout
	}
	if src.InputMode != nil {
		dst.InputMode = src.InputMode
	}
	return dst
}

func overlayAssistance(dst, src AssistanceEffects) AssistanceEffects {
	if src.Level != nil {
		dst.Level = src.Level
	}
	if src.StepPrompts != nil {
		dst.StepPrompts = src.StepPrompts
	}
	if src.Narration != nil {
		dst.Narration = src.Narration
	}
	if src.VisualGuides != nil {
		dst.VisualGuides = src.VisualGuides
	}
	if src.Checklists != nil {
		dst.Checklists = src.Checklists
	}
	return dst
}

// #endregion per-namespace

// #region zero-checks

// IsZero reports whether the set carries no instruction in any namespace.
func (s EffectSet) IsZero() bool {
	return s.Environment == (EnvironmentEffects{}) &&
		s.Objects == (ObjectEffects{}) &&
		s.Tasks == (TaskEffects{}) &&
		s.Interface == (InterfaceEffects{}) &&
		s.Assistance == (AssistanceEffects{})
}

// #endregion zero-checks
