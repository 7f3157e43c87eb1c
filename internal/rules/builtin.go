package rules

// #region imports
import (
	"github.com/ableworks/adaptive-trainer/internal/effects"
	"github.com/ableworks/adaptive-trainer/internal/profile"
)

// #endregion

// #region builtin-rules

// Builtin returns the static rule table. Declaration order matters: rules
// of equal priority merge in this order, later declared winning shared
// fields. Callers must not mutate the returned slice.
func Builtin() []Rule {
	return []Rule{
		{
			Name:     "fine-motor-support",
			Priority: PriorityHigh,
			Condition: func(p profile.Profile) bool {
				return p.FineMotor <= 4
			},
			Effects: effects.EffectSet{
				Objects: effects.ObjectEffects{
					Scale:        effects.Mult(1.5, 1.0, 2.5),
					Spacing:      effects.Mult(1.3, 1.0, 2.0),
					SnapToTarget: effects.Bool(true),
				},
			},
		},
		{
			Name:     "gross-motor-support",
			Priority: PriorityMedium,
			Condition: func(p profile.Profile) bool {
				return p.GrossMotor <= 4
			},
			Effects: effects.EffectSet{
				Tasks: effects.TaskEffects{
					TimeLimit: effects.Mult(1.5, 1.0, 3.0),
				},
				Interface: effects.InterfaceEffects{
					InputMode: effects.InputModeOf(effects.InputDwell),
				},
			},
		},
		{
			Name:     "low-vision-support",
			Priority: PriorityHigh,
			Condition: func(p profile.Profile) bool {
				return p.Visual <= 4
			},
			Effects: effects.EffectSet{
				Objects: effects.ObjectEffects{
					Contrast:  effects.ContrastOf(effects.ContrastHigh),
					Highlight: effects.Bool(true),
				},
				Interface: effects.InterfaceEffects{
					Contrast:  effects.ContrastOf(effects.ContrastHigh),
					TextScale: effects.Mult(1.5, 1.0, 2.5),
					AudioCues: effects.Bool(true),
				},
			},
		},
		{
			Name:     "low-hearing-support",
			Priority: PriorityMedium,
			Condition: func(p profile.Profile) bool {
				return p.Auditory <= 4
			},
			Effects: effects.EffectSet{
				Interface: effects.InterfaceEffects{
					Captions: effects.Bool(true),
				},
				Assistance: effects.AssistanceEffects{
					VisualGuides: effects.Bool(true),
				},
			},
		},
		{
			Name:     "cognitive-support",
			Priority: PriorityHigh,
			Condition: func(p profile.Profile) bool {
				return p.Cognitive <= 5
			},
			Effects: effects.EffectSet{
				Tasks: effects.TaskEffects{
					Difficulty:      effects.DifficultyOf(effects.DifficultyEasy),
					StepGranularity: effects.GranularityOf(effects.GranularityFine),
				},
				Interface: effects.InterfaceEffects{
					SimplifiedLayout: effects.Bool(true),
				},
				Assistance: effects.AssistanceEffects{
					StepPrompts: effects.Bool(true),
				},
			},
		},
		{
			Name:     "attention-support",
			Priority: PriorityHigh,
			Condition: func(p profile.Profile) bool {
				return p.Attention <= 4
			},
			Effects: effects.EffectSet{
				Environment: effects.EnvironmentEffects{
					FrequentBreaks:     effects.Bool(true),
					ReducedDistraction: effects.Bool(true),
					SessionLength:      effects.Mult(0.75, 0.5, 1.0),
				},
			},
		},
		{
			Name:     "memory-support",
			Priority: PriorityMedium,
			Condition: func(p profile.Profile) bool {
				return p.Memory <= 4
			},
			Effects: effects.EffectSet{
				Tasks: effects.TaskEffects{
					RepeatInstructions: effects.Bool(true),
				},
				Assistance: effects.AssistanceEffects{
					Checklists: effects.Bool(true),
				},
			},
		},
		{
			Name:     "processing-support",
			Priority: PriorityMedium,
			Condition: func(p profile.Profile) bool {
				return p.Processing <= 4
			},
			Effects: effects.EffectSet{
				Environment: effects.EnvironmentEffects{
					AmbientVolume: effects.Mult(0.5, 0.0, 1.0),
				},
				Tasks: effects.TaskEffects{
					TimeLimit: effects.Mult(1.75, 1.0, 3.0),
				},
			},
		},
		{
			Name:     "visual-learner",
			Priority: PriorityLow,
			Condition: func(p profile.Profile) bool {
				return p.Learning.Style == profile.StyleVisual
			},
			Effects: effects.EffectSet{
				Assistance: effects.AssistanceEffects{
					VisualGuides: effects.Bool(true),
				},
			},
		},
		{
			Name:     "auditory-learner",
			Priority: PriorityLow,
			Condition: func(p profile.Profile) bool {
				return p.Learning.Style == profile.StyleAuditory
			},
			Effects: effects.EffectSet{
				Assistance: effects.AssistanceEffects{
					Narration: effects.Bool(true),
				},
			},
		},
		{
			Name:     "kinesthetic-learner",
			Priority: PriorityLow,
			Condition: func(p profile.Profile) bool {
				return p.Learning.Style == profile.StyleKinesthetic
			},
			Effects: effects.EffectSet{
				Tasks: effects.TaskEffects{
					StepGranularity: effects.GranularityOf(effects.GranularityFine),
				},
			},
		},
		{
			Name:     "slow-pace",
			Priority: PriorityLow,
			Condition: func(p profile.Profile) bool {
				return p.Learning.Pace == profile.PaceSlow
			},
			Effects: effects.EffectSet{
				Tasks: effects.TaskEffects{
					TimeLimit: effects.Mult(1.5, 1.0, 3.0),
				},
			},
		},
		{
			Name:     "low-complexity",
			Priority: PriorityLow,
			Condition: func(p profile.Profile) bool {
				return p.Learning.Complexity == profile.ComplexityLow
			},
			Effects: effects.EffectSet{
				Tasks: effects.TaskEffects{
					Difficulty: effects.DifficultyOf(effects.DifficultyEasy),
				},
			},
		},
	}
}

// #endregion builtin-rules
