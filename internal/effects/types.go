package effects

// #region value-enums

// Difficulty grades a task.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AssistanceLevel grades how much guidance the trainer provides.
type AssistanceLevel string

const (
	AssistanceMinimal   AssistanceLevel = "minimal"
	AssistanceModerate  AssistanceLevel = "moderate"
	AssistanceExtensive AssistanceLevel = "extensive"
)

// Contrast selects a rendering contrast mode.
type Contrast string

const (
	ContrastNormal Contrast = "normal"
	ContrastHigh   Contrast = "high"
)

// Granularity selects how finely task instructions are broken down.
type Granularity string

const (
	GranularityStandard Granularity = "standard"
	GranularityFine     Granularity = "fine"
)

// InputMode selects the pointing/selection scheme for the interface.
type InputMode string

const (
	InputPointer InputMode = "pointer"
	InputDwell   InputMode = "dwell"
	InputSwitch  InputMode = "switch"
)

// #endregion value-enums

// #region bounded-multiplier

// BoundedMultiplier is a numeric adjustment with hard bounds, so successive
// adaptations cannot push a parameter off the usable range.
type BoundedMultiplier struct {
	Multiplier float64 `json:"multiplier"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

// Clamped returns the multiplier pinned into [Min, Max].
func (b BoundedMultiplier) Clamped() float64 {
	if b.Multiplier < b.Min {
		return b.Min
	}
	if b.Multiplier > b.Max {
		return b.Max
	}
	return b.Multiplier
}

// #endregion bounded-multiplier

// #region namespaces

// EnvironmentEffects adjusts the simulated environment itself.
// Nil fields are "no instruction"; collaborators keep their current value.
type EnvironmentEffects struct {
	FrequentBreaks     *bool              `json:"frequent_breaks,omitempty"`
	ReducedDistraction *bool              `json:"reduced_distraction,omitempty"`
	AmbientVolume      *BoundedMultiplier `json:"ambient_volume,omitempty"`
	SessionLength      *BoundedMultiplier `json:"session_length,omitempty"`
}

// ObjectEffects adjusts interactable objects in the scene.
type ObjectEffects struct {
	Scale        *BoundedMultiplier `json:"scale,omitempty"`
	Spacing      *BoundedMultiplier `json:"spacing,omitempty"`
	Contrast     *Contrast          `json:"contrast,omitempty"`
	Highlight    *bool              `json:"highlight,omitempty"`
	SnapToTarget *bool              `json:"snap_to_target,omitempty"`
}

// TaskEffects adjusts task structure and demands.
type TaskEffects struct {
	Difficulty         *Difficulty        `json:"difficulty,omitempty"`
	StepGranularity    *Granularity       `json:"step_granularity,omitempty"`
	TimeLimit          *BoundedMultiplier `json:"time_limit,omitempty"`
	RepeatInstructions *bool              `json:"repeat_instructions,omitempty"`
}

// InterfaceEffects adjusts the UI layer.
type InterfaceEffects struct {
	Contrast         *Contrast          `json:"contrast,omitempty"`
	TextScale        *BoundedMultiplier `json:"text_scale,omitempty"`
	AudioCues        *bool              `json:"audio_cues,omitempty"`
	Captions         *bool              `json:"captions,omitempty"`
	SimplifiedLayout *bool              `json:"simplified_layout,omitempty"`
	InputMode        *InputMode         `json:"input_mode,omitempty"`
}

// AssistanceEffects adjusts guidance and prompting.
type AssistanceEffects struct {
	Level        *AssistanceLevel `json:"level,omitempty"`
	StepPrompts  *bool            `json:"step_prompts,omitempty"`
	Narration    *bool            `json:"narration,omitempty"`
	VisualGuides *bool            `json:"visual_guides,omitempty"`
	Checklists   *bool            `json:"checklists,omitempty"`
}

// #endregion namespaces

// #region effect-set

// EffectSet is the full adaptation instruction bundle across the five
// disjoint namespaces. Each namespace is dispatched independently.
type EffectSet struct {
	Environment EnvironmentEffects `json:"environment"`
	Objects     ObjectEffects      `json:"objects"`
	Tasks       TaskEffects        `json:"tasks"`
	Interface   InterfaceEffects   `json:"interface"`
	Assistance  AssistanceEffects  `json:"assistance"`
}

// #endregion effect-set

// #region pointer-helpers

// Bool returns a pointer to v, for building effect literals.
func Bool(v bool) *bool { return &v }

// Mult returns a pointer to a BoundedMultiplier.
func Mult(multiplier, min, max float64) *BoundedMultiplier {
	return &BoundedMultiplier{Multiplier: multiplier, Min: min, Max: max}
}

// DifficultyOf returns a pointer to d.
func DifficultyOf(d Difficulty) *Difficulty { return &d }

// AssistanceOf returns a pointer to a.
func AssistanceOf(a AssistanceLevel) *AssistanceLevel { return &a }

// ContrastOf returns a pointer to c.
func ContrastOf(c Contrast) *Contrast { return &c }

// GranularityOf returns a pointer to g.
func GranularityOf(g Granularity) *Granularity { return &g }

// InputModeOf returns a pointer to m.
func InputModeOf(m InputMode) *InputMode { return &m }

// #endregion pointer-helpers
