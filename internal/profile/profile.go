package profile

// #region learning-enums

// LearningStyle describes the user's preferred learning modality.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleMixed       LearningStyle = "mixed"
)

// Pace describes the user's preferred task pacing.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// Complexity describes the user's preferred task complexity.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// #endregion learning-enums

// #region learning-profile

// LearningProfile bundles the user's learning-style preferences.
type LearningProfile struct {
	Style      LearningStyle `json:"style"`
	Pace       Pace          `json:"pace"`
	Complexity Complexity    `json:"complexity"`
}

// #endregion learning-profile

// #region profile

// Profile is a read-only snapshot of the user's per-dimension ability
// scores (each 1-10) and learning preferences. The assessment collaborator
// owns mutation; the controller only reads snapshots.
type Profile struct {
	UserID string `json:"user_id"`

	FineMotor  int `json:"fine_motor"`
	GrossMotor int `json:"gross_motor"`
	Visual     int `json:"visual"`
	Auditory   int `json:"auditory"`
	Cognitive  int `json:"cognitive"`
	Attention  int `json:"attention"`
	Memory     int `json:"memory"`
	Processing int `json:"processing"`

	Learning LearningProfile `json:"learning"`
}

// Default returns a mid-scale profile with mixed-style preferences.
func Default(userID string) Profile {
	return Profile{
		UserID:     userID,
		FineMotor:  5,
		GrossMotor: 5,
		Visual:     5,
		Auditory:   5,
		Cognitive:  5,
		Attention:  5,
		Memory:     5,
		Processing: 5,
		Learning: LearningProfile{
			Style:      StyleMixed,
			Pace:       PaceNormal,
			Complexity: ComplexityMedium,
		},
	}
}

// #endregion profile

// #region clamp

// Clamp returns a copy with every dimension pinned into [1, 10] and empty
// learning preferences replaced by their mixed/normal/medium defaults.
// Malformed snapshots normalize rather than fail.
func (p Profile) Clamp() Profile {
	p.FineMotor = clampDim(p.FineMotor)
	p.GrossMotor = clampDim(p.GrossMotor)
	p.Visual = clampDim(p.Visual)
	p.Auditory = clampDim(p.Auditory)
	p.Cognitive = clampDim(p.Cognitive)
	p.Attention = clampDim(p.Attention)
	p.Memory = clampDim(p.Memory)
	p.Processing = clampDim(p.Processing)

	if p.Learning.Style == "" {
		p.Learning.Style = StyleMixed
	}
	if p.Learning.Pace == "" {
		p.Learning.Pace = PaceNormal
	}
	if p.Learning.Complexity == "" {
		p.Learning.Complexity = ComplexityMedium
	}
	return p
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// #endregion clamp
