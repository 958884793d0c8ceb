package domain

// Stage is the extraction pipeline's state. Transitions are strictly
// sequential and no stage is re-entered; Aborted is only reachable from
// Classifying, when a mandatory document class is empty.
type Stage int

const (
	StageIdle Stage = iota
	StageClassifying
	StageStringPass
	StageItemPass
	StageOtherPass
	StageAggregating
	StageDone
	StageAborted
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageClassifying:
		return "classifying"
	case StageStringPass:
		return "string pass"
	case StageItemPass:
		return "item pass"
	case StageOtherPass:
		return "other pass"
	case StageAggregating:
		return "aggregating"
	case StageDone:
		return "done"
	case StageAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
