package entities

// Stage is the lifecycle state of a maintenance request.
type Stage string

const (
	StageNew        Stage = "new"
	StageInProgress Stage = "in_progress"
	StageRepaired   Stage = "repaired"
	StageScrap      Stage = "scrap"
)

// AllStages lists the stages in kanban column order.
var AllStages = []Stage{StageNew, StageInProgress, StageRepaired, StageScrap}

// stageTransitions is the explicit transition table. Scrap is reachable from
// every stage and has no way out. Same-stage transitions are allowed
// separately in CanTransitionTo: a kanban drop onto the current column is a
// valid (and audited) move.
var stageTransitions = map[Stage][]Stage{
	StageNew:        {StageInProgress, StageScrap},
	StageInProgress: {StageRepaired, StageScrap},
	StageRepaired:   {StageScrap},
	StageScrap:      {},
}

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageInProgress, StageRepaired, StageScrap:
		return true
	}
	return false
}

func (s Stage) String() string {
	return string(s)
}

// CanTransitionTo reports whether the move from s to target is permitted.
func (s Stage) CanTransitionTo(target Stage) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	if s == target {
		return true
	}
	for _, next := range stageTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no other stage is reachable from s.
func (s Stage) Terminal() bool {
	return len(stageTransitions[s]) == 0
}

func ParseStage(raw string) (Stage, bool) {
	s := Stage(raw)
	return s, s.Valid()
}
