package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageTransitions(t *testing.T) {
	cases := []struct {
		from    Stage
		to      Stage
		allowed bool
	}{
		{StageNew, StageInProgress, true},
		{StageNew, StageScrap, true},
		{StageNew, StageRepaired, false},
		{StageInProgress, StageRepaired, true},
		{StageInProgress, StageScrap, true},
		{StageInProgress, StageNew, false},
		{StageRepaired, StageScrap, true},
		{StageRepaired, StageInProgress, false},
		{StageScrap, StageNew, false},
		{StageScrap, StageInProgress, false},
		{StageScrap, StageRepaired, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStageSameStageAlwaysAllowed(t *testing.T) {
	for _, s := range AllStages {
		assert.True(t, s.CanTransitionTo(s), "%s -> %s", s, s)
	}
}

func TestStageInvalidTargets(t *testing.T) {
	assert.False(t, StageNew.CanTransitionTo(Stage("done")))
	assert.False(t, Stage("bogus").CanTransitionTo(StageScrap))
}

func TestStageTerminal(t *testing.T) {
	assert.True(t, StageScrap.Terminal())
	assert.False(t, StageNew.Terminal())
	assert.False(t, StageInProgress.Terminal())
	assert.False(t, StageRepaired.Terminal())
}

func TestParseStage(t *testing.T) {
	s, ok := ParseStage("in_progress")
	assert.True(t, ok)
	assert.Equal(t, StageInProgress, s)

	_, ok = ParseStage("inprogress")
	assert.False(t, ok)
}
