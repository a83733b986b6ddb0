package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/dto"
)

func TestGroupByStageEmptyInput(t *testing.T) {
	columns := GroupByStage(nil)

	require.Len(t, columns, 4)
	assert.Equal(t, []string{"new", "in_progress", "repaired", "scrap"}, columnStages(columns))
	for _, col := range columns {
		assert.Zero(t, col.Count)
		assert.NotNil(t, col.Requests)
		assert.Empty(t, col.Requests)
	}
}

func TestGroupByStagePartition(t *testing.T) {
	requests := []dto.RequestDTO{
		{ID: "r1", Stage: "new"},
		{ID: "r2", Stage: "in_progress"},
		{ID: "r3", Stage: "new"},
		{ID: "r4", Stage: "scrap"},
		{ID: "r5", Stage: "new"},
	}

	columns := GroupByStage(requests)
	require.Len(t, columns, 4)

	// every request lands in exactly one column
	total := 0
	for _, col := range columns {
		total += col.Count
		assert.Len(t, col.Requests, col.Count)
	}
	assert.Equal(t, len(requests), total)

	// fetch order is preserved within columns
	newCol := columns[0]
	require.Equal(t, "new", newCol.Stage)
	assert.Equal(t, []string{"r1", "r3", "r5"}, requestIDs(newCol.Requests))

	assert.Equal(t, 1, columns[1].Count)
	assert.Equal(t, 0, columns[2].Count)
	assert.Equal(t, 1, columns[3].Count)
}

func columnStages(columns []dto.BoardColumnDTO) []string {
	stages := make([]string, 0, len(columns))
	for _, col := range columns {
		stages = append(stages, col.Stage)
	}
	return stages
}

func requestIDs(requests []dto.RequestDTO) []string {
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	return ids
}
