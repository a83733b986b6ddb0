package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

func newTestRequestService(repo *fakeRequestRepo, history *fakeHistoryRepo) RequestServiceInterface {
	return NewRequestService(repo, history, &fakeTxManager{}, nil, zap.NewNop())
}

func seedCatalog(repo *fakeRequestRepo) (equipmentID, teamID, actorID uuid.UUID) {
	equipmentID = uuid.New()
	teamID = uuid.New()
	actorID = uuid.New()

	repo.gear[equipmentID] = dto.ShortEquipmentDTO{ID: equipmentID.String(), Name: "Press-1", SerialNumber: "PRS-2021-001"}
	repo.teams[teamID] = dto.ShortTeamDTO{ID: teamID.String(), Name: "Mechanics"}
	repo.people[actorID] = "Jordan Reyes"
	return equipmentID, teamID, actorID
}

func TestCreateRequestThenList(t *testing.T) {
	repo := newFakeRequestRepo()
	history := &fakeHistoryRepo{}
	svc := newTestRequestService(repo, history)

	equipmentID, teamID, actorID := seedCatalog(repo)
	teamIDStr := teamID.String()

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "  Hydraulic leak  ",
		EquipmentID: equipmentID.String(),
		TeamID:      &teamIDStr,
		Type:        "corrective",
		Priority:    "high",
	}, actorID)
	require.NoError(t, err)

	assert.Equal(t, "Hydraulic leak", created.Subject, "subject is trimmed")
	assert.Equal(t, "new", created.Stage, "requests always start in new")
	assert.Equal(t, "Press-1", created.Equipment.Name)
	require.NotNil(t, created.Team)
	assert.Equal(t, "Mechanics", created.Team.Name)
	assert.Equal(t, "Jordan Reyes", created.Creator.FullName)

	listed, err := svc.GetRequests(context.Background(), dto.RequestFilterDTO{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// creation writes no history
	assert.Empty(t, history.entries)
}

func TestCreateRequestEmptySubject(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestRequestService(repo, &fakeHistoryRepo{})
	equipmentID, _, actorID := seedCatalog(repo)

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "   ",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "low",
	}, actorID)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
}

func TestRequestFilterBySearch(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestRequestService(repo, &fakeHistoryRepo{})
	equipmentID, _, actorID := seedCatalog(repo)

	for _, subject := range []string{"Hydraulic leak", "Broken belt"} {
		_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
			Subject:     subject,
			EquipmentID: equipmentID.String(),
			Type:        "corrective",
			Priority:    "normal",
		}, actorID)
		require.NoError(t, err)
	}

	// matches the subject
	found, err := svc.GetRequests(context.Background(), dto.RequestFilterDTO{Search: "hydraulic"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Hydraulic leak", found[0].Subject)

	// matches the equipment name, so both requests qualify
	found, err = svc.GetRequests(context.Background(), dto.RequestFilterDTO{Search: "press"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestTransitionWritesHistory(t *testing.T) {
	repo := newFakeRequestRepo()
	history := &fakeHistoryRepo{names: map[uuid.UUID]string{}}
	svc := newTestRequestService(repo, history)
	equipmentID, _, actorID := seedCatalog(repo)
	history.names[actorID] = "Jordan Reyes"

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Spindle vibration",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "urgent",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	moved, err := svc.Transition(context.Background(), id, entities.StageInProgress, actorID)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", moved.Stage)

	entries, err := svc.GetHistory(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].OldStage)
	assert.Equal(t, "in_progress", entries[0].NewStage)
	assert.Equal(t, "Jordan Reyes", entries[0].ChangedBy.FullName)
}

func TestTransitionRejectsInvalidMove(t *testing.T) {
	repo := newFakeRequestRepo()
	history := &fakeHistoryRepo{}
	svc := newTestRequestService(repo, history)
	equipmentID, _, actorID := seedCatalog(repo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Worn rollers",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "low",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// new -> repaired skips in_progress and is rejected
	_, err = svc.Transition(context.Background(), id, entities.StageRepaired, actorID)
	require.Error(t, err)

	// the stage is untouched and no history was written
	current, err := svc.FindRequest(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "new", current.Stage)
	assert.Empty(t, history.entries)
}

func TestTransitionOutOfScrapRejected(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestRequestService(repo, &fakeHistoryRepo{})
	equipmentID, _, actorID := seedCatalog(repo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Beyond repair",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "low",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Transition(context.Background(), id, entities.StageScrap, actorID)
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), id, entities.StageNew, actorID)
	assert.Error(t, err, "scrap is terminal")
}

func TestSameStageTransitionIsAudited(t *testing.T) {
	repo := newFakeRequestRepo()
	history := &fakeHistoryRepo{}
	svc := newTestRequestService(repo, history)
	equipmentID, _, actorID := seedCatalog(repo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Dropped onto same column twice",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "normal",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	for i := 0; i < 2; i++ {
		_, err = svc.Transition(context.Background(), id, entities.StageNew, actorID)
		require.NoError(t, err)
	}

	entries, err := svc.GetHistory(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "new", entry.OldStage)
		assert.Equal(t, "new", entry.NewStage)
	}
}

func TestUpdateRequestNeverTouchesStageOrHistory(t *testing.T) {
	repo := newFakeRequestRepo()
	history := &fakeHistoryRepo{}
	svc := newTestRequestService(repo, history)
	equipmentID, _, actorID := seedCatalog(repo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Initial subject",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "normal",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	updated, err := svc.UpdateRequest(context.Background(), id, dto.UpdateRequestDTO{
		Subject:  null.StringFrom("Renamed subject"),
		Priority: null.StringFrom("urgent"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed subject", updated.Subject)
	assert.Equal(t, "urgent", updated.Priority)
	assert.Equal(t, "new", updated.Stage)
	assert.Empty(t, history.entries, "field edits are not audited")
}

func TestUpdateRequestClearsTeamWithEmptyString(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestRequestService(repo, &fakeHistoryRepo{})
	equipmentID, teamID, actorID := seedCatalog(repo)
	teamIDStr := teamID.String()

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Assigned then unassigned",
		EquipmentID: equipmentID.String(),
		TeamID:      &teamIDStr,
		Type:        "corrective",
		Priority:    "normal",
	}, actorID)
	require.NoError(t, err)
	require.NotNil(t, created.Team)

	updated, err := svc.UpdateRequest(context.Background(), uuid.MustParse(created.ID), dto.UpdateRequestDTO{
		TeamID: null.StringFrom(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Team)
}

func TestDeleteRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestRequestService(repo, &fakeHistoryRepo{})
	equipmentID, _, actorID := seedCatalog(repo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "To be deleted",
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
		Priority:    "low",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.DeleteRequest(context.Background(), id))

	_, err = svc.FindRequest(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.DeleteRequest(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))
}
