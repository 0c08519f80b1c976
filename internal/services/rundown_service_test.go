package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jaktrip/internal/models/db_models"
	"jaktrip/internal/models/request_models"
	"jaktrip/internal/planner"
	mem "jaktrip/pkg/memcache"
	"jaktrip/pkg/utils"
)

func newRundownService(destRepo *mockDestinationRepo, rundownRepo *mockRundownRepo) RundownServiceInterface {
	dest := NewDestinationService(destRepo, mem.NewSnapshots[[]planner.RawDestination](), time.Minute)
	return NewRundownService(dest, rundownRepo, planner.DefaultTuning())
}

func sampleRundown() planner.Rundown {
	return planner.Rundown{
		Title: "Jakarta Trip - Full Day (09:00 - 19:00)",
		Itinerary: []planner.ItineraryItem{
			{Time: "09:00", Activity: "🏛️ Sejarah - Museum Nasional", Duration: "2 hr", Kind: planner.SlotActivity, Area: planner.AreaCentral, CategoryName: "Sejarah", DestinationID: "d1"},
			{Time: "12:00", Activity: "🍜 Lunch", Duration: "1 hr", Kind: planner.SlotLunch, Area: planner.AreaCentral},
		},
		BudgetEstimation: "Rp 170.000 - Rp 230.000/pax",
		TripDetails: planner.TripDetails{
			Preferences: planner.Preferences{Duration: planner.DurationFullDay},
		},
	}
}

func TestGenerateRundown_UsesCatalogAndEnrichesPreselected(t *testing.T) {
	destRepo := new(mockDestinationRepo)
	rows := catalogRows()
	destRepo.On("ListAll", mock.Anything).Return(rows, nil).Once()

	svc := newRundownService(destRepo, new(mockRundownRepo))
	museumID := rows[2].ID.String()

	r := svc.GenerateRundown(context.Background(), request_models.GenerateRundownRequest{
		Preferences: request_models.PreferencesRequest{StartTime: "09:00"},
		Preselected: []planner.RawDestination{{ID: museumID}},
	})

	require.False(t, r.Failed(), r.Error)
	require.NotEmpty(t, r.Itinerary)
	assert.Equal(t, museumID, r.Itinerary[0].DestinationID)
	assert.Equal(t, planner.AreaCentral, r.Itinerary[0].Area)
	assert.Contains(t, r.Itinerary[0].Activity, "Museum Nasional")
	destRepo.AssertExpectations(t)
}

func TestGenerateRundown_CatalogFailureStillProducesPlan(t *testing.T) {
	destRepo := new(mockDestinationRepo)
	destRepo.On("ListAll", mock.Anything).Return(nil, errors.New("down"))

	svc := newRundownService(destRepo, new(mockRundownRepo))
	r := svc.GenerateRundown(context.Background(), request_models.GenerateRundownRequest{})

	require.False(t, r.Failed())
	assert.Len(t, r.Itinerary, 4)
	assert.Equal(t, "Rp 170.000 - Rp 230.000/pax", r.BudgetEstimation)
}

func TestGenerateRundown_SoftFailure(t *testing.T) {
	destRepo := new(mockDestinationRepo)
	destRepo.On("ListAll", mock.Anything).Return(catalogRows(), nil)

	svc := newRundownService(destRepo, new(mockRundownRepo))
	r := svc.GenerateRundown(context.Background(), request_models.GenerateRundownRequest{
		Preferences: request_models.PreferencesRequest{StartTime: "99:99"},
	})

	assert.True(t, r.Failed())
	assert.Equal(t, "N/A", r.BudgetEstimation)
	assert.Empty(t, r.Itinerary)
}

func TestSaveRundown(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	id := uuid.New()
	rundownRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *db_models.SavedRundown) bool {
		return r.UserID == "user-1" && r.Title == "Weekend with family" && len(r.Items) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*db_models.SavedRundown).ID = id
	}).Return(nil)

	svc := newRundownService(new(mockDestinationRepo), rundownRepo)
	got, err := svc.SaveRundown(context.Background(), "user-1", sampleRundown(), "Weekend with family")

	require.NoError(t, err)
	assert.Equal(t, id.String(), got)
	rundownRepo.AssertExpectations(t)
}

func TestSaveRundown_Rejections(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	svc := newRundownService(new(mockDestinationRepo), rundownRepo)

	_, err := svc.SaveRundown(context.Background(), "", sampleRundown(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.SaveRundown(context.Background(), "user-1", planner.Rundown{}, "")
	assert.ErrorIs(t, err, utils.ErrInvalidRundown)

	broken := sampleRundown()
	broken.Itinerary[1].Activity = " "
	_, err = svc.SaveRundown(context.Background(), "user-1", broken, "")
	assert.ErrorIs(t, err, utils.ErrInvalidRundown)
	assert.Contains(t, err.Error(), "item 2")

	rundownRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaveRundown_DatabaseError(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	rundownRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	svc := newRundownService(new(mockDestinationRepo), rundownRepo)
	_, err := svc.SaveRundown(context.Background(), "user-1", sampleRundown(), "")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestFormatForStorage_Defaults(t *testing.T) {
	r := sampleRundown()
	r.Title = ""
	r.BudgetEstimation = ""
	r.TripDetails.Preferences.Duration = ""

	got := FormatForStorage("user-1", r, "")
	assert.Equal(t, "My Jakarta Trip", got.Title)
	assert.Equal(t, "Generated rundown for Jakarta trip", got.Description)
	assert.Equal(t, "Not calculated yet", got.BudgetEstimation)
	assert.Equal(t, pq.StringArray{"jakarta", "tour"}, got.Tags)
	assert.Equal(t, "general", got.TripType)
	assert.Equal(t, "1 day", got.EstimatedDuration)
	assert.Equal(t, "auto-generator", got.GeneratedFrom)
	assert.Equal(t, 2, got.TotalDestinations)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 1, got.Items[0].Order)
	assert.Equal(t, 2, got.Items[1].Order)
	assert.Equal(t, "Sejarah", got.Items[0].Category)
	assert.Equal(t, "lunch", got.Items[1].Kind)

	got = FormatForStorage("user-1", sampleRundown(), "")
	assert.Equal(t, "Jakarta Trip - Full Day (09:00 - 19:00)", got.Title)
	assert.Equal(t, "full-day", got.EstimatedDuration)
}

func TestListRundowns(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	rows := []db_models.SavedRundown{
		{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 1700000000}, UserID: "user-1", Title: "Newest"},
		{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 1600000000}, UserID: "user-1", Title: "Older", Tags: pq.StringArray{"jakarta"}},
	}
	rundownRepo.On("ListByUser", mock.Anything, "user-1", 1, 20).Return(rows, int64(2), nil)

	svc := newRundownService(new(mockDestinationRepo), rundownRepo)
	page, err := svc.ListRundowns(context.Background(), "user-1", 1, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Newest", page.Items[0].Title)
	assert.Equal(t, []string{}, page.Items[0].Tags)
	assert.Equal(t, "2023-11-15T05:13:20+07:00", page.Items[0].CreatedAt)
}

func TestListRundowns_InvalidPaging(t *testing.T) {
	svc := newRundownService(new(mockDestinationRepo), new(mockRundownRepo))

	_, err := svc.ListRundowns(context.Background(), "user-1", 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.ListRundowns(context.Background(), "user-1", 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
	_, err = svc.ListRundowns(context.Background(), "", 1, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetRundown(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	id := uuid.New()
	rundownRepo.On("GetByID", mock.Anything, id.String()).Return(&db_models.SavedRundown{
		BaseModel: db_models.BaseModel{ID: id},
		Title:     "Trip",
		Items:     []db_models.SavedRundownItem{{Order: 1, Activity: "Museum"}},
	}, nil)
	missing := uuid.NewString()
	rundownRepo.On("GetByID", mock.Anything, missing).Return(nil, nil)

	svc := newRundownService(new(mockDestinationRepo), rundownRepo)

	got, err := svc.GetRundown(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Museum", got.Items[0].Activity)

	_, err = svc.GetRundown(context.Background(), missing)
	assert.ErrorIs(t, err, utils.ErrRundownNotFound)

	_, err = svc.GetRundown(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrRundownNotFound)
}

func TestUpdateRundown(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	id := uuid.NewString()
	title := "Renamed"
	rundownRepo.On("UpdateFields", mock.Anything, id, map[string]interface{}{
		"title": "Renamed",
		"tags":  pq.StringArray{"family"},
	}).Return(true, nil)
	rundownRepo.On("GetByID", mock.Anything, id).Return(&db_models.SavedRundown{
		BaseModel: db_models.BaseModel{ID: uuid.MustParse(id)},
		Title:     "Renamed",
		Tags:      pq.StringArray{"family"},
	}, nil)

	svc := newRundownService(new(mockDestinationRepo), rundownRepo)
	got, err := svc.UpdateRundown(context.Background(), id, request_models.UpdateRundownRequest{
		Title: &title,
		Tags:  []string{"family"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"family"}, got.Tags)

	_, err = svc.UpdateRundown(context.Background(), id, request_models.UpdateRundownRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateRundown_NotFound(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	id := uuid.NewString()
	rundownRepo.On("UpdateFields", mock.Anything, id, mock.Anything).Return(false, nil)

	desc := "x"
	svc := newRundownService(new(mockDestinationRepo), rundownRepo)
	_, err := svc.UpdateRundown(context.Background(), id, request_models.UpdateRundownRequest{Description: &desc})
	assert.ErrorIs(t, err, utils.ErrRundownNotFound)
}

func TestDeleteRundown(t *testing.T) {
	rundownRepo := new(mockRundownRepo)
	live, gone, broken := uuid.NewString(), uuid.NewString(), uuid.NewString()
	rundownRepo.On("SoftDelete", mock.Anything, live).Return(true, nil)
	rundownRepo.On("SoftDelete", mock.Anything, gone).Return(false, nil)
	rundownRepo.On("SoftDelete", mock.Anything, broken).Return(false, errors.New("io"))

	svc := newRundownService(new(mockDestinationRepo), rundownRepo)
	assert.NoError(t, svc.DeleteRundown(context.Background(), live))
	assert.ErrorIs(t, svc.DeleteRundown(context.Background(), gone), utils.ErrRundownNotFound)
	assert.ErrorIs(t, svc.DeleteRundown(context.Background(), broken), utils.ErrDatabaseError)
}
