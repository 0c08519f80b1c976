package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"jaktrip/internal/models/request_models"
	"jaktrip/internal/models/response_models"
	"jaktrip/internal/planner"
	"jaktrip/internal/repositories"
	"jaktrip/pkg/logger"
	"jaktrip/pkg/utils"
)

const maxPageSize = 100

type RundownServiceInterface interface {
	GenerateRundown(ctx context.Context, req request_models.GenerateRundownRequest) planner.Rundown
	SaveRundown(ctx context.Context, userID string, rundown planner.Rundown, title string) (string, error)
	ListRundowns(ctx context.Context, userID string, page int, pageSize int) (*response_models.SavedRundownPage, error)
	GetRundown(ctx context.Context, id string) (*response_models.SavedRundownResponse, error)
	UpdateRundown(ctx context.Context, id string, patch request_models.UpdateRundownRequest) (*response_models.SavedRundownResponse, error)
	DeleteRundown(ctx context.Context, id string) error
}

type RundownService struct {
	destinationService DestinationServiceInterface
	rundownRepo        repositories.RundownRepositoryInterface
	tuning             planner.Tuning
}

func NewRundownService(
	destinationService DestinationServiceInterface,
	rundownRepo repositories.RundownRepositoryInterface,
	tuning planner.Tuning) RundownServiceInterface {

	return &RundownService{
		destinationService: destinationService,
		rundownRepo:        rundownRepo,
		tuning:             tuning,
	}
}

// GenerateRundown loads the catalog once and runs the planner. It always
// returns a rundown; failures are reported in Rundown.Error.
func (s *RundownService) GenerateRundown(ctx context.Context, req request_models.GenerateRundownRequest) planner.Rundown {
	log := logger.GetLogger()

	catalog := s.destinationService.ListDestinations(ctx)
	preselected := s.destinationService.EnrichPreselected(catalog, req.Preselected)

	log.Infow("Generating rundown",
		"preselected", len(preselected),
		"catalog", len(catalog),
		"duration", req.Preferences.Duration,
		"travel_style", req.Preferences.TravelStyle,
	)

	tuning := s.tuning
	rundown := planner.Generate(planner.GenerateRequest{
		Preferences: req.Preferences.ToPlanner(),
		Preselected: preselected,
		Catalog:     catalog,
		Tuning:      &tuning,
	})
	if rundown.Failed() {
		log.Warnw("Rundown generation failed", "error", rundown.Error)
		return rundown
	}

	log.Infow("Rundown generated",
		"items", len(rundown.Itinerary),
		"destinations", rundown.TripDetails.DestinationCount,
		"area_changes", rundown.TripDetails.AreaChanges,
		"budget", rundown.BudgetEstimation,
	)
	return rundown
}

func (s *RundownService) SaveRundown(ctx context.Context, userID string, rundown planner.Rundown, title string) (string, error) {
	log := logger.GetLogger()

	if userID == "" {
		return "", utils.ErrInvalidInput
	}
	if err := ValidateRundown(&rundown); err != nil {
		log.Warnw("Rejected rundown", "user_id", userID, "error", err)
		return "", err
	}

	record := FormatForStorage(userID, rundown, title)
	if err := s.rundownRepo.Create(ctx, &record); err != nil {
		log.Errorw("Failed to save rundown", "user_id", userID, "error", err)
		return "", utils.ErrDatabaseError
	}

	log.Infow("Rundown saved", "id", record.ID, "user_id", userID, "items", len(record.Items))
	return record.ID.String(), nil
}

func (s *RundownService) ListRundowns(ctx context.Context, userID string, page int, pageSize int) (*response_models.SavedRundownPage, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	rows, total, err := s.rundownRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		logger.GetLogger().Errorw("Failed to list rundowns", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.SavedRundownResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toSavedRundownResponse(row))
	}
	return &response_models.SavedRundownPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *RundownService) GetRundown(ctx context.Context, id string) (*response_models.SavedRundownResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrRundownNotFound
	}

	row, err := s.rundownRepo.GetByID(ctx, id)
	if err != nil {
		logger.GetLogger().Errorw("Failed to get rundown", "id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrRundownNotFound
	}

	resp := toSavedRundownResponse(*row)
	return &resp, nil
}

// UpdateRundown changes title, description and tags only.
func (s *RundownService) UpdateRundown(ctx context.Context, id string, patch request_models.UpdateRundownRequest) (*response_models.SavedRundownResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrRundownNotFound
	}
	if patch.IsEmpty() {
		return nil, utils.ErrInvalidInput
	}

	fields := make(map[string]interface{})
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Tags != nil {
		fields["tags"] = pq.StringArray(patch.Tags)
	}

	updated, err := s.rundownRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		logger.GetLogger().Errorw("Failed to update rundown", "id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if !updated {
		return nil, utils.ErrRundownNotFound
	}
	return s.GetRundown(ctx, id)
}

// DeleteRundown soft deletes; the row stays in storage.
func (s *RundownService) DeleteRundown(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrRundownNotFound
	}

	deleted, err := s.rundownRepo.SoftDelete(ctx, id)
	if err != nil {
		logger.GetLogger().Errorw("Failed to delete rundown", "id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrRundownNotFound
	}
	logger.GetLogger().Infow("Rundown deleted", "id", id)
	return nil
}
