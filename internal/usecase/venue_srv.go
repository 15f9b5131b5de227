package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type VenueService interface {
	List(ctx context.Context) ([]*entity.Venue, error)
	Get(ctx context.Context, id int64) (*entity.Venue, error)
	Create(ctx context.Context, req *request.CreateVenueRequest) (*entity.Venue, error)
	Update(ctx context.Context, id int64, req *request.UpdateVenueRequest) (*entity.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type venueService struct {
	repo repository.VenueRepository
	log  *zap.Logger
}

func NewVenueService(repo repository.VenueRepository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) List(ctx context.Context) ([]*entity.Venue, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (s *venueService) Get(ctx context.Context, id int64) (*entity.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue %d: %w", id, err)
	}
	if venue == nil {
		return nil, fmt.Errorf("Venue not found")
	}
	return venue, nil
}

func (s *venueService) Create(ctx context.Context, req *request.CreateVenueRequest) (*entity.Venue, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	venue := &entity.Venue{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.log.Info("Venue created",
		zap.Int64("venue_id", venue.VenueID),
		zap.String("name", venue.Name),
	)

	return venue, nil
}

func (s *venueService) Update(ctx context.Context, id int64, req *request.UpdateVenueRequest) (*entity.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update venue %d: %w", id, err)
	}
	if venue == nil {
		return nil, fmt.Errorf("Venue not found")
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Location != nil {
		venue.Location = *req.Location
	}

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue %d: %w", id, err)
	}

	s.log.Info("Venue updated", zap.Int64("venue_id", id))
	return venue, nil
}

func (s *venueService) Delete(ctx context.Context, id int64) error {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}
	if venue == nil {
		return fmt.Errorf("Venue not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}

	return nil
}
