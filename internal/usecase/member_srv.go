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

type MemberService interface {
	List(ctx context.Context, status string, isTrial *bool) ([]*entity.Member, error)
	Get(ctx context.Context, id int64) (*entity.Member, error)
	Create(ctx context.Context, req *request.CreateMemberRequest) (*entity.Member, error)
	UpdateStatus(ctx context.Context, id int64, req *request.UpdateMemberStatusRequest) (*entity.Member, error)
}

type memberService struct {
	repo repository.MemberRepository
	log  *zap.Logger
}

func NewMemberService(repo repository.MemberRepository, log *zap.Logger) MemberService {
	return &memberService{
		repo: repo,
		log:  log.With(zap.String("service", "member")),
	}
}

func (s *memberService) List(ctx context.Context, status string, isTrial *bool) ([]*entity.Member, error) {
	members, err := s.repo.FindAll(ctx, status, isTrial)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*entity.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get member %d: %w", id, err)
	}
	if member == nil {
		return nil, fmt.Errorf("Member not found")
	}
	return member, nil
}

func (s *memberService) Create(ctx context.Context, req *request.CreateMemberRequest) (*entity.Member, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create member validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.MemberStatus(req.Status)
	if status == "" {
		status = entity.MemberStatusActive
	}

	member := &entity.Member{
		Name:               req.Name,
		Status:             status,
		IsTrialUser:        req.IsTrialUser,
		ConvertedFromTrial: req.ConvertedFromTrial,
		JoinDate:           req.JoinDate,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.log.Info("Member created",
		zap.Int64("member_id", member.MemberID),
		zap.String("name", member.Name),
		zap.Bool("trial", member.IsTrialUser),
	)

	return member, nil
}

func (s *memberService) UpdateStatus(ctx context.Context, id int64, req *request.UpdateMemberStatusRequest) (*entity.Member, error) {
	status := entity.MemberStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("Invalid status")
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update member %d status: %w", id, err)
	}
	if member == nil {
		return nil, fmt.Errorf("Member not found")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update member %d status: %w", id, err)
	}

	member.Status = status

	s.log.Info("Member status updated",
		zap.Int64("member_id", id),
		zap.String("status", string(status)),
	)

	return member, nil
}
