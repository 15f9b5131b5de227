package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MemberRepository interface {
	FindAll(ctx context.Context, status string, isTrial *bool) ([]*entity.Member, error)
	FindByID(ctx context.Context, id int64) (*entity.Member, error)
	Create(ctx context.Context, member *entity.Member) error
	UpdateStatus(ctx context.Context, id int64, status entity.MemberStatus) error

	// Dashboard counters
	CountByStatus(ctx context.Context, status entity.MemberStatus) (int64, error)
	CountTrialUsers(ctx context.Context) (int64, error)
	CountConvertedFromTrial(ctx context.Context) (int64, error)
}

type memberRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMemberRepository(db database.PgxIface, log *zap.Logger) MemberRepository {
	return &memberRepository{
		db:  db,
		log: log.With(zap.String("repository", "member")),
	}
}

func (r *memberRepository) FindAll(ctx context.Context, status string, isTrial *bool) ([]*entity.Member, error) {
	query := `
		SELECT member_id, name, status, is_trial_user, converted_from_trial, join_date
		FROM members
		WHERE ($1 = '' OR status = $1)
		  AND ($2::boolean IS NULL OR is_trial_user = $2)
		ORDER BY member_id
	`

	rows, err := r.db.Query(ctx, query, status, isTrial)
	if err != nil {
		r.log.Error("Failed to list members",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		var member entity.Member
		err := rows.Scan(
			&member.MemberID,
			&member.Name,
			&member.Status,
			&member.IsTrialUser,
			&member.ConvertedFromTrial,
			&member.JoinDate,
		)
		if err != nil {
			r.log.Error("Failed to scan member row", zap.Error(err))
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		members = append(members, &member)
	}

	return members, nil
}

func (r *memberRepository) FindByID(ctx context.Context, id int64) (*entity.Member, error) {
	query := `
		SELECT member_id, name, status, is_trial_user, converted_from_trial, join_date
		FROM members
		WHERE member_id = $1
	`

	var member entity.Member
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.MemberID,
		&member.Name,
		&member.Status,
		&member.IsTrialUser,
		&member.ConvertedFromTrial,
		&member.JoinDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find member by ID",
			zap.Error(err),
			zap.Int64("member_id", id),
		)
		return nil, fmt.Errorf("find member by ID %d: %w", id, err)
	}

	return &member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	query := `
		INSERT INTO members (member_id, name, status, is_trial_user, converted_from_trial, join_date)
		VALUES ((SELECT COALESCE(MAX(member_id), 0) + 1 FROM members), $1, $2, $3, $4, $5)
		RETURNING member_id
	`

	err := r.db.QueryRow(ctx, query,
		member.Name,
		member.Status,
		member.IsTrialUser,
		member.ConvertedFromTrial,
		member.JoinDate,
	).Scan(&member.MemberID)

	if err != nil {
		r.log.Error("Failed to create member",
			zap.Error(err),
			zap.String("name", member.Name),
		)
		return fmt.Errorf("create member %s: %w", member.Name, err)
	}

	return nil
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id int64, status entity.MemberStatus) error {
	query := `UPDATE members SET status = $2 WHERE member_id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update member status",
			zap.Error(err),
			zap.Int64("member_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update member %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("member %d not found", id)
	}

	return nil
}

func (r *memberRepository) CountByStatus(ctx context.Context, status entity.MemberStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM members WHERE status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count members by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count members by status %s: %w", string(status), err)
	}

	return count, nil
}

func (r *memberRepository) CountTrialUsers(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM members WHERE is_trial_user`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count trial members", zap.Error(err))
		return 0, fmt.Errorf("count trial members: %w", err)
	}

	return count, nil
}

func (r *memberRepository) CountConvertedFromTrial(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM members WHERE converted_from_trial`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count converted trial members", zap.Error(err))
		return 0, fmt.Errorf("count converted trial members: %w", err)
	}

	return count, nil
}
