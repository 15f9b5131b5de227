package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

var revenueTypes = []entity.TransactionType{
	entity.TransactionTypeBooking,
	entity.TransactionTypeCoaching,
}

type DashboardService interface {
	Stats(ctx context.Context, filter *request.StatsFilter) (*response.StatsResponse, error)
	RevenueChart(ctx context.Context, filter *request.ChartFilter) ([]response.ChartPoint, error)
	VenueOptions(ctx context.Context) ([]response.VenueOption, error)
	SportOptions(ctx context.Context) ([]response.SportOption, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) Stats(ctx context.Context, filter *request.StatsFilter) (*response.StatsResponse, error) {
	bookingFilter := repository.BookingFilter{
		VenueID: filter.VenueID,
		SportID: filter.SportID,
	}

	var windowStart, windowEnd *time.Time
	if filter.Month != nil && filter.Year != nil {
		start, end := utils.MonthWindow(*filter.Year, *filter.Month)
		windowStart, windowEnd = &start, &end
	}

	activeMembers, err := s.repo.Member.CountByStatus(ctx, entity.MemberStatusActive)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	inactiveMembers, err := s.repo.Member.CountByStatus(ctx, entity.MemberStatusInactive)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	trialMembers, err := s.repo.Member.CountTrialUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	convertedMembers, err := s.repo.Member.CountConvertedFromTrial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	conversionRate := 0.0
	if trialMembers > 0 {
		conversionRate = utils.Round2(float64(convertedMembers) / float64(trialMembers) * 100)
	}

	totalBookings, err := s.repo.Booking.Count(ctx, bookingFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	confirmedFilter := bookingFilter
	confirmedFilter.Status = string(entity.BookingStatusConfirmed)
	confirmedBookings, err := s.repo.Booking.Count(ctx, confirmedFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	// Revenue is restricted to the filtered booking-id set; an empty match
	// must yield zero, never the unfiltered total.
	revenue := repository.RevenueFilter{
		StartDate: windowStart,
		EndDate:   windowEnd,
	}
	if filter.VenueID != nil || filter.SportID != nil {
		ids, err := s.repo.Booking.FindIDs(ctx, bookingFilter)
		if err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
		revenue.BookingIDs = ids
		revenue.LimitToBookings = true
	}

	coachingFilter := revenue
	coachingFilter.Types = []entity.TransactionType{entity.TransactionTypeCoaching}
	coachingRevenue, err := s.repo.Transaction.SumAmount(ctx, coachingFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	bookingRevFilter := revenue
	bookingRevFilter.Types = []entity.TransactionType{entity.TransactionTypeBooking}
	bookingRevenue, err := s.repo.Transaction.SumAmount(ctx, bookingRevFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	totalFilter := revenue
	totalFilter.Types = revenueTypes
	totalRevenue, err := s.repo.Transaction.SumAmount(ctx, totalFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	refundsDisputes, err := s.repo.Transaction.CountByStatuses(ctx,
		[]entity.TransactionStatus{entity.TransactionStatusRefunded, entity.TransactionStatusDispute},
		windowStart, windowEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	couponRedemption, err := s.repo.Booking.CountWithCoupon(ctx, bookingFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	members, repeatMembers, err := s.repo.Booking.MemberBookingCounts(ctx, bookingFilter)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	repeatRate := 0.0
	if members > 0 {
		repeatRate = utils.Round2(float64(repeatMembers) / float64(members) * 100)
	}

	return &response.StatsResponse{
		ActiveMembers:       activeMembers,
		InactiveMembers:     inactiveMembers,
		TrialConversionRate: conversionRate,
		CoachingRevenue:     fmt.Sprintf("%.2f", coachingRevenue),
		Bookings:            totalBookings,
		ConfirmedBookings:   confirmedBookings,
		BookingRevenue:      fmt.Sprintf("%.2f", bookingRevenue),
		SlotsUtilization:    0, // no slot-capacity model exists
		CouponRedemption:    couponRedemption,
		RepeatBooking:       repeatRate,
		TotalRevenue:        fmt.Sprintf("%.2f", totalRevenue),
		RefundsDisputes:     refundsDisputes,
	}, nil
}

func (s *dashboardService) RevenueChart(ctx context.Context, filter *request.ChartFilter) ([]response.ChartPoint, error) {
	days := filter.Days
	if days <= 0 {
		days = 30
	}

	now := time.Now().UTC()
	startDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))

	revenue := repository.RevenueFilter{
		Types:     revenueTypes,
		StartDate: &startDay,
		EndDate:   &now,
	}
	if filter.VenueID != nil || filter.SportID != nil {
		ids, err := s.repo.Booking.FindIDs(ctx, repository.BookingFilter{
			VenueID: filter.VenueID,
			SportID: filter.SportID,
		})
		if err != nil {
			return nil, fmt.Errorf("revenue chart: %w", err)
		}
		revenue.BookingIDs = ids
		revenue.LimitToBookings = true
	}

	byDay, err := s.repo.Transaction.RevenueByDay(ctx, revenue)
	if err != nil {
		return nil, fmt.Errorf("revenue chart: %w", err)
	}

	return buildChartSeries(startDay, days, byDay), nil
}

// buildChartSeries emits one point per calendar day, contiguous across the
// window, with zero revenue for silent days.
func buildChartSeries(startDay time.Time, days int, revenue map[string]float64) []response.ChartPoint {
	series := make([]response.ChartPoint, days)
	for i := 0; i < days; i++ {
		date := startDay.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = response.ChartPoint{
			Date:    date,
			Revenue: revenue[date],
		}
	}
	return series
}

func (s *dashboardService) VenueOptions(ctx context.Context) ([]response.VenueOption, error) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("venue options: %w", err)
	}

	options := make([]response.VenueOption, len(venues))
	for i, venue := range venues {
		options[i] = response.VenueOption{
			Venue: *venue,
			ID:    venue.VenueID,
			Value: venue.VenueID,
			Label: venue.Name,
		}
	}
	return options, nil
}

func (s *dashboardService) SportOptions(ctx context.Context) ([]response.SportOption, error) {
	ids, err := s.repo.Booking.DistinctSportIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("sport options: %w", err)
	}

	options := make([]response.SportOption, len(ids))
	for i, id := range ids {
		name := fmt.Sprintf("Sport %d", id)
		options[i] = response.SportOption{
			ID:    id,
			Value: id,
			Name:  name,
			Label: name,
		}
	}
	return options, nil
}
