package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
)

// --- Fake VenueRepository ---

type fakeVenueRepo struct {
	findAllFn  func(ctx context.Context) ([]*entity.Venue, error)
	findByIDFn func(ctx context.Context, id int64) (*entity.Venue, error)
	createFn   func(ctx context.Context, venue *entity.Venue) error
	updateFn   func(ctx context.Context, venue *entity.Venue) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeVenueRepo) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id int64) (*entity.Venue, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	if f.createFn != nil {
		return f.createFn(ctx, venue)
	}
	return nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *entity.Venue) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, venue)
	}
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

// --- Fake MemberRepository ---

type fakeMemberRepo struct {
	findAllFn        func(ctx context.Context, status string, isTrial *bool) ([]*entity.Member, error)
	findByIDFn       func(ctx context.Context, id int64) (*entity.Member, error)
	createFn         func(ctx context.Context, member *entity.Member) error
	updateStatusFn   func(ctx context.Context, id int64, status entity.MemberStatus) error
	countByStatusFn  func(ctx context.Context, status entity.MemberStatus) (int64, error)
	countTrialFn     func(ctx context.Context) (int64, error)
	countConvertedFn func(ctx context.Context) (int64, error)
}

func (f *fakeMemberRepo) FindAll(ctx context.Context, status string, isTrial *bool) ([]*entity.Member, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, status, isTrial)
	}
	return nil, nil
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id int64) (*entity.Member, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	if f.createFn != nil {
		return f.createFn(ctx, member)
	}
	return nil
}

func (f *fakeMemberRepo) UpdateStatus(ctx context.Context, id int64, status entity.MemberStatus) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeMemberRepo) CountByStatus(ctx context.Context, status entity.MemberStatus) (int64, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (f *fakeMemberRepo) CountTrialUsers(ctx context.Context) (int64, error) {
	if f.countTrialFn != nil {
		return f.countTrialFn(ctx)
	}
	return 0, nil
}

func (f *fakeMemberRepo) CountConvertedFromTrial(ctx context.Context) (int64, error) {
	if f.countConvertedFn != nil {
		return f.countConvertedFn(ctx)
	}
	return 0, nil
}

// --- Fake BookingRepository ---

type fakeBookingRepo struct {
	findAllFn             func(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error)
	findByIDFn            func(ctx context.Context, id int64) (*entity.Booking, error)
	findConflictFn        func(ctx context.Context, venueID int64, bookingDate time.Time) (*entity.Booking, error)
	createFn              func(ctx context.Context, booking *entity.Booking) error
	updateStatusFn        func(ctx context.Context, id int64, status entity.BookingStatus) error
	countFn               func(ctx context.Context, filter repository.BookingFilter) (int64, error)
	countWithCouponFn     func(ctx context.Context, filter repository.BookingFilter) (int64, error)
	findIDsFn             func(ctx context.Context, filter repository.BookingFilter) ([]int64, error)
	memberBookingCountsFn func(ctx context.Context, filter repository.BookingFilter) (int64, int64, error)
	distinctSportIDsFn    func(ctx context.Context) ([]int64, error)
	revenueByVenueFn      func(ctx context.Context) ([]*entity.VenueRevenue, error)
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindConflict(ctx context.Context, venueID int64, bookingDate time.Time) (*entity.Booking, error) {
	if f.findConflictFn != nil {
		return f.findConflictFn(ctx, venueID, bookingDate)
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.createFn != nil {
		return f.createFn(ctx, booking)
	}
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeBookingRepo) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakeBookingRepo) CountWithCoupon(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	if f.countWithCouponFn != nil {
		return f.countWithCouponFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakeBookingRepo) FindIDs(ctx context.Context, filter repository.BookingFilter) ([]int64, error) {
	if f.findIDsFn != nil {
		return f.findIDsFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBookingRepo) MemberBookingCounts(ctx context.Context, filter repository.BookingFilter) (int64, int64, error) {
	if f.memberBookingCountsFn != nil {
		return f.memberBookingCountsFn(ctx, filter)
	}
	return 0, 0, nil
}

func (f *fakeBookingRepo) DistinctSportIDs(ctx context.Context) ([]int64, error) {
	if f.distinctSportIDsFn != nil {
		return f.distinctSportIDsFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookingRepo) RevenueByVenue(ctx context.Context) ([]*entity.VenueRevenue, error) {
	if f.revenueByVenueFn != nil {
		return f.revenueByVenueFn(ctx)
	}
	return nil, nil
}

// --- Fake TransactionRepository ---

type fakeTransactionRepo struct {
	findAllFn         func(ctx context.Context, filter repository.TransactionFilter) ([]*entity.TransactionDetail, error)
	findByIDFn        func(ctx context.Context, id int64) (*entity.TransactionDetail, error)
	createFn          func(ctx context.Context, txn *entity.Transaction) error
	sumAmountFn       func(ctx context.Context, filter repository.RevenueFilter) (float64, error)
	countByStatusesFn func(ctx context.Context, statuses []entity.TransactionStatus, start, end *time.Time) (int64, error)
	revenueByDayFn    func(ctx context.Context, filter repository.RevenueFilter) (map[string]float64, error)
	totalRevenueFn    func(ctx context.Context) (float64, int64, error)
}

func (f *fakeTransactionRepo) FindAll(ctx context.Context, filter repository.TransactionFilter) ([]*entity.TransactionDetail, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id int64) (*entity.TransactionDetail, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, txn)
	}
	return nil
}

func (f *fakeTransactionRepo) SumAmount(ctx context.Context, filter repository.RevenueFilter) (float64, error) {
	if f.sumAmountFn != nil {
		return f.sumAmountFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakeTransactionRepo) CountByStatuses(ctx context.Context, statuses []entity.TransactionStatus, start, end *time.Time) (int64, error) {
	if f.countByStatusesFn != nil {
		return f.countByStatusesFn(ctx, statuses, start, end)
	}
	return 0, nil
}

func (f *fakeTransactionRepo) RevenueByDay(ctx context.Context, filter repository.RevenueFilter) (map[string]float64, error) {
	if f.revenueByDayFn != nil {
		return f.revenueByDayFn(ctx, filter)
	}
	return map[string]float64{}, nil
}

func (f *fakeTransactionRepo) TotalRevenue(ctx context.Context) (float64, int64, error) {
	if f.totalRevenueFn != nil {
		return f.totalRevenueFn(ctx)
	}
	return 0, 0, nil
}

func newFakeRepository() (*repository.Repository, *fakeVenueRepo, *fakeMemberRepo, *fakeBookingRepo, *fakeTransactionRepo) {
	venues := &fakeVenueRepo{}
	members := &fakeMemberRepo{}
	bookings := &fakeBookingRepo{}
	txns := &fakeTransactionRepo{}

	return &repository.Repository{
		Venue:       venues,
		Member:      members,
		Booking:     bookings,
		Transaction: txns,
	}, venues, members, bookings, txns
}
