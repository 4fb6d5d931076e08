package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"village/config"
	"village/infras/kafka"
	"village/infras/otel"
	"village/internal/domains/booking/model"
	"village/internal/domains/booking/model/dto"
	"village/internal/domains/booking/repository"
	profileModel "village/internal/domains/profile/model"
	profileRepo "village/internal/domains/profile/repository"
	serviceModel "village/internal/domains/service/model"
	serviceRepo "village/internal/domains/service/repository"
	"village/shared"
	"village/shared/cache"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/shared/failure"
	"village/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheListBookings = "booking:list"
)

const (
	eventBookingCreated  = "booking.created"
	eventBookingAccepted = "booking.accepted"
)

type Booking interface {
	Create(ctx context.Context, actingUserID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Accept(ctx context.Context, actingUserID, bookingID string) (dto.BookingResponse, error)
	Get(ctx context.Context, actingUserID, bookingID string) (dto.BookingResponse, error)
	ListForUser(ctx context.Context, userID, role string) (dto.GetBookingsResponse, error)
	CheckBookable(ctx context.Context, actingUserID, serviceID string) error
}

type serviceImpl struct {
	repo        repository.Booking
	serviceRepo serviceRepo.Service
	profileRepo profileRepo.Profile
	cfg         *config.Config
	cache       cache.RedisCache
	broker      kafka.Client
	otel        otel.Otel
	now         func() time.Time
}

func New(repo repository.Booking, svcRepo serviceRepo.Service, profRepo profileRepo.Profile, cfg *config.Config, cache cache.RedisCache, broker kafka.Client, otel otel.Otel) Booking {
	return NewWithClock(repo, svcRepo, profRepo, cfg, cache, broker, otel, timezone.Now)
}

// NewWithClock is New with an injectable clock for the temporal-validity rule.
func NewWithClock(repo repository.Booking, svcRepo serviceRepo.Service, profRepo profileRepo.Profile, cfg *config.Config, cache cache.RedisCache, broker kafka.Client, otel otel.Otel, now func() time.Time) Booking {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: svcRepo,
		profileRepo: profRepo,
		cfg:         cfg,
		cache:       cache,
		broker:      broker,
		otel:        otel,
		now:         now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, actingUserID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actingUserID == constant.Empty || req.ServiceID == constant.Empty {
		return res, failure.BadRequestFromString("user ID and service ID are required") // nolint:wrapcheck
	}

	bookingAt, err := s.parseBookingTime(req.Date, req.Time)
	if err != nil {
		return res, err
	}

	if !bookingAt.After(s.now()) {
		return res, failure.BadRequestFromString("booking date must be in the future") // nolint:wrapcheck
	}

	profileExists, err := s.profileRepo.Exist(ctx, shared.FilterByID(actingUserID, profileModel.FieldID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if profile exists")

		return res, fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if !profileExists {
		return res, failure.NotFound("user profile not found, please complete your profile setup") // nolint:wrapcheck
	}

	svc, err := s.checkBookable(ctx, actingUserID, req.ServiceID)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(actingUserID, bookingAt)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ServiceOwnerID = &svc.UserID
	booking.ServiceTitle = &svc.Title
	booking.ServiceDescription = &svc.Description
	booking.ServiceCategory = &svc.Category
	booking.ServiceDefaultPrice = svc.DefaultPrice
	booking.ServiceExpressPrice = svc.ExpressPrice
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, eventBookingCreated, booking, svc.UserID)
		shared.InvalidateCaches(c, s.cache, cacheListBookings)
	}()

	return res, nil
}

func (s *serviceImpl) Accept(ctx context.Context, actingUserID, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bookingID == constant.Empty {
		return res, failure.BadRequestFromString("booking ID is required") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.ServiceOwnerID == nil || *booking.ServiceOwnerID != actingUserID {
		return res, failure.Forbidden("you do not have permission to accept this booking") // nolint:wrapcheck
	}

	if booking.Status != model.StatusPending {
		return res, failure.InvalidState(fmt.Sprintf("cannot accept booking with status: %s", booking.Status)) // nolint:wrapcheck
	}

	// Conditional update so two concurrent accepts cannot both pass the
	// pending check: the write lands only if the stored status is unchanged.
	transitioned, err := s.repo.TransitionStatus(ctx, bookingID, model.StatusPending, model.StatusAccepted, actingUserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to accept booking")

		return res, fmt.Errorf("failed to accept booking: %w", err)
	}

	if !transitioned {
		return res, failure.InvalidState("booking is no longer pending") // nolint:wrapcheck
	}

	booking.Status = model.StatusAccepted
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, eventBookingAccepted, booking, actingUserID)
		shared.InvalidateCaches(c, s.cache, cacheListBookings)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, actingUserID, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bookingID == constant.Empty {
		return res, failure.BadRequestFromString("booking ID is required") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	isBuyer := booking.BuyerID == actingUserID
	isSeller := booking.ServiceOwnerID != nil && *booking.ServiceOwnerID == actingUserID

	if !isBuyer && !isSeller {
		return res, failure.Forbidden("you do not have permission to view this booking") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListForUser(ctx context.Context, userID, role string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if role != constant.RoleBuyer && role != constant.RoleSeller {
		return res, failure.BadRequestFromString("role must be 'buyer' or 'seller'") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheListBookings, userID, role)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	filter, empty, err := s.listFilter(ctx, userID, role)
	if err != nil {
		return res, err
	}

	if empty {
		res.Bookings = []dto.BookingResponse{}

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// listFilter resolves the filter for a buyer or seller listing. For sellers
// the owned service ids are resolved first; owning none is an empty result,
// not an error.
func (s *serviceImpl) listFilter(ctx context.Context, userID, role string) (gDto.FilterGroup, bool, error) {
	if role == constant.RoleBuyer {
		return shared.FilterByID(userID, model.FieldBuyerID, model.TableName), false, nil
	}

	services, err := s.serviceRepo.GetAll(
		ctx,
		gDto.QueryParams{},
		shared.FilterByID(userID, serviceModel.FieldUserID, serviceModel.TableName),
		serviceModel.FieldID,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch seller services")

		return gDto.FilterGroup{}, false, fmt.Errorf("failed to fetch seller services: %w", err)
	}

	if len(services) == 0 {
		return gDto.FilterGroup{}, true, nil
	}

	serviceIDs := make([]string, len(services))
	for i, svc := range services {
		serviceIDs[i] = svc.ID
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceID,
				Operator: gDto.FilterOperatorIn,
				Value:    serviceIDs,
				Table:    model.TableName,
			},
		},
	}

	return filter, false, nil
}

func (s *serviceImpl) parseBookingTime(date, timeOfDay string) (time.Time, error) {
	day, err := timezone.Parse(constant.BookingDateFormat, date)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	clock, err := time.Parse(constant.BookingTimeFormat, timeOfDay)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid time format, expected HH:MM") // nolint:wrapcheck
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, timezone.GetLocation()), nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking, sellerID string) {
	topic := s.cfg.Kafka.Topic.BookingEvents
	if topic == constant.Empty {
		return
	}

	payload := dto.BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		BuyerID:    booking.BuyerID,
		ServiceID:  booking.ServiceID,
		SellerID:   sellerID,
		Status:     booking.Status.String(),
		OccurredAt: timezone.Now(),
	}

	if err := s.broker.SendMessages(ctx, topic, kafka.Message{Key: booking.ID, Value: payload}); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}
