package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"slotbook/config"
	"slotbook/infras/kafka"
	kafkaMocks "slotbook/infras/kafka/mocks"
	"slotbook/infras/otel/mocks"
	bookingMocks "slotbook/internal/domains/booking/mocks"
	"slotbook/internal/domains/booking/model"
	"slotbook/internal/domains/booking/repository"
	"slotbook/internal/domains/booking/service"
	"slotbook/shared/cache"
	cacheMocks "slotbook/shared/cache/mocks"
	"slotbook/shared/timezone"
)

const (
	defaultGrid  = "1h=10:00,11:00,12:00,14:00,15:00,16:00;2h=10:00,11:00,14:00,15:00;3h=10:00,14:00;4h=10:00,14:00"
	topic        = "booking.confirmed"
	cacheTTL     = 300
	mondayCached = "booking:date:2026-10-19"
	mondayGen    = "booking:date:2026-10-19:gen"
	genTTL       = 15 * 24 * 60 * 60
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.LookaheadDays = 14
	cfg.Booking.LeadTimeMinutes = 60
	cfg.Cache.TTL = cacheTTL
	cfg.Kafka.Topic.BookingConfirmed = topic
	require.NoError(t, cfg.Booking.Grid.Decode(defaultGrid))

	return cfg
}

// day returns hour:minute on 2026-10-<dom> in the operating timezone; 19 is a Monday.
func day(dom, hour, minute int) time.Time {
	return time.Date(2026, 10, dom, hour, minute, 0, 0, timezone.GetLocation())
}

func monday(hour, minute int) time.Time {
	return day(19, hour, minute)
}

func newFileStore(t *testing.T) repository.Booking {
	t.Helper()

	return repository.NewFile(filepath.Join(t.TempDir(), "data.json"), mocks.NewOtel())
}

func newService(t *testing.T, store repository.Booking, now time.Time) service.Booking {
	t.Helper()

	cfg := newConfig(t)

	return service.New(store, timezone.FixedClock(now), cfg, cache.NewNoopCache(), kafka.New(&config.Config{}), mocks.NewOtel())
}

func starts(slots []model.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, timezone.Format(slot.Start, "15:04"))
	}

	return out
}

func TestBookingService_EmptyDayOffersFullGrid(t *testing.T) {
	svc := newService(t, newFileStore(t), monday(8, 30))

	slots, err := svc.AvailableSlots(context.Background(), monday(0, 0), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}, starts(slots))

	for _, slot := range slots {
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
	}
}

func TestBookingService_LeadTimeIsStrict(t *testing.T) {
	svc := newService(t, newFileStore(t), monday(9, 0))

	slots, err := svc.AvailableSlots(context.Background(), monday(0, 0), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []string{"11:00", "12:00", "14:00", "15:00", "16:00"}, starts(slots))
}

func TestBookingService_BookedSlotIsNoLongerOffered(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, newFileStore(t), monday(8, 30))

	booking, err := svc.CreateBooking(ctx, 42, monday(10, 0), monday(11, 0))
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "2026-10-19", booking.Date())
	assert.Equal(t, monday(0, 0), booking.BookingDate)

	slots, err := svc.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "12:00", "14:00", "15:00", "16:00"}, starts(slots))

	twoHour, err := svc.AvailableSlots(ctx, monday(0, 0), 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "14:00", "15:00"}, starts(twoHour))
}

func TestBookingService_EndedBookingsAreHidden(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	morning := newService(t, store, monday(8, 30))

	_, err := morning.CreateBooking(ctx, 7, monday(10, 0), monday(11, 0))
	require.NoError(t, err)

	tomorrow, err := morning.CreateBooking(ctx, 7, day(20, 14, 0), day(20, 16, 0))
	require.NoError(t, err)

	_, err = morning.CreateBooking(ctx, 8, monday(14, 0), monday(15, 0))
	require.NoError(t, err)

	upcoming, err := morning.BookingsForUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)

	later := newService(t, store, monday(11, 30))

	upcoming, err = later.BookingsForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, tomorrow.ID, upcoming[0].ID)

	// A booking ending exactly now is over.
	atEnd := newService(t, store, day(20, 16, 0))

	upcoming, err = atEnd.BookingsForUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

func TestBookingService_SlotsNeverOverlapBookings(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := newService(t, store, monday(8, 30))

	_, err := svc.CreateBooking(ctx, 1, monday(11, 0), monday(12, 0))
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, 2, monday(14, 0), monday(17, 0))
	require.NoError(t, err)

	bookings, err := store.ListByDate(ctx, "2026-10-19")
	require.NoError(t, err)

	for _, duration := range svc.Durations(ctx) {
		slots, err := svc.AvailableSlots(ctx, monday(0, 0), duration)
		require.NoError(t, err)

		for i, slot := range slots {
			for _, booking := range bookings {
				assert.False(t, booking.Overlaps(slot.Start, slot.End), "%s slot %s overlaps a booking", duration, slot.Start)
			}

			if i > 0 {
				assert.True(t, slots[i-1].Start.Before(slot.Start))
			}
		}
	}

	oneHour, err := svc.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "12:00"}, starts(oneHour))

	twoHour, err := svc.AvailableSlots(ctx, monday(0, 0), 2*time.Hour)
	require.NoError(t, err)
	assert.Empty(t, twoHour)
}

func TestBookingService_AvailableSlotsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, newFileStore(t), monday(8, 30))

	_, err := svc.CreateBooking(ctx, 1, monday(12, 0), monday(13, 0))
	require.NoError(t, err)

	first, err := svc.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)

	second, err := svc.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBookingService_AvailableSlotsOutsideWindow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, timezone.FixedClock(monday(8, 30)), newConfig(t), cache.NewNoopCache(), kafka.New(&config.Config{}), mocks.NewOtel())

	for _, date := range []time.Time{day(24, 0, 0), day(16, 0, 0), time.Date(2026, 11, 2, 0, 0, 0, 0, timezone.GetLocation())} {
		slots, err := svc.AvailableSlots(ctx, date, time.Hour)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}

	_, err := svc.AvailableSlots(ctx, monday(0, 0), 90*time.Minute)
	assert.ErrorIs(t, err, model.ErrInvalidSlot)
}

func TestBookingService_ConcurrentCreateHasOneWinner(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := newService(t, store, monday(8, 30))

	const attempts = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)

	for i := range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			// 10:00-12:00 and 11:00-12:00 alternate; every pair overlaps.
			start := monday(10+i%2, 0)
			_, err := svc.CreateBooking(ctx, int64(i+1), start, monday(12, 0))

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				wins++
			} else if assert.ErrorIs(t, err, model.ErrSlotTaken) {
				conflicts++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)

	bookings, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestBookingService_CreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, timezone.FixedClock(monday(9, 0)), newConfig(t), cache.NewNoopCache(), kafka.New(&config.Config{}), mocks.NewOtel())

	tests := []struct {
		name       string
		userID     int64
		start, end time.Time
		wantErr    error
	}{
		{name: "off grid", userID: 1, start: monday(13, 0), end: monday(14, 0), wantErr: model.ErrInvalidSlot},
		{name: "unsupported duration", userID: 1, start: monday(10, 0), end: monday(15, 0), wantErr: model.ErrInvalidSlot},
		{name: "inside lead time", userID: 1, start: monday(10, 0), end: monday(11, 0), wantErr: model.ErrInvalidSlot},
		{name: "weekend", userID: 1, start: day(24, 10, 0), end: day(24, 11, 0), wantErr: model.ErrInvalidSlot},
		{name: "beyond window", userID: 1, start: time.Date(2026, 11, 2, 10, 0, 0, 0, timezone.GetLocation()), end: time.Date(2026, 11, 2, 11, 0, 0, 0, timezone.GetLocation()), wantErr: model.ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, tt.userID, tt.start, tt.end)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := svc.CreateBooking(ctx, 0, monday(11, 0), monday(12, 0))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidSlot)
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, timezone.FixedClock(monday(8, 30)), newConfig(t), mockCache, mockKafka, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "committed, cache invalidated and event published",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, booking model.Booking) (model.Booking, error) {
							return booking, nil
						}),
					mockCache.EXPECT().Increment(gomock.Any(), mondayGen, genTTL).Return(int64(1), nil),
					mockCache.EXPECT().Delete(gomock.Any(), mondayCached).Return(nil),
					mockKafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ string, messages ...kafka.Message) error {
							require.Len(t, messages, 1)

							event, ok := messages[0].Value.(model.BookingConfirmed)
							require.True(t, ok)
							assert.Equal(t, model.EventBookingConfirmed, event.Event)
							assert.Equal(t, int64(5), event.UserID)
							assert.Equal(t, "2026-10-19", event.Date)
							assert.Equal(t, messages[0].Key, event.BookingID)

							return nil
						}),
				)
			},
		},
		{
			name: "publish and invalidation failures do not fail the booking",
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, booking model.Booking) (model.Booking, error) {
						return booking, nil
					})
				mockCache.EXPECT().Increment(gomock.Any(), mondayGen, genTTL).Return(int64(0), errors.New("redis down"))
				mockCache.EXPECT().Delete(gomock.Any(), mondayCached).Return(errors.New("redis down"))
				mockKafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "conflict is passed through untouched",
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Booking{}, model.ErrSlotTaken)
			},
			wantErr: model.ErrSlotTaken,
		},
		{
			name: "store error surfaces",
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("disk full"))
			},
			wantErr: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			booking, err := svc.CreateBooking(ctx, 5, monday(14, 0), monday(16, 0))

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(5), booking.UserID)
				assert.True(t, booking.StartTime.Equal(monday(14, 0)))
				assert.True(t, booking.EndTime.Equal(monday(16, 0)))
				assert.True(t, booking.CreatedAt.Equal(monday(8, 30)))
			case errors.Is(tt.wantErr, model.ErrSlotTaken):
				assert.ErrorIs(t, err, model.ErrSlotTaken)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestBookingService_AvailableSlotsCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, timezone.FixedClock(monday(8, 30)), newConfig(t), mockCache, kafka.New(&config.Config{}), mocks.NewOtel())

	booked := model.Booking{ID: "b", UserID: 1, StartTime: monday(10, 0), EndTime: monday(12, 0)}

	generation := func(value int64) func(context.Context, string, any) error {
		return func(_ context.Context, _ string, target any) error {
			*target.(*int64) = value

			return nil
		}
	}

	snapshot := func(value model.DateSnapshot) func(context.Context, string, any) error {
		return func(_ context.Context, _ string, target any) error {
			*target.(*model.DateSnapshot) = value

			return nil
		}
	}

	tests := []struct {
		name      string
		setupMock func()
		want      []string
		wantErr   bool
	}{
		{
			name: "current snapshot skips the store",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), mondayGen, gomock.Any()).DoAndReturn(generation(2))
				mockCache.EXPECT().Get(gomock.Any(), mondayCached, gomock.Any()).DoAndReturn(snapshot(model.DateSnapshot{
					Generation: 2,
					Intervals:  []model.Interval{{Start: monday(14, 0), End: monday(17, 0)}},
				}))
			},
			want: []string{"10:00", "11:00", "12:00"},
		},
		{
			name: "snapshot from an older generation is ignored",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), mondayGen, gomock.Any()).DoAndReturn(generation(3))
				mockCache.EXPECT().Get(gomock.Any(), mondayCached, gomock.Any()).DoAndReturn(snapshot(model.DateSnapshot{
					Generation: 2,
					Intervals:  []model.Interval{},
				}))
				mockRepo.EXPECT().ListByDate(gomock.Any(), "2026-10-19").Return([]model.Booking{booked}, nil)
				mockCache.EXPECT().Save(gomock.Any(), mondayCached, model.DateSnapshot{
					Generation: 3,
					Intervals:  model.IntervalsOf([]model.Booking{booked}),
				}, cacheTTL).Return(nil)
			},
			want: []string{"12:00", "14:00", "15:00", "16:00"},
		},
		{
			name: "cache miss reads the store and fills the cache",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), mondayGen, gomock.Any()).Return(cache.Nil)
				mockCache.EXPECT().Get(gomock.Any(), mondayCached, gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().ListByDate(gomock.Any(), "2026-10-19").Return([]model.Booking{booked}, nil)
				mockCache.EXPECT().Save(gomock.Any(), mondayCached, model.DateSnapshot{
					Generation: 0,
					Intervals:  model.IntervalsOf([]model.Booking{booked}),
				}, cacheTTL).Return(nil)
			},
			want: []string{"12:00", "14:00", "15:00", "16:00"},
		},
		{
			name: "snapshot read failure falls back to the store",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), mondayGen, gomock.Any()).Return(cache.Nil)
				mockCache.EXPECT().Get(gomock.Any(), mondayCached, gomock.Any()).Return(errors.New("redis down"))
				mockRepo.EXPECT().ListByDate(gomock.Any(), "2026-10-19").Return([]model.Booking{}, nil)
				mockCache.EXPECT().Save(gomock.Any(), mondayCached, gomock.Any(), cacheTTL).Return(errors.New("redis down"))
			},
			want: []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00"},
		},
		{
			name: "unreadable generation bypasses the cache",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), mondayGen, gomock.Any()).Return(errors.New("redis down"))
				mockRepo.EXPECT().ListByDate(gomock.Any(), "2026-10-19").Return([]model.Booking{booked}, nil)
			},
			want: []string{"12:00", "14:00", "15:00", "16:00"},
		},
		{
			name: "store failure is returned",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), mondayGen, gomock.Any()).Return(cache.Nil)
				mockCache.EXPECT().Get(gomock.Any(), mondayCached, gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().ListByDate(gomock.Any(), "2026-10-19").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			slots, err := svc.AvailableSlots(ctx, monday(0, 0), time.Hour)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, starts(slots))
		})
	}
}

// memoryCache is an in-process RedisCache that serializes values the way the redis cache does.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = raw

	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	raw, ok := c.values[key]
	c.mu.Unlock()

	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(raw, value)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, key)

	return nil
}

func (c *memoryCache) Clear(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.values {
		if strings.HasPrefix(key, prefix) {
			delete(c.values, key)
		}
	}

	return nil
}

func (c *memoryCache) Increment(_ context.Context, key string, _ int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int64
	if raw, ok := c.values[key]; ok {
		if err := json.Unmarshal(raw, &count); err != nil {
			return 0, err
		}
	}

	count++
	c.values[key] = []byte(strconv.FormatInt(count, 10))

	return count, nil
}

// commitDuringRead lets a booking commit between the store read and the cache fill of the first
// ListByDate call.
type commitDuringRead struct {
	repository.Booking

	commit func()
	once   sync.Once
	reads  int
}

func (r *commitDuringRead) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	r.reads++

	bookings, err := r.Booking.ListByDate(ctx, date)

	r.once.Do(r.commit)

	return bookings, err
}

func TestBookingService_CommitDuringSlotReadIsNotCachedAsFree(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	shared := newMemoryCache()
	cfg := newConfig(t)
	clock := timezone.FixedClock(monday(8, 30))

	writer := service.New(store, clock, cfg, shared, kafka.New(&config.Config{}), mocks.NewOtel())

	racing := &commitDuringRead{Booking: store}
	racing.commit = func() {
		_, err := writer.CreateBooking(ctx, 42, monday(10, 0), monday(11, 0))
		require.NoError(t, err)
	}

	reader := service.New(racing, clock, cfg, shared, kafka.New(&config.Config{}), mocks.NewOtel())

	// The read started before the commit, so it may still offer 10:00.
	_, err := reader.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)

	after, err := reader.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)
	assert.NotContains(t, starts(after), "10:00")
	assert.Equal(t, 2, racing.reads)

	cached, err := reader.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, after, cached)
	assert.Equal(t, 2, racing.reads, "current snapshot is served from the cache")
}

func TestBookingService_FailuresAreTraced(t *testing.T) {
	ctx := context.Background()
	recorder := mocks.NewRecorder()
	svc := service.New(newFileStore(t), timezone.FixedClock(monday(8, 30)), newConfig(t), cache.NewNoopCache(), kafka.New(&config.Config{}), recorder)

	_, err := svc.AvailableSlots(ctx, monday(0, 0), 90*time.Minute)
	require.ErrorIs(t, err, model.ErrInvalidSlot)

	_, err = svc.CreateBooking(ctx, 1, monday(13, 0), monday(14, 0))
	require.ErrorIs(t, err, model.ErrInvalidSlot)

	_, err = svc.CreateBooking(ctx, 1, monday(10, 0), monday(11, 0))
	require.NoError(t, err)

	_, err = svc.AvailableSlots(ctx, monday(0, 0), time.Hour)
	require.NoError(t, err)

	slotErrors := recorder.Errors("service.AvailableSlots")
	require.Len(t, slotErrors, 1)
	assert.ErrorIs(t, slotErrors[0], model.ErrInvalidSlot)

	createErrors := recorder.Errors("service.CreateBooking")
	require.Len(t, createErrors, 1)
	assert.ErrorIs(t, createErrors[0], model.ErrInvalidSlot)

	assert.Contains(t, recorder.Spans(), "service.AvailableSlots")
}

func TestBookingService_AvailableDates(t *testing.T) {
	svc := newService(t, newFileStore(t), monday(9, 0))
	ctx := context.Background()

	dates := svc.AvailableDates(ctx)
	require.Len(t, dates, 10)
	assert.Equal(t, monday(0, 0), dates[0])

	assert.Equal(t, []time.Duration{time.Hour, 2 * time.Hour, 3 * time.Hour, 4 * time.Hour}, svc.Durations(ctx))
}
