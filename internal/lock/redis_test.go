package lock

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	"github.com/metinatakli/seat-reservation-engine/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RedisLockerTestSuite struct {
	suite.Suite
	client *mocks.MockRedisClient
	locker *RedisLocker
}

func (s *RedisLockerTestSuite) SetupTest() {
	s.client = new(mocks.MockRedisClient)
	s.locker = NewRedisLocker(
		s.client,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithWaitTimeout(40*time.Millisecond),
		WithRetryInterval(5*time.Millisecond),
		WithLeaseTTL(time.Second),
	)
}

func TestRedisLockerSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerTestSuite))
}

func (s *RedisLockerTestSuite) TestLock() {
	key := lockKey("show-1")

	tests := []struct {
		name       string
		setupMocks func()
		wantErr    error
		wantLocked bool
	}{
		{
			name: "should acquire lease and release it with the same token",
			setupMocks: func() {
				s.client.On("SetNX", mock.Anything, key, mock.AnythingOfType("string"), time.Second).
					Return(redis.NewBoolResult(true, nil)).Once()
				s.client.On("EvalSha", mock.Anything, mock.Anything, []string{key}, mock.AnythingOfType("string")).
					Return(redis.NewCmdResult(int64(1), nil)).Once()
			},
			wantLocked: true,
		},
		{
			name: "should retry until the lease is free",
			setupMocks: func() {
				s.client.On("SetNX", mock.Anything, key, mock.Anything, time.Second).
					Return(redis.NewBoolResult(false, nil)).Twice()
				s.client.On("SetNX", mock.Anything, key, mock.Anything, time.Second).
					Return(redis.NewBoolResult(true, nil)).Once()
				s.client.On("EvalSha", mock.Anything, mock.Anything, []string{key}, mock.Anything).
					Return(redis.NewCmdResult(int64(1), nil)).Once()
			},
			wantLocked: true,
		},
		{
			name: "should return ErrBusy when the lease stays taken",
			setupMocks: func() {
				s.client.On("SetNX", mock.Anything, key, mock.Anything, time.Second).
					Return(redis.NewBoolResult(false, nil))
			},
			wantErr: domain.ErrBusy,
		},
		{
			name: "should fail when redis is unreachable",
			setupMocks: func() {
				s.client.On("SetNX", mock.Anything, key, mock.Anything, time.Second).
					Return(redis.NewBoolResult(false, mocks.MockRedisError{Msg: "connection refused"}))
			},
			wantErr: mocks.MockRedisError{Msg: "connection refused"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			unlock, err := s.locker.Lock(context.Background(), "show-1")

			if tt.wantErr != nil {
				s.Require().Error(err)
				s.True(errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				s.Nil(unlock)
				return
			}

			s.Require().NoError(err)
			unlock()
			unlock()

			s.client.AssertExpectations(s.T())
		})
	}
}

func (s *RedisLockerTestSuite) TestReleaseUsesAcquiredToken() {
	key := lockKey("show-2")

	var token string
	s.client.On("SetNX", mock.Anything, key, mock.Anything, time.Second).
		Run(func(args mock.Arguments) { token = args.String(2) }).
		Return(redis.NewBoolResult(true, nil)).Once()

	unlock, err := s.locker.Lock(context.Background(), "show-2")
	s.Require().NoError(err)

	s.client.On("EvalSha", mock.Anything, mock.Anything, []string{key}, token).
		Return(redis.NewCmdResult(int64(1), nil)).Once()

	unlock()

	s.client.AssertExpectations(s.T())
}
