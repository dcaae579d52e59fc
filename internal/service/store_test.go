package service_test

import (
	"context"
	"sync"

	"dailytodo/internal/model"
	"dailytodo/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type logKey struct {
	userID uuid.UUID
	day    model.Day
}

// memoryStore behaves like the database: one log per key, version-checked replaces.
type memoryStore struct {
	mu     sync.Mutex
	logs   map[logKey]model.DailyLog
	writes int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{logs: map[logKey]model.DailyLog{}}
}

func (s *memoryStore) FindByUserAndDay(_ context.Context, userID uuid.UUID, day model.Day) (*model.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.logs[logKey{userID, day}]
	if !ok {
		return nil, nil
	}
	stored.Tasks = stored.Tasks.Clone()
	return &stored, nil
}

func (s *memoryStore) Upsert(_ context.Context, dailyLog *model.DailyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := logKey{dailyLog.UserID, dailyLog.Day}
	stored, exists := s.logs[key]
	if !dailyLog.Persisted() {
		if exists {
			return repository.ErrDuplicateKey
		}
		dailyLog.ID = uuid.New()
		dailyLog.Version = 1
	} else {
		if !exists || stored.Version != dailyLog.Version {
			return repository.ErrVersionConflict
		}
		dailyLog.Version++
	}

	saved := *dailyLog
	saved.Tasks = dailyLog.Tasks.Clone()
	s.logs[key] = saved
	s.writes++
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}

func (s *memoryStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Мок хранилища дневных списков
type MockDailyLogStore struct {
	mock.Mock
}

func (m *MockDailyLogStore) FindByUserAndDay(ctx context.Context, userID uuid.UUID, day model.Day) (*model.DailyLog, error) {
	args := m.Called(ctx, userID, day)
	dailyLog := args.Get(0)
	if dailyLog == nil {
		return nil, args.Error(1)
	}
	return dailyLog.(*model.DailyLog), args.Error(1)
}

func (m *MockDailyLogStore) Upsert(ctx context.Context, dailyLog *model.DailyLog) error {
	args := m.Called(ctx, dailyLog)
	return args.Error(0)
}

// Мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
