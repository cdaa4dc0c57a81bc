package service

import (
	"context"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int) (model.User, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *mockUserStore) GetByUniqueKey(ctx context.Context, field, value string) (model.User, bool, error) {
	args := m.Called(ctx, field, value)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *mockUserStore) GetByCredentials(ctx context.Context, username, password string) (model.User, bool, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *mockUserStore) Save(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user model.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) DeleteByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCharacterStore struct {
	mock.Mock
}

func (m *mockCharacterStore) GetAll(ctx context.Context) ([]model.Character, error) {
	args := m.Called(ctx)
	chars, _ := args.Get(0).([]model.Character)
	return chars, args.Error(1)
}

func (m *mockCharacterStore) GetByID(ctx context.Context, ownerID int) ([]model.Character, error) {
	args := m.Called(ctx, ownerID)
	chars, _ := args.Get(0).([]model.Character)
	return chars, args.Error(1)
}

func (m *mockCharacterStore) GetByUniqueKey(ctx context.Context, field, value string) (model.Character, bool, error) {
	args := m.Called(ctx, field, value)
	return args.Get(0).(model.Character), args.Bool(1), args.Error(2)
}

func (m *mockCharacterStore) Save(ctx context.Context, character model.Character) (model.Character, error) {
	args := m.Called(ctx, character)
	return args.Get(0).(model.Character), args.Error(1)
}

func (m *mockCharacterStore) Update(ctx context.Context, character model.Character) (bool, error) {
	args := m.Called(ctx, character)
	return args.Bool(0), args.Error(1)
}

func (m *mockCharacterStore) DeleteByID(ctx context.Context, ownerID int) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

type mockStatStore struct {
	mock.Mock
}

func (m *mockStatStore) GetAll(ctx context.Context) ([]model.Stat, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]model.Stat)
	return stats, args.Error(1)
}

func (m *mockStatStore) GetByID(ctx context.Context, ownerID int) ([]model.Stat, error) {
	args := m.Called(ctx, ownerID)
	stats, _ := args.Get(0).([]model.Stat)
	return stats, args.Error(1)
}

func (m *mockStatStore) GetOwnerByUniqueKey(ctx context.Context, field, value string) (model.User, bool, error) {
	args := m.Called(ctx, field, value)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *mockStatStore) Save(ctx context.Context, owner model.User, avgRank, avgCharLevel float64) (model.Stat, error) {
	args := m.Called(ctx, owner, avgRank, avgCharLevel)
	return args.Get(0).(model.Stat), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Create(ctx context.Context, principal model.Principal) (string, error) {
	args := m.Called(ctx, principal)
	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (model.Principal, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Principal), args.Bool(1), args.Error(2)
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchEntries(ctx context.Context, leagueName, accountName string) ([]model.LadderEntry, error) {
	args := m.Called(ctx, leagueName, accountName)
	entries, _ := args.Get(0).([]model.LadderEntry)
	return entries, args.Error(1)
}

type mockBoard struct {
	mock.Mock
}

func (m *mockBoard) Record(ctx context.Context, accountName string, avgRank float64) error {
	args := m.Called(ctx, accountName, avgRank)
	return args.Error(0)
}

func (m *mockBoard) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]model.LeaderboardEntry)
	return entries, args.Error(1)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}
