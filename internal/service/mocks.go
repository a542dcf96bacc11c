package service

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockCoreTeamRepository struct {
	mock.Mock
}

func (m *MockCoreTeamRepository) Create(ctx context.Context, member *domain.CoreTeamMember) (*domain.CoreTeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoreTeamMember), args.Error(1)
}

func (m *MockCoreTeamRepository) Update(ctx context.Context, member *domain.CoreTeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockCoreTeamRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCoreTeamRepository) List(ctx context.Context) ([]*domain.CoreTeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CoreTeamMember), args.Error(1)
}

func (m *MockCoreTeamRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) GetByID(ctx context.Context, id int) (*domain.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) SetActive(ctx context.Context, id int, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Announcement, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Get(ctx context.Context) (*domain.ContactInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactInfo), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, info *domain.ContactInfo) (*domain.ContactInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactInfo), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, info *domain.ContactInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}
