package testutil

import (
	"vocabdrill/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) LoadWords() ([]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockWordRepository) LoadHistorical() ([]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

// MockMistakeRepository is a mock for MistakeRepository
type MockMistakeRepository struct {
	mock.Mock
}

func (m *MockMistakeRepository) LoadMistakes() ([]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockMistakeRepository) SaveMistakes(mistakes []domain.Mistake) error {
	args := m.Called(mistakes)
	return args.Error(0)
}
