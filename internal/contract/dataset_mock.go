package contract

import (
	"context"

	"github.com/huangsam/pricedash/schema"
	"github.com/stretchr/testify/mock"
)

// MockDatasetSource is a mock implementation of DatasetSource for testing.
type MockDatasetSource struct {
	mock.Mock
}

var _ DatasetSource = &MockDatasetSource{} // Compile-time check

// Load implements the DatasetSource interface.
func (m *MockDatasetSource) Load(ctx context.Context) ([]schema.PriceRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.PriceRecord)
	return records, args.Error(1)
}

// Describe implements the DatasetSource interface.
func (m *MockDatasetSource) Describe() string {
	args := m.Called()
	return args.String(0)
}
