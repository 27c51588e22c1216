package usecase_test

import (
	"context"
	"sync"
	"testing"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/inventory/usecase"
	"ot-inventory/internal/shared/errors"
	"ot-inventory/internal/shared/eventbus"
	"ot-inventory/internal/shared/logger"
	"ot-inventory/internal/shared/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Mock repositories
type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InventoryItem), args.Error(1)
}

func (m *mockItemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*model.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InventoryItem), args.Error(1)
}

func (m *mockItemRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStockEventStore struct {
	mock.Mock
}

func (m *mockStockEventStore) Append(ctx context.Context, event model.StockEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockStockEventStore) Recent(ctx context.Context, limit int64) ([]model.StockEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockEvent), args.Error(1)
}

// recordingBus captures published events synchronously so assertions do not
// race against PublishAndForget goroutines.
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func newRecordingBus() *recordingBus {
	return &recordingBus{}
}

func (b *recordingBus) Subscribe(eventType string, handler eventbus.Handler) {}

func (b *recordingBus) Publish(ctx context.Context, event eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) PublishAndForget(ctx context.Context, event eventbus.Event) {
	_ = b.Publish(ctx, event)
}

func (b *recordingBus) Unsubscribe(eventType string)            {}
func (b *recordingBus) GetSubscriberCount(eventType string) int { return 0 }
func (b *recordingBus) GetEventTypes() []string                 { return nil }

func (b *recordingBus) typesPublished() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]string, 0, len(b.events))
	for _, e := range b.events {
		types = append(types, e.Type())
	}
	return types
}

type InventoryUsecaseTestSuite struct {
	suite.Suite
	mockItems  *mockItemRepository
	mockEvents *mockStockEventStore
	bus        *recordingBus
	usecase    *usecase.InventoryUsecase
}

func (suite *InventoryUsecaseTestSuite) SetupTest() {
	suite.mockItems = &mockItemRepository{}
	suite.mockEvents = &mockStockEventStore{}
	suite.bus = newRecordingBus()
	suite.usecase = usecase.NewInventoryUsecase(suite.mockItems, suite.mockEvents, suite.bus, logger.NewLogger())
}

func (suite *InventoryUsecaseTestSuite) storedItem(quantity, minimum int) *model.InventoryItem {
	return &model.InventoryItem{
		ID:              "item-1",
		Name:            "Surgical Gloves",
		Type:            model.ItemTypeDisposable,
		Quantity:        quantity,
		MinimumQuantity: minimum,
		Status:          model.ItemStatusAvailable,
		IsConsumable:    true,
	}
}

func (suite *InventoryUsecaseTestSuite) TestCreateItem_Success() {
	// Arrange
	suite.mockItems.On("Create", mock.Anything, mock.MatchedBy(func(item *model.InventoryItem) bool {
		return item.ID != "" &&
			item.Name == "Ventilator" &&
			item.Status == model.ItemStatusAvailable
	})).Return(nil)

	// Act
	item, err := suite.usecase.CreateItem(context.Background(), usecase.CreateItemRequest{
		Name:            "Ventilator",
		Type:            model.ItemTypeEquipment,
		Quantity:        5,
		MinimumQuantity: 2,
	})

	// Assert
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), item.ID)
	assert.Equal(suite.T(), 5, item.Quantity)
	suite.mockItems.AssertExpectations(suite.T())
}

func (suite *InventoryUsecaseTestSuite) TestCreateItem_ZeroQuantityIsOutOfStock() {
	suite.mockItems.On("Create", mock.Anything, mock.Anything).Return(nil)

	item, err := suite.usecase.CreateItem(context.Background(), usecase.CreateItemRequest{
		Name: "Sutures",
		Type: model.ItemTypeDisposable,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.ItemStatusOutOfStock, item.Status)
}

func (suite *InventoryUsecaseTestSuite) TestCreateItem_MissingName() {
	item, err := suite.usecase.CreateItem(context.Background(), usecase.CreateItemRequest{
		Type: model.ItemTypeEquipment,
	})

	assert.Nil(suite.T(), item)
	assert.True(suite.T(), errors.IsValidation(err))
	suite.mockItems.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *InventoryUsecaseTestSuite) TestAdjustStock_Issue() {
	// Arrange
	suite.mockItems.On("GetByID", mock.Anything, "item-1").
		Return(suite.storedItem(50, 20), nil)
	suite.mockItems.On("Update", mock.Anything, mock.MatchedBy(func(item *model.InventoryItem) bool {
		return item.Quantity == 40
	})).Return(nil)
	suite.mockEvents.On("Append", mock.Anything, mock.MatchedBy(func(e model.StockEvent) bool {
		return e.ItemID == "item-1" && e.Delta == -10 && e.Quantity == 40 && !e.LowStock
	})).Return(nil)

	ctx := utils.WithUserID(context.Background(), "user-123")

	// Act
	item, err := suite.usecase.AdjustStock(ctx, "item-1", usecase.AdjustStockRequest{
		Delta:  -10,
		Reason: model.StockReasonIssued,
	})

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 40, item.Quantity)
	assert.Contains(suite.T(), suite.bus.typesPublished(), eventbus.EventTypeStockAdjusted)
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *InventoryUsecaseTestSuite) TestAdjustStock_LowStockFlagged() {
	// Arrange
	suite.mockItems.On("GetByID", mock.Anything, "item-1").
		Return(suite.storedItem(25, 20), nil)
	suite.mockItems.On("Update", mock.Anything, mock.Anything).Return(nil)
	suite.mockEvents.On("Append", mock.Anything, mock.MatchedBy(func(e model.StockEvent) bool {
		return e.Quantity == 18 && e.LowStock
	})).Return(nil)

	// Act
	_, err := suite.usecase.AdjustStock(context.Background(), "item-1", usecase.AdjustStockRequest{
		Delta:  -7,
		Reason: model.StockReasonIssued,
	})

	// Assert
	require.NoError(suite.T(), err)
	types := suite.bus.typesPublished()
	assert.Contains(suite.T(), types, eventbus.EventTypeStockAdjusted)
	assert.Contains(suite.T(), types, eventbus.EventTypeStockLow)
}

func (suite *InventoryUsecaseTestSuite) TestAdjustStock_InsufficientStock() {
	suite.mockItems.On("GetByID", mock.Anything, "item-1").
		Return(suite.storedItem(5, 2), nil)

	item, err := suite.usecase.AdjustStock(context.Background(), "item-1", usecase.AdjustStockRequest{
		Delta:  -6,
		Reason: model.StockReasonIssued,
	})

	assert.Nil(suite.T(), item)
	assert.ErrorIs(suite.T(), err, errors.ErrInsufficientStock)
	suite.mockItems.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *InventoryUsecaseTestSuite) TestAdjustStock_ZeroDelta() {
	item, err := suite.usecase.AdjustStock(context.Background(), "item-1", usecase.AdjustStockRequest{
		Delta: 0,
	})

	assert.Nil(suite.T(), item)
	assert.ErrorIs(suite.T(), err, errors.ErrInvalidAdjustment)
	suite.mockItems.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *InventoryUsecaseTestSuite) TestAdjustStock_DepletionMarksOutOfStock() {
	suite.mockItems.On("GetByID", mock.Anything, "item-1").
		Return(suite.storedItem(3, 2), nil)
	suite.mockItems.On("Update", mock.Anything, mock.MatchedBy(func(item *model.InventoryItem) bool {
		return item.Quantity == 0 && item.Status == model.ItemStatusOutOfStock
	})).Return(nil)
	suite.mockEvents.On("Append", mock.Anything, mock.Anything).Return(nil)

	item, err := suite.usecase.AdjustStock(context.Background(), "item-1", usecase.AdjustStockRequest{
		Delta:  -3,
		Reason: model.StockReasonIssued,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.ItemStatusOutOfStock, item.Status)
}

func (suite *InventoryUsecaseTestSuite) TestAdjustStock_AuditFailureDoesNotFailAdjustment() {
	// The stock change is already committed; a broken audit stream must not
	// roll it back or surface to the caller.
	suite.mockItems.On("GetByID", mock.Anything, "item-1").
		Return(suite.storedItem(50, 20), nil)
	suite.mockItems.On("Update", mock.Anything, mock.Anything).Return(nil)
	suite.mockEvents.On("Append", mock.Anything, mock.Anything).Return(assert.AnError)

	item, err := suite.usecase.AdjustStock(context.Background(), "item-1", usecase.AdjustStockRequest{
		Delta:  10,
		Reason: model.StockReasonReceived,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 60, item.Quantity)
}

func (suite *InventoryUsecaseTestSuite) TestRecentStockEvents_ClampsLimit() {
	suite.mockEvents.On("Recent", mock.Anything, int64(100)).
		Return([]model.StockEvent{}, nil)

	_, err := suite.usecase.RecentStockEvents(context.Background(), -5)

	require.NoError(suite.T(), err)
	suite.mockEvents.AssertExpectations(suite.T())
}

func TestInventoryUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryUsecaseTestSuite))
}
