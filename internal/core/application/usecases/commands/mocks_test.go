package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order, expectedVersion int64) error {
	args := m.Called(ctx, o, expectedVersion)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindOldestInStatus(ctx context.Context, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, status)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAdlLedger struct{ mock.Mock }

func (m *MockAdlLedger) Append(ctx context.Context, entry *adl.Entry) (kernel.UUID, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockAdlLedger) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*adl.Entry, error) {
	args := m.Called(ctx, orderID)
	entries, _ := args.Get(0).([]*adl.Entry)
	return entries, args.Error(1)
}

func (m *MockAdlLedger) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockMasterRepository struct{ mock.Mock }

func (m *MockMasterRepository) Add(ctx context.Context, aggregate *master.Master) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMasterRepository) Get(ctx context.Context, id kernel.UUID) (*master.Master, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*master.Master)
	return found, args.Error(1)
}

func (m *MockMasterRepository) List(ctx context.Context) ([]*master.Master, error) {
	args := m.Called(ctx)
	masters, _ := args.Get(0).([]*master.Master)
	return masters, args.Error(1)
}

func (m *MockMasterRepository) GetAllFree(ctx context.Context) ([]*master.Master, error) {
	args := m.Called(ctx)
	masters, _ := args.Get(0).([]*master.Master)
	return masters, args.Error(1)
}

type MockAssignmentPolicy struct{ mock.Mock }

func (m *MockAssignmentPolicy) Dispatch(o *order.Order, candidates []*master.Master, now time.Time) (*master.Master, error) {
	args := m.Called(o, candidates, now)
	chosen, _ := args.Get(0).(*master.Master)
	return chosen, args.Error(1)
}

// MockUoW implements every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AdlLedger() ports.AdlLedger {
	args := m.Called()
	return args.Get(0).(ports.AdlLedger)
}

func (m *MockUoW) MasterRepository() ports.MasterRepository {
	args := m.Called()
	return args.Get(0).(ports.MasterRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockMasterUoWFactory struct{ mock.Mock }

func (m *MockMasterUoWFactory) Create() commands.MasterUoW {
	args := m.Called()
	return args.Get(0).(commands.MasterUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
