package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	mockRepo "iothub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRecipientService(t *testing.T) (*mockRepo.MockDeviceRepository, *mockRepo.MockGrantRepository, *recipientService) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockGrantRepo := mockRepo.NewMockGrantRepository(t)

	service := NewRecipientService(RecipientServiceParams{
		DeviceRepo: mockDeviceRepo,
		GrantRepo:  mockGrantRepo,
		Logger:     newTestLogger(),
	})

	return mockDeviceRepo, mockGrantRepo, service.(*recipientService)
}

func TestRecipientService_ForDevice_FansOutToOwnerAndGrantees(t *testing.T) {
	mockDeviceRepo, mockGrantRepo, service := createTestRecipientService(t)
	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	mockGrantRepo.EXPECT().
		FindActiveByDevice(ctx, "pump-1").
		Return([]*entity.AccessGrant{
			{DeviceID: "pump-1", GranteeEmail: "bob@example.com"},
			{DeviceID: "pump-1", GranteeEmail: "carol@example.com"},
		}, nil)

	recipients, err := service.ForDevice(ctx, "pump-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"pump-1", "alice@example.com", "bob@example.com", "carol@example.com"}, recipients)
}

func TestRecipientService_ForDevice_DeduplicatesOwnerGrant(t *testing.T) {
	mockDeviceRepo, mockGrantRepo, service := createTestRecipientService(t)
	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	// A stale self-grant must not produce a duplicate recipient.
	mockGrantRepo.EXPECT().
		FindActiveByDevice(ctx, "pump-1").
		Return([]*entity.AccessGrant{
			{DeviceID: "pump-1", GranteeEmail: "alice@example.com"},
			{DeviceID: "pump-1", GranteeEmail: "bob@example.com"},
		}, nil)

	recipients, err := service.ForDevice(ctx, "pump-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"pump-1", "alice@example.com", "bob@example.com"}, recipients)
}

func TestRecipientService_ForDevice_MissingDeviceYieldsEmptySet(t *testing.T) {
	mockDeviceRepo, _, service := createTestRecipientService(t)
	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindByDeviceID(ctx, "ghost").
		Return(nil, repository.ErrDeviceNotFound)

	recipients, err := service.ForDevice(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestRecipientService_ForUser(t *testing.T) {
	_, _, service := createTestRecipientService(t)

	recipients, err := service.ForUser(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com"}, recipients)

	recipients, err = service.ForUser(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, recipients)
}
