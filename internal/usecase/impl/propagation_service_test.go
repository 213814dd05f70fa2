package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	mockRepo "iothub/internal/mocks/repository"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type propagationFixture struct {
	deviceRepo         *mockRepo.MockDeviceRepository
	deviceParamRepo    *mockRepo.MockDeviceParameterRepository
	subDeviceRepo      *mockRepo.MockSubDeviceRepository
	subDeviceParamRepo *mockRepo.MockSubDeviceParameterRepository
	settingRepo        *mockRepo.MockSettingRepository
	systemParamRepo    *mockRepo.MockSystemParameterRepository
	grantRepo          *mockRepo.MockGrantRepository
	connectionRepo     *mockRepo.MockConnectionRepository
	authRepo           *mockRepo.MockAuthRepository
	userRepo           *mockRepo.MockUserRepository
	pushTokenRepo      *mockRepo.MockPushTokenRepository
	service            usecase.PropagationUsecase
}

func createTestPropagationService(t *testing.T) propagationFixture {
	fixture := propagationFixture{
		deviceRepo:         mockRepo.NewMockDeviceRepository(t),
		deviceParamRepo:    mockRepo.NewMockDeviceParameterRepository(t),
		subDeviceRepo:      mockRepo.NewMockSubDeviceRepository(t),
		subDeviceParamRepo: mockRepo.NewMockSubDeviceParameterRepository(t),
		settingRepo:        mockRepo.NewMockSettingRepository(t),
		systemParamRepo:    mockRepo.NewMockSystemParameterRepository(t),
		grantRepo:          mockRepo.NewMockGrantRepository(t),
		connectionRepo:     mockRepo.NewMockConnectionRepository(t),
		authRepo:           mockRepo.NewMockAuthRepository(t),
		userRepo:           mockRepo.NewMockUserRepository(t),
		pushTokenRepo:      mockRepo.NewMockPushTokenRepository(t),
	}

	fixture.service = NewPropagationService(PropagationServiceParams{
		DeviceRepo:         fixture.deviceRepo,
		DeviceParamRepo:    fixture.deviceParamRepo,
		SubDeviceRepo:      fixture.subDeviceRepo,
		SubDeviceParamRepo: fixture.subDeviceParamRepo,
		SettingRepo:        fixture.settingRepo,
		SystemParamRepo:    fixture.systemParamRepo,
		GrantRepo:          fixture.grantRepo,
		ConnectionRepo:     fixture.connectionRepo,
		AuthRepo:           fixture.authRepo,
		UserRepo:           fixture.userRepo,
		PushTokenRepo:      fixture.pushTokenRepo,
		Logger:             newTestLogger(),
	})

	return fixture
}

func TestPropagationService_RenameUserEmail_RewritesEveryCollection(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	oldEmail := "alice@example.com"
	newEmail := "alice@new.example.com"

	var order []string

	fixture.deviceRepo.EXPECT().RenameOwner(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "device owner") }).Return(nil)
	fixture.deviceRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "device audit") }).Return(nil)
	fixture.deviceParamRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "device param audit") }).Return(nil)
	fixture.subDeviceRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "sub-device audit") }).Return(nil)
	fixture.subDeviceParamRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "sub-device param audit") }).Return(nil)
	fixture.settingRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "setting audit") }).Return(nil)
	fixture.systemParamRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "system param audit") }).Return(nil)
	fixture.grantRepo.EXPECT().RenameEmails(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "grants") }).Return(nil)
	fixture.connectionRepo.EXPECT().RenameIdentity(ctx, entity.IdentityKindEmail, oldEmail, newEmail).
		Run(func(context.Context, entity.IdentityKind, string, string) { order = append(order, "connections") }).Return(nil)
	fixture.authRepo.EXPECT().RenameIdentifier(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "auth identifier") }).Return(nil)
	fixture.pushTokenRepo.EXPECT().RenameEmail(ctx, oldEmail, newEmail).
		Run(func(context.Context, string, string) { order = append(order, "push tokens") }).Return(nil)

	err := fixture.service.RenameUserEmail(ctx, oldEmail, newEmail)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"device owner",
		"device audit",
		"device param audit",
		"sub-device audit",
		"sub-device param audit",
		"setting audit",
		"system param audit",
		"grants",
		"connections",
		"auth identifier",
		"push tokens",
	}, order)
}

func TestPropagationService_RenameUserEmail_StepFailureDoesNotAbortCascade(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	oldEmail := "alice@example.com"
	newEmail := "alice@new.example.com"

	fixture.deviceRepo.EXPECT().RenameOwner(ctx, oldEmail, newEmail).Return(nil)
	fixture.deviceRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).Return(errTestInfra)
	fixture.deviceParamRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).Return(nil)
	fixture.subDeviceRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).Return(nil)
	fixture.subDeviceParamRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).Return(nil)
	fixture.settingRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).Return(nil)
	fixture.systemParamRepo.EXPECT().RenameAuditEmails(ctx, oldEmail, newEmail).Return(nil)
	fixture.grantRepo.EXPECT().RenameEmails(ctx, oldEmail, newEmail).Return(nil)
	fixture.connectionRepo.EXPECT().RenameIdentity(ctx, entity.IdentityKindEmail, oldEmail, newEmail).Return(nil)
	fixture.authRepo.EXPECT().RenameIdentifier(ctx, oldEmail, newEmail).Return(nil)
	fixture.pushTokenRepo.EXPECT().RenameEmail(ctx, oldEmail, newEmail).Return(nil)

	err := fixture.service.RenameUserEmail(ctx, oldEmail, newEmail)
	require.Error(t, err)
	assert.ErrorIs(t, err, errTestInfra)
}

func TestPropagationService_RenameSubDevice(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().RenameSubDeviceID(ctx, "sensor-1", "sensor-1b").Return(nil)
	fixture.subDeviceParamRepo.EXPECT().RenameSubDeviceID(ctx, "sensor-1", "sensor-1b").Return(nil)

	err := fixture.service.RenameSubDevice(ctx, "sensor-1", "sensor-1b")
	require.NoError(t, err)
}

func TestPropagationService_DeleteDevice_RemovesDependentsFirst(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	fixture.deviceParamRepo.EXPECT().DeleteByDevice(ctx, "pump-1").Return(nil)
	fixture.subDeviceRepo.EXPECT().FindByDevice(ctx, "pump-1").
		Return([]*entity.SubDevice{
			{SubDeviceID: "sensor-1", BindedTo: "pump-1"},
			{SubDeviceID: "sensor-2", BindedTo: "pump-1"},
		}, nil)
	fixture.subDeviceParamRepo.EXPECT().DeleteBySubDevice(ctx, "sensor-1").Return(nil)
	fixture.subDeviceRepo.EXPECT().DeleteBySubDeviceID(ctx, "sensor-1").Return(nil)
	fixture.subDeviceParamRepo.EXPECT().DeleteBySubDevice(ctx, "sensor-2").Return(nil)
	fixture.subDeviceRepo.EXPECT().DeleteBySubDeviceID(ctx, "sensor-2").Return(nil)
	fixture.settingRepo.EXPECT().DeleteByDevice(ctx, "pump-1").Return(nil)
	fixture.grantRepo.EXPECT().DeleteByDevice(ctx, "pump-1").Return(nil)
	fixture.connectionRepo.EXPECT().DeleteByIdentity(ctx, entity.IdentityKindDeviceID, "pump-1").Return(nil)
	fixture.deviceRepo.EXPECT().DeleteByDeviceID(ctx, "pump-1").Return(nil)

	err := fixture.service.DeleteDevice(ctx, "pump-1")
	require.NoError(t, err)
}

func TestPropagationService_DeleteUser_CascadesThroughOwnedDevices(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	email := "alice@example.com"

	fixture.deviceRepo.EXPECT().FindByOwner(ctx, email).
		Return([]*entity.Device{{DeviceID: "pump-1", Owner: email}}, nil)

	// Owned devices go through the full device cascade.
	fixture.deviceParamRepo.EXPECT().DeleteByDevice(ctx, "pump-1").Return(nil)
	fixture.subDeviceRepo.EXPECT().FindByDevice(ctx, "pump-1").Return([]*entity.SubDevice{}, nil)
	fixture.settingRepo.EXPECT().DeleteByDevice(ctx, "pump-1").Return(nil)
	fixture.grantRepo.EXPECT().DeleteByDevice(ctx, "pump-1").Return(nil)
	fixture.connectionRepo.EXPECT().DeleteByIdentity(ctx, entity.IdentityKindDeviceID, "pump-1").Return(nil)
	fixture.deviceRepo.EXPECT().DeleteByDeviceID(ctx, "pump-1").Return(nil)

	fixture.grantRepo.EXPECT().DeleteByGrantee(ctx, email).Return(nil)
	fixture.connectionRepo.EXPECT().DeleteByIdentity(ctx, entity.IdentityKindEmail, email).Return(nil)
	fixture.authRepo.EXPECT().DeleteByIdentifier(ctx, email).Return(nil)
	fixture.pushTokenRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)
	fixture.userRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)

	err := fixture.service.DeleteUser(ctx, email)
	require.NoError(t, err)
}

func TestPropagationService_DeleteUser_ReportsListFailureButFinishes(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	email := "alice@example.com"

	fixture.deviceRepo.EXPECT().FindByOwner(ctx, email).Return(nil, errTestInfra)

	fixture.grantRepo.EXPECT().DeleteByGrantee(ctx, email).Return(nil)
	fixture.connectionRepo.EXPECT().DeleteByIdentity(ctx, entity.IdentityKindEmail, email).Return(nil)
	fixture.authRepo.EXPECT().DeleteByIdentifier(ctx, email).Return(nil)
	fixture.pushTokenRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)
	fixture.userRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)

	err := fixture.service.DeleteUser(ctx, email)
	require.Error(t, err)
	assert.ErrorIs(t, err, errTestInfra)
}

func TestPropagationService_DeleteSubDevice(t *testing.T) {
	fixture := createTestPropagationService(t)
	ctx := context.Background()

	fixture.subDeviceParamRepo.EXPECT().DeleteBySubDevice(ctx, "sensor-1").Return(nil)
	fixture.subDeviceRepo.EXPECT().DeleteBySubDeviceID(ctx, "sensor-1").Return(nil)

	err := fixture.service.DeleteSubDevice(ctx, "sensor-1")
	require.NoError(t, err)
}
