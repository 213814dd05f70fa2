package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	mockRepo "iothub/internal/mocks/repository"
	mockSvc "iothub/internal/mocks/service"
	mockUC "iothub/internal/mocks/usecase"
	"iothub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	authRepo      *mockRepo.MockAuthRepository
	pushTokenRepo *mockRepo.MockPushTokenRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	propagation   *mockUC.MockPropagationUsecase
	recipients    *mockUC.MockRecipientUsecase
	notifier      *mockUC.MockNotifierUsecase
	service       usecase.UserUsecase
}

func createTestUserService(t *testing.T) userServiceFixture {
	fixture := userServiceFixture{
		txManager:     mockRepo.NewMockTransactionManager(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		authRepo:      mockRepo.NewMockAuthRepository(t),
		pushTokenRepo: mockRepo.NewMockPushTokenRepository(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		tokenService:  mockSvc.NewMockTokenService(t),
		propagation:   mockUC.NewMockPropagationUsecase(t),
		recipients:    mockUC.NewMockRecipientUsecase(t),
		notifier:      mockUC.NewMockNotifierUsecase(t),
	}

	fixture.service = NewUserService(UserServiceParams{
		TxManager:     fixture.txManager,
		UserRepo:      fixture.userRepo,
		AuthRepo:      fixture.authRepo,
		PushTokenRepo: fixture.pushTokenRepo,
		Hasher:        fixture.hasher,
		TokenService:  fixture.tokenService,
		Propagation:   fixture.propagation,
		Recipients:    fixture.recipients,
		Notifier:      fixture.notifier,
		Logger:        newTestLogger(),
	})

	return fixture
}

func TestUserService_Register_Success(t *testing.T) {
	fixture := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Password123!",
	}

	fixture.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindByIdentifier(ctx, providerEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, providerEmail, auth.Provider)
					assert.Equal(t, input.Email, auth.Identifier)
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fixture.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixture := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Password123!",
	}

	fixture.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindByIdentifier(ctx, providerEmail, input.Email).
				Return(&entity.Authentication{Identifier: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fixture.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.authRepo.EXPECT().
		FindByIdentifier(ctx, providerEmail, "alice@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)

	fixture.hasher.EXPECT().Check("Password123!", "hashed").Return(true)

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	fixture.tokenService.EXPECT().GenerateUserToken(userID).Return("signed-token", nil)

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	fixture.authRepo.EXPECT().
		FindByIdentifier(ctx, providerEmail, "alice@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)

	fixture.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	fixture.authRepo.EXPECT().
		FindByIdentifier(ctx, providerEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ChangeEmail_CascadesAndNotifies(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	fixture.userRepo.EXPECT().
		UpdateEmail(ctx, userID, "alice@new.example.com").
		Return(nil)

	fixture.propagation.EXPECT().
		RenameUserEmail(ctx, "alice@example.com", "alice@new.example.com").
		Return(nil)

	fixture.recipients.EXPECT().
		ForUser(ctx, "alice@new.example.com").
		Return([]string{"alice@new.example.com"}, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"alice@new.example.com"}, entity.EventUserUpdated, map[string]any{
			"oldEmail": "alice@example.com",
			"newEmail": "alice@new.example.com",
		}).
		Return(nil)

	err := fixture.service.ChangeEmail(ctx, userID, "alice@new.example.com")
	require.NoError(t, err)
}

func TestUserService_ChangeEmail_SameEmailIsNoOp(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	err := fixture.service.ChangeEmail(ctx, userID, "alice@example.com")
	require.NoError(t, err)
}

func TestUserService_ChangeEmail_CascadeFailureStillNotifies(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	fixture.userRepo.EXPECT().
		UpdateEmail(ctx, userID, "alice@new.example.com").
		Return(nil)

	// The primary row is renamed; a cascade failure is logged, not
	// surfaced, because a retry converges the copies.
	fixture.propagation.EXPECT().
		RenameUserEmail(ctx, "alice@example.com", "alice@new.example.com").
		Return(errTestInfra)

	fixture.recipients.EXPECT().
		ForUser(ctx, "alice@new.example.com").
		Return([]string{"alice@new.example.com"}, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"alice@new.example.com"}, entity.EventUserUpdated, map[string]any{
			"oldEmail": "alice@example.com",
			"newEmail": "alice@new.example.com",
		}).
		Return(nil)

	err := fixture.service.ChangeEmail(ctx, userID, "alice@new.example.com")
	require.NoError(t, err)
}

func TestUserService_ChangeEmail_DuplicateEmailRejected(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	fixture.userRepo.EXPECT().
		UpdateEmail(ctx, userID, "taken@example.com").
		Return(repository.ErrDuplicateUser)

	err := fixture.service.ChangeEmail(ctx, userID, "taken@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Delete_CascadeFailureSurfaces(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	fixture.propagation.EXPECT().
		DeleteUser(ctx, "alice@example.com").
		Return(errTestInfra)

	err := fixture.service.Delete(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errTestInfra)
}

func TestUserService_Delete_Success(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixture.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	fixture.propagation.EXPECT().
		DeleteUser(ctx, "alice@example.com").
		Return(nil)

	err := fixture.service.Delete(ctx, userID)
	require.NoError(t, err)
}

func TestUserService_RegisterPushToken(t *testing.T) {
	fixture := createTestUserService(t)
	ctx := context.Background()

	fixture.pushTokenRepo.EXPECT().
		Upsert(ctx, &entity.PushToken{
			Email:    "alice@example.com",
			Token:    "fcm-token-1",
			Platform: "android",
		}).
		Return(nil)

	err := fixture.service.RegisterPushToken(ctx, "alice@example.com", "fcm-token-1", "android")
	require.NoError(t, err)
}
