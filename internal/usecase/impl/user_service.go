package impl

import (
	"context"
	"log/slog"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	"iothub/internal/domain/service"
	"iothub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// providerEmail is the only credential provider the platform issues.
const providerEmail = "email"

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	authRepo      repository.AuthRepository
	pushTokenRepo repository.PushTokenRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	propagation   usecase.PropagationUsecase
	recipients    usecase.RecipientUsecase
	notifier      usecase.NotifierUsecase
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	AuthRepo      repository.AuthRepository
	PushTokenRepo repository.PushTokenRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Propagation   usecase.PropagationUsecase
	Recipients    usecase.RecipientUsecase
	Notifier      usecase.NotifierUsecase
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		authRepo:      params.AuthRepo,
		pushTokenRepo: params.PushTokenRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		propagation:   params.Propagation,
		recipients:    params.Recipients,
		notifier:      params.Notifier,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user account with an email credential. User row and
// credential are committed together in one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:  input.Name,
		Email: input.Email,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindByIdentifier(ctx, providerEmail, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to check existing credential")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:       newUser.ID,
			Provider:     providerEmail,
			Identifier:   input.Email,
			PasswordHash: hashedPassword,
		}
		if createErr := authRepo.Create(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create credential during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credential and issues a user access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindByIdentifier(ctx, providerEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login credential")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login user")
	}

	accessToken, err := srv.tokenService.GenerateUserToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// ChangeEmail rewrites the account email, cascades the rename over every
// denormalized copy and notifies the user's live connections. The user
// row is the source of truth and changes first; the cascade then walks
// the copies, eventually consistent.
func (srv *userService) ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for email change")
	}

	oldEmail := user.Email
	if oldEmail == newEmail {
		return nil
	}

	if err := srv.userRepo.UpdateEmail(ctx, userID, newEmail); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already taken")
		}

		return errors.Wrap(err, "failed to update user email")
	}

	if err := srv.propagation.RenameUserEmail(ctx, oldEmail, newEmail); err != nil {
		// Copies converge on retry; the primary row is already renamed.
		srv.log(ctx).Error("Email rename cascade reported failures",
			slog.String("old", oldEmail), slog.String("new", newEmail), slog.Any("error", err))
	}

	recipients, err := srv.recipients.ForUser(ctx, newEmail)
	if err != nil {
		return errors.Wrap(err, "failed to resolve rename recipients")
	}

	return srv.notifier.Notify(ctx, recipients, entity.EventUserUpdated, map[string]any{
		"oldEmail": oldEmail,
		"newEmail": newEmail,
	})
}

// Delete removes the account and cascades over everything it owns.
func (srv *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for delete")
	}

	if err := srv.propagation.DeleteUser(ctx, user.Email); err != nil {
		srv.log(ctx).Error("User delete cascade reported failures",
			slog.String("email", user.Email), slog.Any("error", err))

		return errors.Wrap(err, "user delete cascade incomplete")
	}

	srv.log(ctx).Info("User deleted", slog.String("email", user.Email))

	return nil
}

// RegisterPushToken stores an FCM registration for the push fallback.
func (srv *userService) RegisterPushToken(ctx context.Context, email, token, platform string) error {
	pushToken := &entity.PushToken{
		Email:    email,
		Token:    token,
		Platform: platform,
	}
	if err := srv.pushTokenRepo.Upsert(ctx, pushToken); err != nil {
		return errors.Wrap(err, "failed to register push token")
	}

	return nil
}
