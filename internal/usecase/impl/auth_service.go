// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"peterparts/config"
	deliverycontext "peterparts/internal/delivery/context"
	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/repository"
	"peterparts/internal/domain/service"
	"peterparts/internal/usecase"
	"peterparts/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOTPExpiry = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	codeRepo     repository.VerificationCodeRepository
	tokenService service.TokenService
	oauthService service.OAuthService
	mailer       service.AuthMailer
	metrics      service.AuthMetrics
	otpExpiry    time.Duration
	generateCode func() (string, error)
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	CodeRepo     repository.VerificationCodeRepository
	TokenService service.TokenService
	OAuthService service.OAuthService
	Mailer       service.AuthMailer
	Metrics      service.AuthMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpExpiry := defaultOTPExpiry
	if params.Config != nil && params.Config.OTP != nil && params.Config.OTP.Expiry > 0 {
		otpExpiry = params.Config.OTP.Expiry
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		codeRepo:     params.CodeRepo,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		mailer:       params.Mailer,
		metrics:      params.Metrics,
		otpExpiry:    otpExpiry,
		generateCode: GenerateOTPCode,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// SendOTP finds or creates the account, replaces its unused codes with a
// fresh one and mails it.
func (srv *authService) SendOTP(ctx context.Context, email string) error {
	if email == "" {
		return domainerrors.ErrEmailRequired
	}
	if !isValidEmail(email) {
		return domainerrors.ErrInvalidEmailFormat
	}

	user, created, err := srv.findOrCreateEmailUser(ctx, email)
	if err != nil {
		srv.metrics.OTPSent(service.OutcomeError)
		srv.log(ctx).Error("Failed to resolve user for OTP", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrSendOTPFailed, err.Error())
	}

	code, err := srv.generateCode()
	if err != nil {
		srv.metrics.OTPSent(service.OutcomeError)

		return errors.Wrap(domainerrors.ErrSendOTPFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.NewVerificationCodeRepository()

		deleted, err := codeRepo.DeleteUnusedByUser(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to invalidate previous codes")
		}
		if deleted > 0 {
			srv.log(ctx).Debug("Invalidated previous codes", slog.Any("userID", user.ID), slog.Int64("count", deleted))
		}

		return errors.Wrap(
			codeRepo.Create(ctx, entity.NewVerificationCode(user.ID, code, srv.now(), srv.otpExpiry)),
			"failed to store verification code",
		)
	})
	if err != nil {
		srv.metrics.OTPSent(service.OutcomeError)
		srv.log(ctx).Error("Failed to store verification code", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrSendOTPFailed, err.Error())
	}

	if err := srv.mailer.SendVerificationCode(ctx, email, code, srv.otpExpiry); err != nil {
		srv.metrics.OTPSent(service.OutcomeError)
		srv.log(ctx).Error("Failed to send OTP email", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrEmailDeliveryFailed, err.Error())
	}

	if created {
		srv.sendWelcome(ctx, user)
	}

	srv.metrics.OTPSent(service.OutcomeSuccess)
	srv.log(ctx).Info("Verification code sent",
		slog.Any("userID", user.ID),
		slog.String("expiresIn", util.FormatDuration(srv.otpExpiry)),
	)

	return nil
}

// VerifyOTP redeems a code and issues a session token.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.SessionOutput, error) {
	if input == nil || input.Email == "" || input.Code == "" {
		return nil, domainerrors.ErrEmailAndCodeRequired
	}

	user, _, err := srv.findOrCreateEmailUser(ctx, input.Email)
	if err != nil {
		srv.metrics.OTPVerified(service.OutcomeError)

		return nil, errors.Wrap(domainerrors.ErrVerifyOTPFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.NewVerificationCodeRepository()
		now := srv.now()

		verificationCode, err := codeRepo.FindValid(ctx, user.ID, input.Code, now)
		if err != nil {
			return err
		}

		// Conditional on used_at IS NULL, so only one concurrent verify wins.
		return codeRepo.MarkUsed(ctx, verificationCode.ID, now)
	})
	if errors.Is(err, repository.ErrVerificationCodeNotFound) {
		srv.metrics.OTPVerified(service.OutcomeRejected)
		srv.log(ctx).Warn("Rejected verification code", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidOTP
	}
	if err != nil {
		srv.metrics.OTPVerified(service.OutcomeError)
		srv.log(ctx).Error("Failed to verify code", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrVerifyOTPFailed, err.Error())
	}

	output, err := srv.startSession(user)
	if err != nil {
		srv.metrics.OTPVerified(service.OutcomeError)
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrVerifyOTPFailed, err.Error())
	}

	srv.metrics.OTPVerified(service.OutcomeSuccess)
	srv.log(ctx).Info("User authenticated with OTP", slog.Any("userID", user.ID))

	return output, nil
}

// GoogleAuthURL returns the Google consent screen URL.
func (srv *authService) GoogleAuthURL(ctx context.Context) (string, error) {
	authURL, err := srv.oauthService.AuthorizationURL()
	if err != nil {
		srv.log(ctx).Error("Failed to build Google authorization URL", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return authURL, nil
}

// GoogleCallback exchanges the authorization code and resolves the account:
// by googleId first, then by email (linking), otherwise a new user.
func (srv *authService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.SessionOutput, error) {
	if input == nil || input.Code == "" {
		srv.metrics.OAuthLogin(service.OutcomeRejected)

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "authorization code is missing")
	}
	if !srv.oauthService.ValidateState(input.State) {
		srv.metrics.OAuthLogin(service.OutcomeRejected)
		srv.log(ctx).Warn("Rejected OAuth callback with unknown state")

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	profile, err := srv.oauthService.Exchange(ctx, input.Code)
	if err != nil {
		srv.metrics.OAuthLogin(service.OutcomeError)
		srv.log(ctx).Error("Google code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	var (
		user    *entity.User
		created bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, created, err = srv.resolveGoogleUser(ctx, repoFactory.NewUserRepository(), profile)

		return err
	})
	if err != nil {
		srv.metrics.OAuthLogin(service.OutcomeError)
		srv.log(ctx).Error("Failed to resolve Google user", slog.String("email", profile.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	if created {
		srv.sendWelcome(ctx, user)
	}

	output, err := srv.startSession(user)
	if err != nil {
		srv.metrics.OAuthLogin(service.OutcomeError)

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	srv.metrics.OAuthLogin(service.OutcomeSuccess)
	srv.log(ctx).Info("User authenticated with Google", slog.Any("userID", user.ID), slog.Bool("created", created))

	return output, nil
}

func (srv *authService) resolveGoogleUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	profile *service.OAuthUser,
) (*entity.User, bool, error) {
	user, err := userRepo.FindByGoogleID(ctx, profile.ID)
	if err == nil {
		if user.ApplyProfile(profile.Name, profile.AvatarURL) {
			if err := userRepo.Update(ctx, user); err != nil {
				return nil, false, errors.Wrap(err, "failed to refresh google profile")
			}
		}

		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by google id")
	}

	user, err = userRepo.FindByEmail(ctx, profile.Email)
	if err == nil {
		user.LinkGoogle(profile.ID)
		user.ApplyProfile(profile.Name, profile.AvatarURL)
		if err := userRepo.Update(ctx, user); err != nil {
			return nil, false, errors.Wrap(err, "failed to link google account")
		}
		srv.log(ctx).Info("Linked Google account to existing user", slog.Any("userID", user.ID))

		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by email")
	}

	user = entity.NewGoogleUser(profile.Email, profile.ID, optionalString(profile.Name), optionalString(profile.AvatarURL))
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to create google user")
	}

	return user, true, nil
}

// CurrentUser reloads the user so role and profile changes since the token
// was issued are reflected.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*usecase.UserDTO, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load current user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return usecase.NewUserDTO(user), nil
}

// SweepExpiredCodes deletes every verification code past its expiry.
func (srv *authService) SweepExpiredCodes(ctx context.Context) (int64, error) {
	deleted, err := srv.codeRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired verification codes")
	}

	srv.log(ctx).Info("Swept expired verification codes", slog.Int64("count", deleted))

	return deleted, nil
}

// findOrCreateEmailUser runs outside a transaction so a lost creation race can
// fall back to reading the winner's row.
func (srv *authService) findOrCreateEmailUser(ctx context.Context, email string) (*entity.User, bool, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by email")
	}

	user = entity.NewEmailUser(email)
	err = srv.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateUser) {
		user, err = srv.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to reload concurrently created user")
		}

		return user, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Created user from OTP request", slog.Any("userID", user.ID))

	return user, true, nil
}

func (srv *authService) startSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(service.SessionPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{
		User:  usecase.NewUserDTO(user),
		Token: token,
	}, nil
}

// sendWelcome is best effort: a failed greeting never fails the login.
func (srv *authService) sendWelcome(ctx context.Context, user *entity.User) {
	if err := srv.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
