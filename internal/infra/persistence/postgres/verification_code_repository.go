package postgres

import (
	"context"
	"time"

	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/repository"
	"peterparts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationCodeRepository implements repository.VerificationCodeRepository.
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{
		db: db,
	}
}

// Create stores a new code.
func (repo *verificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	codeM := fromVerificationCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindValid returns the unused, unexpired code matching userID and code.
func (repo *verificationCodeRepository) FindValid(ctx context.Context, userID uuid.UUID, code string, now time.Time) (*entity.VerificationCode, error) {
	var codeM model.VerificationCodeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND expires_at > ? AND used_at IS NULL", userID, code, now).
		Order("created_at DESC").
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification code")
	}

	return toVerificationCodeDomain(&codeM), nil
}

// MarkUsed sets used_at only while it is still NULL, so exactly one caller wins.
func (repo *verificationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark verification code used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVerificationCodeNotFound
	}

	return nil
}

// DeleteUnusedByUser removes every unused code for userID.
func (repo *verificationCodeRepository) DeleteUnusedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND used_at IS NULL", userID).
		Delete(&model.VerificationCodeModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete unused verification codes")
	}

	return result.RowsAffected, nil
}

// DeleteExpired removes every code that expired before now.
func (repo *verificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.VerificationCodeModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired verification codes")
	}

	return result.RowsAffected, nil
}

func toVerificationCodeDomain(codeM *model.VerificationCodeModel) *entity.VerificationCode {
	if codeM == nil {
		return nil
	}

	return &entity.VerificationCode{
		ID:        codeM.ID,
		Code:      codeM.Code,
		UserID:    codeM.UserID,
		ExpiresAt: codeM.ExpiresAt,
		UsedAt:    codeM.UsedAt,
		CreatedAt: codeM.CreatedAt,
	}
}

func fromVerificationCodeDomain(code *entity.VerificationCode) *model.VerificationCodeModel {
	if code == nil {
		return nil
	}

	return &model.VerificationCodeModel{
		ID:        code.ID,
		Code:      code.Code,
		UserID:    code.UserID,
		ExpiresAt: code.ExpiresAt,
		UsedAt:    code.UsedAt,
		CreatedAt: code.CreatedAt,
	}
}
