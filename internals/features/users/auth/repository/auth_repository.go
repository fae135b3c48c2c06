package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "coursedesk_backend/internals/features/users/auth/model"
	userModel "coursedesk_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

// FindUserByIdentifier matches email or user name, ignoring case.
func FindUserByIdentifier(ctx context.Context, db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("LOWER(email) = ? OR LOWER(user_name) = ?", ident, ident).
		Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(ctx context.Context, db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("google_id = ?", googleID).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("id = ?", userID).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hash).Error
}

func LinkGoogleID(ctx context.Context, db *gorm.DB, userID uuid.UUID, googleID string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ? AND google_id IS NULL", userID).
		Update("google_id", googleID).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(rt).Error
}

// FindActiveRefreshToken looks a token up by hash; revoked or expired rows do not match.
func FindActiveRefreshToken(ctx context.Context, db *gorm.DB, hash string, now time.Time) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.WithContext(ctx).
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", hash, now).
		Take(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshTokenByID(ctx context.Context, db *gorm.DB, id uuid.UUID, now time.Time) error {
	res := db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func RevokeRefreshTokenByHash(ctx context.Context, db *gorm.DB, hash string, now time.Time) error {
	return db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("token = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

func RevokeUserRefreshTokens(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) error {
	return db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

// PurgeRefreshTokens deletes expired rows and rows revoked before the cutoff.
func PurgeRefreshTokens(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at <= ? OR (revoked_at IS NOT NULL AND revoked_at <= ?)", now, now).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
