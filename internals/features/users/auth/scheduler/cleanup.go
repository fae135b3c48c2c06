package scheduler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authRepo "coursedesk_backend/internals/features/users/auth/repository"
	helpersAuth "coursedesk_backend/internals/helpers/auth"
)

// Cleanup removes expired blacklist rows and dead refresh tokens.
func Cleanup(ctx context.Context, db *gorm.DB, now time.Time) {
	if n, err := helpersAuth.PurgeExpired(ctx, db, now); err != nil {
		log.WithError(err).Error("[CLEANUP] token_blacklist purge failed")
	} else {
		log.Infof("[CLEANUP] %d blacklisted token(s) removed", n)
	}

	if n, err := authRepo.PurgeRefreshTokens(ctx, db, now); err != nil {
		log.WithError(err).Error("[CLEANUP] refresh_tokens purge failed")
	} else {
		log.Infof("[CLEANUP] %d refresh token(s) removed", n)
	}
}

// StartBlacklistCleanupScheduler runs Cleanup now and then every interval until ctx is done.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		Cleanup(ctx, db, time.Now().UTC())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Cleanup(ctx, db, time.Now().UTC())
			}
		}
	}()
}
