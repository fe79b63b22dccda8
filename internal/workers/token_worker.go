package workers

import (
	"context"
	"time"

	"gemmarket_backend/internal/logger"
	"gemmarket_backend/internal/repositories"

	"gorm.io/gorm"
)

const pruneInterval = 6 * time.Hour

// TokenWorker prunes expired refresh tokens and stale password reset
// tokens in the background.
type TokenWorker struct {
	db               *gorm.DB
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewTokenWorker(db *gorm.DB) *TokenWorker {
	return &TokenWorker{
		db:               db,
		refreshTokenRepo: repositories.NewRefreshTokenRepository(),
	}
}

func (w *TokenWorker) Start(ctx context.Context) {
	go w.pruneExpiredTokens(ctx)
}

func (w *TokenWorker) pruneExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token worker stopped")
			return
		case <-ticker.C:
			removed, err := w.refreshTokenRepo.DeleteExpired(w.db)
			if err != nil {
				logger.Error("Error pruning expired refresh tokens", "error", err)
			} else if removed > 0 {
				logger.Info("Pruned expired refresh tokens", "count", removed)
			}

			result := w.db.Exec(`
				UPDATE users
				SET reset_token = '', reset_token_exp = NULL, updated_at = NOW()
				WHERE reset_token <> ''
				AND reset_token_exp < NOW()
			`)
			if result.Error != nil {
				logger.Error("Error clearing stale reset tokens", "error", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("Cleared stale reset tokens", "count", result.RowsAffected)
			}
		}
	}
}
