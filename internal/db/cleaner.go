package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartExpiredTokenCleaner prunes token rows older than retention on a
// fixed interval. Token expiry is embedded in the signed string, so
// rows for tokens that can no longer verify are dead weight; this job
// is the only thing that ever deletes them.
//
// The returned cron is already started; call Stop on shutdown.
func StartExpiredTokenCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %ds", int(interval.Seconds())), func() {
		cutoff := time.Now().Add(-retention)
		res, err := db.ExecContext(ctx, `
                    DELETE FROM tokens
                     WHERE issued_at < $1
                `, cutoff)
		if err != nil {
			log.Error("failed to clean expired tokens", zap.Error(err))
			return
		}
		if rows, _ := res.RowsAffected(); rows > 0 {
			log.Info("cleaned expired tokens", zap.Int64("removed", rows))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule token cleaner: %w", err)
	}
	c.Start()
	return c, nil
}
