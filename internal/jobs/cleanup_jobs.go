package jobs

import (
	"context"

	"velvetden-backend/internal/logger"
)

// CleanupOrphanedImages deletes stored files that no user record points at,
// left behind by failed registrations and replaced pictures.
func (jr *JobRunner) CleanupOrphanedImages() {
	jr.runWithRecovery("CleanupOrphanedImages", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		stored, err := jr.files.List()
		if err != nil {
			logger.Error("Failed to list stored files", "error", err)
			return
		}

		users, err := jr.users.List(ctx)
		if err != nil {
			logger.Error("Failed to list users", "error", err)
			return
		}

		referenced := make(map[string]struct{}, len(users))
		for i := range users {
			if path := users[i].VerificationImagePath; path != "" {
				referenced[path] = struct{}{}
			}
		}

		removed := 0
		for _, path := range stored {
			if _, ok := referenced[path]; ok {
				continue
			}
			if err := jr.files.Delete(path); err != nil {
				logger.Error("Failed to delete orphaned image", "path", path, "error", err)
				continue
			}
			removed++
		}
		logger.Info("Orphaned images cleaned up", "removed", removed, "stored", len(stored))
	})
}
