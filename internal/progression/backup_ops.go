package progression

import (
	"context"

	"github.com/velarium/scriptorium/internal/backup"
	"github.com/velarium/scriptorium/internal/logger"
)

// ExportBackup produces the reduced-shape backup envelope.
func (s *service) ExportBackup(_ context.Context) (backup.Export, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return backup.BuildExport(s.state, s.now()), nil
}

// ImportBackup validates and merges a backup payload. Rejection leaves the
// live state untouched; the outcome always travels as a result value, not
// an error, so callers can surface the reason directly.
func (s *service) ImportBackup(ctx context.Context, data []byte) backup.Result {
	log := logger.FromContext(ctx)

	env, err := backup.Parse(data)
	if err != nil {
		log.Warn(LogMsgBackupRejected, "reason", err)
		return backup.Result{Success: false, Error: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = backup.Merge(s.state, env)
	s.repairState(ctx)
	s.persistLocked(ctx)

	log.Info(LogMsgBackupImported, "level", s.state.Level, "xp", s.state.XP)
	return backup.Result{Success: true}
}
