package progression

import (
	"context"
	"fmt"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/logger"
)

// RegisterScripture tracks a newly uploaded text. Text parsing happens
// outside the engine; the caller hands over the finished quote list.
// Re-registering an existing id replaces its quotes but keeps its stats.
func (s *service) RegisterScripture(ctx context.Context, fileID, displayName string, quotes []domain.Quote) error {
	if fileID == "" || len(quotes) == 0 {
		return fmt.Errorf("%w: file id and quotes are required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.Register(fileID, quotes)

	if _, exists := s.state.Scripts[fileID]; !exists {
		s.state.Scripts[fileID] = &domain.ScriptureStats{
			FileID:      fileID,
			DisplayName: displayName,
			LocalLevel:  1,
			MasteryTier: domain.MasteryUnseen,
		}
		s.state.FilesUploaded++
		s.evaluateBadgesLocked(ctx)
	}

	s.persistLocked(ctx)
	logger.FromContext(ctx).Info(LogMsgScriptureAdded, "file_id", fileID, "quotes", len(quotes))
	return nil
}

// DeleteScripture removes a text and its stats. If the focus selection
// pointed at it, focus falls back to all-mode instead of failing reads.
func (s *service) DeleteScripture(ctx context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Scripts[fileID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrScriptureNotFound, fileID)
	}

	delete(s.state.Scripts, fileID)
	s.catalog.Remove(fileID)

	if s.state.Focus.Mode == domain.FocusModeFile && s.state.Focus.FileID == fileID {
		s.state.Focus = domain.DefaultFocusState()
	}

	s.persistLocked(ctx)
	logger.FromContext(ctx).Info(LogMsgScriptureRemove, "file_id", fileID)
	return nil
}

// SetFocus switches the active quote pool. File mode requires a tracked
// text and counts a focus session for it.
func (s *service) SetFocus(ctx context.Context, mode, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case domain.FocusModeAll:
		s.state.Focus = domain.DefaultFocusState()

	case domain.FocusModeFile:
		sc, ok := s.state.Scripts[fileID]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrScriptureNotFound, fileID)
		}
		alreadyFocused := s.state.Focus.Mode == domain.FocusModeFile && s.state.Focus.FileID == fileID
		s.state.Focus = domain.FocusState{Mode: domain.FocusModeFile, FileID: fileID}
		if !alreadyFocused {
			sc.FocusSessions++
		}

	default:
		return fmt.Errorf("%w: unknown focus mode %q", domain.ErrInvalidInput, mode)
	}

	s.persistLocked(ctx)
	return nil
}
