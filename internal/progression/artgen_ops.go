package progression

import (
	"context"
	"fmt"

	"github.com/velarium/scriptorium/internal/artgen"
	"github.com/velarium/scriptorium/internal/domain"
)

// CheckItemArt runs the pure cooldown query for one boon.
func (s *service) CheckItemArt(_ context.Context, boonID string) (artgen.Check, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.BoonByID(boonID) == nil {
		return artgen.Check{}, fmt.Errorf("%w: %s", domain.ErrBoonNotFound, boonID)
	}
	return s.art.CheckItemArt(s.state.ItemArtQuota, boonID, s.now()), nil
}

// CheckPortrait runs the pure character-card cooldown query.
func (s *service) CheckPortrait(_ context.Context) artgen.Check {
	s.mu.Lock()
	defer s.mu.Unlock()
	return artgen.CheckPortrait(s.state.PortraitLastGenAt, s.now())
}

// GenerateItemArt generates art for one boon. Denials and upstream
// failures come back in the Result; the boon's existing image survives
// anything short of a successful generation.
func (s *service) GenerateItemArt(ctx context.Context, boonID string) artgen.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	boon := s.state.BoonByID(boonID)
	if boon == nil {
		return artgen.Result{Success: false, Error: domain.ErrMsgBoonNotFound}
	}

	now := s.now()
	if check := s.art.CheckItemArt(s.state.ItemArtQuota, boonID, now); !check.Allowed {
		return artgen.Result{Success: false, Error: check.Reason}
	}

	result := s.art.GenerateItemArt(ctx, boonID, itemPrompt(boon), now)
	if !result.Success {
		return result
	}

	generatedAt := now
	boon.ImageURL = result.ImageURL
	boon.ImageGeneratedAt = &generatedAt
	s.state.ItemArtQuota = artgen.BumpQuota(s.state.ItemArtQuota, now)
	s.persistLocked(ctx)
	return result
}

// GeneratePortrait generates the character card from the current destiny.
func (s *service) GeneratePortrait(ctx context.Context) artgen.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if check := artgen.CheckPortrait(s.state.PortraitLastGenAt, now); !check.Allowed {
		return artgen.Result{Success: false, Error: check.Reason}
	}

	attemptAt := now
	s.state.PortraitLastGenAt = &attemptAt

	result := s.art.GeneratePortrait(ctx, portraitPrompt(s.state.Destiny))
	if !result.Success {
		return result
	}

	generatedAt := now
	s.state.PortraitImageURL = result.ImageURL
	s.state.PortraitGeneratedAt = &generatedAt
	s.persistLocked(ctx)
	return result
}

func itemPrompt(b *domain.Boon) string {
	prompt := fmt.Sprintf("%s %s, %s", b.Rarity, b.ItemType, b.Description)
	if b.ThemeTag != "" {
		prompt += ", " + b.ThemeTag
	}
	return prompt
}

func portraitPrompt(d *domain.Destiny) string {
	if d == nil {
		return "a hooded reader at a candlelit desk"
	}
	return fmt.Sprintf("%s, %s", d.Title, d.LoreDescription)
}
