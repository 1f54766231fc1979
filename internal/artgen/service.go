// Package artgen gates the two art-generation collaborators behind pure
// cooldown checks. The checks are exposed separately from the network-bound
// generation call so they can be tested without any generator.
package artgen

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/logger"
)

// Check is the result of a pure cooldown query.
type Check struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Result is the non-throwing outcome of a generation attempt.
type Result struct {
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Generator is the external, network-bound art collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (imageURL string, err error)
}

// Service tracks per-item cooldowns and fronts the generator. The daily
// quota lives in the player aggregate; the short per-item cooldown is
// tracked here in an expiring cache sized to the cooldown itself.
type Service struct {
	gen    Generator
	recent *expirable.LRU[string, time.Time]
}

// NewService creates an art-generation service for the given collaborator.
func NewService(gen Generator) *Service {
	return &Service{
		gen:    gen,
		recent: expirable.NewLRU[string, time.Time](recentItemCacheSize, nil, ItemArtCooldown),
	}
}

// CheckItemArt applies the daily cap and the per-item cooldown.
func (s *Service) CheckItemArt(quota domain.GenerationQuota, itemID string, now time.Time) Check {
	if quota.DayStamp == now.Format(domain.DateLayout) && quota.Count >= ItemArtDailyCap {
		return Check{Allowed: false, Reason: ReasonDailyCapReached}
	}
	if last, ok := s.recent.Get(itemID); ok && now.Sub(last) < ItemArtCooldown {
		return Check{Allowed: false, Reason: ReasonItemCooldown}
	}
	return Check{Allowed: true}
}

// CheckPortrait applies the character-card cooldown. There is no daily cap.
func CheckPortrait(lastGeneratedAt *time.Time, now time.Time) Check {
	if lastGeneratedAt != nil && now.Sub(*lastGeneratedAt) < PortraitCooldown {
		return Check{Allowed: false, Reason: ReasonPortraitCooldown}
	}
	return Check{Allowed: true}
}

// GenerateItemArt calls the collaborator after the checks have passed and
// records the attempt in the per-item tracker. Upstream failures come back
// as a Result, never an error; the caller's state stays untouched on
// failure.
func (s *Service) GenerateItemArt(ctx context.Context, itemID, prompt string, now time.Time) Result {
	log := logger.FromContext(ctx)

	s.recent.Add(itemID, now)

	url, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Error("Item art generation failed", "item_id", itemID, "error", err)
		return Result{Success: false, Error: domain.ErrMsgGenerationFailed}
	}
	return Result{Success: true, ImageURL: url}
}

// GeneratePortrait calls the collaborator for the character card.
func (s *Service) GeneratePortrait(ctx context.Context, prompt string) Result {
	log := logger.FromContext(ctx)

	url, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Error("Portrait generation failed", "error", err)
		return Result{Success: false, Error: domain.ErrMsgGenerationFailed}
	}
	return Result{Success: true, ImageURL: url}
}

// BumpQuota advances a daily quota for one successful generation, rolling
// the day stamp when the calendar date has changed.
func BumpQuota(quota domain.GenerationQuota, now time.Time) domain.GenerationQuota {
	today := now.Format(domain.DateLayout)
	if quota.DayStamp != today {
		return domain.GenerationQuota{DayStamp: today, Count: 1}
	}
	quota.Count++
	return quota
}
