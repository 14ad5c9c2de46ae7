package services

import (
	"context"
	"time"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// LimitGate resolves a user's effective quota and answers pre-write limit
// checks. It guards create paths only; reads never pass through it.
//
// The gate itself is check-then-act. The relational backend closes the
// races that leaves open by locking the owner row and re-counting inside
// the insert transaction; the Notion backend cannot (no conditional write
// there), so Notion-mode creates stay best-effort and may overshoot by one
// under concurrency.
type LimitGate struct {
	subs   repositories.SubscriptionRepository
	router *StorageRouter
}

// NewLimitGate creates a new LimitGate.
func NewLimitGate(subs repositories.SubscriptionRepository, router *StorageRouter) *LimitGate {
	return &LimitGate{
		subs:   subs,
		router: router,
	}
}

// EffectiveLimits returns the quota granted by the user's in-effect
// subscription, or the canonical free tier when none exists.
func (g *LimitGate) EffectiveLimits(userID string) (models.Limits, error) {
	sub, err := g.subs.GetActiveForUser(userID, time.Now())
	if err != nil {
		return models.Limits{}, err
	}
	if sub == nil {
		return FreeTierLimits, nil
	}
	plan, err := g.subs.GetPlanByID(sub.PlanID)
	if err != nil {
		return models.Limits{}, err
	}
	return ComputeLimits(plan), nil
}

// Check answers "can this user add one more record of this kind" with the
// numbers the UI needs for an upgrade prompt.
func (g *LimitGate) Check(ctx context.Context, userID string, kind models.LimitKind) (models.LimitCheck, error) {
	limits, err := g.EffectiveLimits(userID)
	if err != nil {
		return models.LimitCheck{}, err
	}
	usage, err := g.router.Count(ctx, userID, kind)
	if err != nil {
		return models.LimitCheck{}, err
	}
	limit := LimitFor(limits, kind)
	return models.LimitCheck{
		CanPerform:   CheckLimit(usage, limit),
		CurrentCount: usage,
		Limit:        limit,
		NearLimit:    IsNearLimit(usage, limit, NearLimitThreshold),
	}, nil
}
