package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/pkg/rabbitmq"
)

// subscriptionPeriod is the length granted per subscribe call. Renewal is
// driven externally: a successful payment re-invokes Subscribe.
const subscriptionPeriod = 30 * 24 * time.Hour

// SubscriptionService handles the plan catalog and subscription lifecycle.
// Transitions publish events to the wardrobe queue so the payment webhook
// side can reconcile; publishing is best-effort and never fails the call.
type SubscriptionService struct {
	subs     repositories.SubscriptionRepository
	gate     *LimitGate
	router   *StorageRouter
	mqClient *rabbitmq.Client
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(subs repositories.SubscriptionRepository, gate *LimitGate, router *StorageRouter, mqClient *rabbitmq.Client) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		gate:     gate,
		router:   router,
		mqClient: mqClient,
	}
}

// GetPlans retrieves the plan catalog.
func (s *SubscriptionService) GetPlans() ([]models.SubscriptionPlan, error) {
	return s.subs.GetPlans()
}

// GetUserSubscription retrieves the caller's in-effect subscription, or nil.
func (s *SubscriptionService) GetUserSubscription(userID string) (*models.UserSubscription, error) {
	return s.subs.GetActiveForUser(userID, time.Now())
}

// GetUserUsage retrieves the caller's current wardrobe counts.
func (s *SubscriptionService) GetUserUsage(ctx context.Context, userID string) (models.Usage, error) {
	return s.router.Usage(ctx, userID)
}

// CheckLimits answers a pre-write limit check for the given kind.
func (s *SubscriptionService) CheckLimits(ctx context.Context, userID string, kind models.LimitKind) (models.LimitCheck, error) {
	return s.gate.Check(ctx, userID, kind)
}

// Subscribe puts the user on a plan. Any prior active subscription is
// canceled first, then the new row is inserted. The two writes are not
// atomic; a crash in between leaves the user on free-tier defaults, which
// is the safe direction. The reverse order could leave two active rows and
// is never used.
func (s *SubscriptionService) Subscribe(userID string, planID uint) (*models.UserSubscription, error) {
	plan, err := s.subs.GetPlanByID(planID)
	if err != nil {
		return nil, err
	}

	if err := s.subs.CancelActive(userID); err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &models.UserSubscription{
		UserID:             userID,
		PlanID:             plan.ID,
		Status:             models.SubscriptionActive,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.Add(subscriptionPeriod),
	}
	if err := s.subs.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.publish("subscription.subscribed", map[string]interface{}{
		"userID": userID,
		"planID": plan.ID,
		"plan":   plan.Name,
	})
	return sub, nil
}

// CancelSubscription cancels the caller's active subscription, if any.
func (s *SubscriptionService) CancelSubscription(userID string) error {
	if err := s.subs.CancelActive(userID); err != nil {
		return err
	}
	s.publish("subscription.canceled", map[string]interface{}{
		"userID": userID,
	})
	return nil
}

func (s *SubscriptionService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
