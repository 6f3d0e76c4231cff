// Package ads implements the interstitial frequency gate and the ad-free
// entitlement. No ad network is wired in this build; the gate only decides
// whether the caller may show one.
package ads

import (
	"context"
	"log/slog"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/metrics"
	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

// Frequency caps. Same clamp-and-cooldown shape as reminder scheduling.
const (
	// MinInterval is the cooldown between interstitials.
	MinInterval = 5 * time.Minute
	// SessionCap limits interstitials per process session.
	SessionCap = 3
	// DailyCap limits interstitials per calendar day.
	DailyCap = 8
)

const dayLayout = "2006-01-02"

// Gate decides whether ads may be shown at all and whether an interstitial
// may be shown right now.
type Gate struct {
	store   storage.Store
	enabled bool
	now     func() time.Time

	// session counts interstitials since process start; a new process is a
	// new session regardless of what the persisted counters say.
	session int
}

// NewGate creates the ad gate. enabled is the ads feature flag.
func NewGate(store storage.Store, enabled bool) *Gate {
	return &Gate{
		store:   store,
		enabled: enabled,
		now:     time.Now,
	}
}

// ShouldShowAds reports whether any ad surface may be shown: false when the
// feature is off or the ad-free unlock has been purchased.
func (g *Gate) ShouldShowAds(ctx context.Context) (bool, error) {
	if !g.enabled {
		return false, nil
	}
	ent, err := g.store.LoadEntitlement(ctx)
	if err != nil {
		return false, err
	}
	if ent != nil && ent.AdFreeUnlocked {
		return false, nil
	}
	return true, nil
}

// RequestInterstitial reports whether an interstitial may be shown now and,
// when allowed, records it against the cooldown and the session/daily caps.
func (g *Gate) RequestInterstitial(ctx context.Context) (bool, error) {
	show, err := g.ShouldShowAds(ctx)
	if err != nil {
		return false, err
	}
	if !show {
		metrics.InterstitialsSuppressed.Inc()
		return false, nil
	}

	counters, err := g.store.LoadAdCounters(ctx)
	if err != nil {
		return false, err
	}
	if counters == nil {
		counters = &models.AdCounters{}
	}

	now := g.now()
	today := now.Format(dayLayout)
	if counters.LastDate != today {
		counters.LastDate = today
		counters.InterstitialsToday = 0
	}

	if counters.LastInterstitialTimestamp != nil &&
		now.Sub(*counters.LastInterstitialTimestamp) < MinInterval {
		metrics.InterstitialsSuppressed.Inc()
		return false, nil
	}
	if g.session >= SessionCap || counters.InterstitialsToday >= DailyCap {
		metrics.InterstitialsSuppressed.Inc()
		return false, nil
	}

	g.session++
	counters.InterstitialsToday++
	counters.InterstitialsSession = g.session
	counters.LastInterstitialTimestamp = &now
	if err := g.store.SaveAdCounters(ctx, *counters); err != nil {
		return false, err
	}

	metrics.InterstitialsShown.Inc()
	return true, nil
}

// Unlock records the one-time ad-free purchase. Idempotent: unlocking twice
// keeps the original purchase details.
func (g *Gate) Unlock(ctx context.Context, transactionID string) (*models.Entitlement, error) {
	ent, err := g.store.LoadEntitlement(ctx)
	if err != nil {
		return nil, err
	}
	if ent != nil && ent.AdFreeUnlocked {
		return ent, nil
	}

	now := g.now()
	unlocked := models.Entitlement{
		AdFreeUnlocked: true,
		PurchaseDate:   &now,
		TransactionID:  transactionID,
	}
	if err := g.store.SaveEntitlement(ctx, unlocked); err != nil {
		return nil, err
	}

	slog.Info("Ad-free unlock recorded", "transaction_id", transactionID)
	return &unlocked, nil
}
