package models

import "time"

// Entitlement records the one-time ad-free unlock.
type Entitlement struct {
	// AdFreeUnlocked disables advertisement display once true.
	AdFreeUnlocked bool `json:"adFreeUnlocked"`

	// PurchaseDate is when the unlock was recorded.
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`

	// TransactionID is the opaque purchase transaction reference.
	TransactionID string `json:"transactionId,omitempty"`
}

// AdCounters is the persisted interstitial frequency bookkeeping.
type AdCounters struct {
	// LastInterstitialTimestamp is when the last interstitial was shown.
	LastInterstitialTimestamp *time.Time `json:"lastInterstitialTimestamp,omitempty"`

	// InterstitialsToday counts interstitials shown on LastDate.
	InterstitialsToday int `json:"interstitialsToday"`

	// InterstitialsSession counts interstitials shown this session.
	// Persisted for inspection but reset at every process start.
	InterstitialsSession int `json:"interstitialsSession"`

	// LastDate is the day (YYYY-MM-DD) InterstitialsToday refers to.
	LastDate string `json:"lastDate"`
}
