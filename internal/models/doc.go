// Package models defines the core domain models for the IOU tracker.
//
// # Models
//
//   - DebtRecord: a single informal debt ("I lent" / "I borrowed") between
//     the owner and a counterparty
//   - Category: a small tagging object attached to records
//   - Settings / ReminderPolicy: owner preferences, including the reminder
//     scheduling policy
//   - Summary: derived owed/owing/net totals, never persisted
//   - Entitlement / AdCounters: ad-free unlock state and interstitial
//     frequency bookkeeping
//
// # Design Principles
//
//  1. Records reference categories by ID string, never by pointer, to keep
//     the persisted JSON flat and avoid circular references.
//  2. Monetary amounts use shopspring decimal so totals never accumulate
//     float error.
//  3. All persisted models round-trip through JSON unchanged; the storage
//     layer treats them as opaque documents.
package models
