// Package models defines the core domain types for the distribution ledger.
//
// # Entities
//
//   - Client: a customer receiving product deliveries
//   - DailyPrice: the per-kilogram product price for one calendar date
//   - Distribution: one delivery of a quantity of product to a client,
//     priced at that day's price snapshot
//   - Payment: money received from a client, optionally applied against
//     one distribution's remaining balance
//   - User: the single local operator account
//
// # Read models
//
// Listing and reporting queries return dedicated row types rather than
// reusing the entities:
//
//   - DailyDistribution: a distribution joined with its client's name
//   - ClientPeriodSummary: per-client aggregates over a date range
//   - PendingBalance: a client's summed unpaid remaining amount
//
// # Design principles
//
//  1. Entities mirror the persisted columns one-to-one; no derived state
//     is cached on the structs.
//  2. References between entities are numeric IDs, never pointers.
//  3. Dates are calendar dates (YYYY-MM-DD strings), not timestamps.
//     The business day is the unit the whole domain operates on.
package models
