// Package models defines the core domain models for the orders dashboard.
//
// # Raw vs normalized records
//
// The data source delivers three disjoint collections of raw records
// (RawOrder, RawUser, RawCompany) plus a currency rate table. The
// normalizer joins them into self-contained NormalizedOrder entities:
// each order embeds its own copy of the resolved user, and each user
// references (but does not own) its company.
//
// Ownership rules:
//   - NormalizedOrder owns its embedded NormalizedUser by value. Two
//     orders placed by the same user hold independent copies, so a
//     per-order UI flag (ShowInfo) on one never leaks to the other.
//   - NormalizedUser references a shared *Company; companies are
//     immutable after normalization, so sharing is safe.
//
// # Views
//
// OrderView is the projection emitted over the event bus: the card
// number is masked, the total is currency-formatted and the creation
// timestamp is localized. Raw monetary and card values never cross the
// emission boundary.
package models
