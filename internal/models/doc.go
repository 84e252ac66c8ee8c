// Package models defines the core domain models for Leuth.
//
// # Entities
//
//   - Member: a person taking part in screen-time challenges
//   - Group: a competitive cohort with challenge settings and an optional pool
//   - Goal: a usage-limit target, optionally scoped to apps or categories
//   - Usage: one app's recorded minutes for a period snapshot
//   - Message: a chat entry in a group's feed (user or system)
//   - FriendRequest: a pending or accepted social edge
//
// AppState aggregates all of them and is the unit the state store clones,
// persists and restores.
//
// # Design Principles
//
//  1. **IDs, not pointers**: relationships are expressed with ID strings
//  2. **Typed enums**: presets, currencies, periods, kinds and statuses are
//     string types with a Valid method
//  3. **One JSON shape**: the json tags are shared by the persisted snapshot
//     and the RPC payloads
package models
