// Package static holds the immutable rule tables that drive world
// generation.
//
// The tables describe the base game: rooms, the doors and panels inside
// them, the painting warps between them, the checkable locations layered on
// top, and the item pool. They are authored in yaml (a default rule set is
// embedded in the binary), loaded once, validated, and never mutated.
// Per-player state lives in the player package; nothing here depends on a
// particular player's options except the item inclusion predicates, which
// take the option snapshot as input.
package static
