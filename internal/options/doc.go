// Package options defines the resolved option snapshot for one player's
// world generation.
//
// The host session resolves player-facing option values before generation
// begins; this package captures the result as a plain record so that the
// generation core never performs dynamic option lookup. Options are
// normalized and validated once, then treated as read-only.
package options
