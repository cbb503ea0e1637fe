// Package player builds one participant's world logic from the static rule
// tables and that player's resolved options.
//
// Build is a pure function of (tables, options, random stream): the same
// seed and option snapshot always reproduce the same graph, which is what
// makes generation auditable. The produced Logic is immutable after Build
// returns; the downstream reachability solver, pool filler, and slot-data
// serializer only read it.
//
// When painting shuffle is on, Build also runs the painting matcher: a
// bounded random-retry search for an entrance→exit warp mapping that keeps
// every required painting reachable and never links two required-painting
// rooms to each other. Failures after MaxPaintingAttempts indicate a defect
// in the rule tables, not bad player input, and abort generation.
package player
