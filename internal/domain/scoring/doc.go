// Package scoring implements the heuristic that rates a practice sentence.
//
// The heuristic checks whether the target word appears in the sentence and
// how long the sentence is, then draws a score from the range configured for
// that bucket. Randomness comes from an injectable RandSource so callers can
// make results deterministic.
package scoring
