// Package pipeline processes categories of review data with consistent
// stratified sampling.
//
// A run loads each category's tab-delimited review file, filters to the
// target year, draws a stratified sample with a shared stratify.Sampler,
// tags the records with their category, and persists per-category CSV files
// plus one merged, reshuffled dataset. Categories are independent sampling
// runs and execute concurrently.
//
// The sampling core never touches files; all I/O lives here.
package pipeline
