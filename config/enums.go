package config

// How apply command reports results.
// ENUM(text, yaml)
type OutputFormat int
