// Package llm holds provider-independent helpers for generative model output:
// tolerant JSON decoding and upstream error classification.
package llm
