// Package sim is the outcome simulator: a rule-based stand-in for a real
// language model.
//
// For one submitted prompt it computes a success probability from the
// active core, character stats, prompt shape, and generation parameters;
// draws success or failure; and produces canned response text. Quest
// success predicates are evaluated against the produced response.
//
// # Determinism
//
// Simulate is deterministic with respect to the Seed field on Request.
// Given the same Seed and the same inputs, Simulate always produces the
// same Result. Callers that want a stochastic game draw a fresh seed per
// submission.
package sim
