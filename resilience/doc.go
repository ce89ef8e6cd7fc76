// Package resilience provides generic bounded retry with exponential
// backoff. It carries no state: each call owns its attempt loop and the
// context governs cancellation between attempts.
package resilience
