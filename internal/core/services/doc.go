// Package services implements the driving port interfaces.
// Services resolve characters through driven ports (adapters),
// hand them to the numerology engine and shape the results.
//
// Services are pure Go; the only concurrency is the bounded
// fan-out of batch evaluation.
package services
