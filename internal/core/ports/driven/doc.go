// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CharacterStore: Character dictionary. Without it, evaluation uses
//     fallback records for every character and suggestion is disabled.
//   - StrokeMeaningStore: Five-tier stroke meanings. Without it, pillar
//     fortunes use the built-in three-tier table only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
