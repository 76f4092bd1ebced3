// Package migration upgrades persisted workbench state to the current
// schema version.
//
// A Runner holds an immutable, linear chain of Steps keyed by the version
// they migrate from. Run starts at the store's $_projectMeta.version
// (0.0.0 when absent) and applies steps until no step claims the current
// version. Every applied step appends a {from, to, timestamp, description}
// record to $_projectMeta.updateHistory.
//
// A failing step aborts the chain with a *MigrationStepError. Steps already
// applied are not rolled back; the caller must not persist or trust the
// store after a failure.
package migration
