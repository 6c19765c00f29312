// Package database provides SQLite-based storage for analysis report
// snapshots. Each analyze run can be saved, giving the compare command a
// history to diff: documents added or removed between runs, finding
// counts drifting up or down.
package database
