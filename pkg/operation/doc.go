// 📦 Package operation is where a plan finally meets the filesystem.
//
// 🎯 Purpose:
// Execute (or merely describe) a rename plan, producing the operation log
// that records every outcome.
//
// 🔄 Flow:
//
//	┌──────────────┐       ┌──────────────┐       ┌──────────────┐
//	│  plan.Plan   │──────▶│   Operator   │──────▶│  oplog.Log   │
//	└──────────────┘       │              │       └──────────────┘
//	                       │  Preview ────┼──▶ records only
//	                       │  Apply   ────┼──▶ os.Rename + log file
//	                       └──────────────┘
//
// ⚡ Key Responsibilities:
//   - Preview: classify every item without touching anything
//   - Apply: re-check the destination, rename, and keep going on failure
//   - Count collisions as failures in the log and in the exit status
//   - Drop the log file into the target directory after an apply
//
// 📝 Design Philosophy:
// One file failing must never stop the rest: every outcome is recorded and
// the summary tells the user what happened. The destination re-check before
// each rename narrows the window between scan and apply, but the log is the
// source of truth for what actually changed.
package operation
