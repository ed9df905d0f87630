// 📦 Package plan decides, without touching the filesystem, exactly which
// renames a run will perform.
//
// 🎯 Purpose:
// Take the candidates a scan produced and turn them into an ordered list of
// safe renames, separating out no-ops and anything whose target name is
// already spoken for.
//
// 🔄 Flow:
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────────────┐
//	│ scan.Result  │────▶│  Transform   │────▶│  Plan                │
//	│ (candidates, │     │  (stem run   │     │   • Items            │
//	│  name sets)  │     │   collapse)  │     │   • Collisions       │
//	└──────────────┘     └──────────────┘     │   • AlreadyClean     │
//	                                          └──────────────────────┘
//
// ⚡ Key Responsibilities:
//   - Collapse every dot/space run in a stem into the replacement text
//   - Preserve the final extension, including its dot
//   - Drop renames that would not change anything
//   - Detect target collisions per directory before anything runs
//
// 📝 Design Philosophy:
// Collision checks happen here, at plan time, so previews show the same
// conflicts an apply would hit. The name universe is deliberately
// conservative: a target that matches any name the scan saw, including
// hidden files, subdirectories, and files that will themselves be renamed
// away, is treated as taken. That refuses a few renames that might have
// worked, but it never lets two files race for one name.
package plan
