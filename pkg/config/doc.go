// 📦 Package config defines the runtime configuration for a rename run and
// the loaders that read it from disk.
//
// 🎯 Purpose:
// Hold everything that shapes a run (the replacement text, prefix/suffix,
// recursion, ignore patterns, and mode switches), validated once up front
// so nothing downstream has to re-check it.
//
// 🔄 Flow:
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────┐
//	│  .renamerc   │────▶│  File        │────▶│  Config      │
//	│  (yaml/hcl/  │     │  (optional   │     │  (resolved,  │
//	│   json)      │     │   pointers)  │     │   validated) │
//	└──────────────┘     └──────────────┘     └──────────────┘
//	                                                 ▲
//	                             command-line flags ─┘ (highest precedence)
//
// ⚡ Key Responsibilities:
//   - Discover and decode config files (YAML, HCL, JSON; bare .renamerc is
//     probed as YAML then HCL)
//   - Merge file values under flag values (flags always win)
//   - Reject replacement/prefix/suffix text that cannot appear in a filename
//   - Validate ignore globs before any directory is touched
//
// 📝 Design Philosophy:
// File uses pointer fields because absence and emptiness mean different
// things here: replacement="" deletes separator runs, while an unset
// replacement falls back to "_". Everything after the merge works with the
// plain Config value type.
package config
