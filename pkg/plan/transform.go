package plan

import (
	"regexp"
	"strings"

	"github.com/walteh/renamerc/pkg/config"
)

// separatorRun matches every run of dots and spaces inside a filename stem.
// A mixed run like ". ." collapses into a single replacement, so an empty
// replacement deletes the whole run instead of leaving fragments behind.
var separatorRun = regexp.MustCompile(`[. ]+`)

// 🔄 Transform rewrites a single file name: the extension is split off and
// preserved, every dot/space run in the stem becomes the replacement, and
// prefix/suffix are wrapped around the cleaned stem.
func Transform(name string, cfg *config.Config) string {
	stem, ext := splitExt(name)
	stem = separatorRun.ReplaceAllString(stem, cfg.Replacement)
	return cfg.Prefix + stem + cfg.Suffix + ext
}

// splitExt splits name at the last dot, keeping the dot with the extension.
// Leading dots never start an extension, so ".bashrc" has no extension and
// "archive.tar.gz" splits into "archive.tar" and ".gz".
func splitExt(name string) (stem, ext string) {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return name, ""
	}
	idx += len(name) - len(trimmed)
	return name[:idx], name[idx:]
}
