package session

import (
	"path/filepath"
	"strings"
)

const defaultCommonDestination = "./common.json"

// defaultDiffDestination proposes ./diff-<name>.json for a source file,
// replacing its extension when it has one. Dot files such as .env have no
// extension.
func defaultDiffDestination(source string) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return "./diff-" + base + ".json"
}

func diffLabel(source string) string {
	return "the different rows in diff-" + filepath.Base(source)
}
