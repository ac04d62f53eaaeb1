package upload

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"
)

// Namer derives the stored filename for an upload from its original name.
type Namer interface {
	Name(original string) string
}

// UniqueSuffixNamer prefixes the original name with the current unix
// milliseconds and a random integer, so concurrent uploads of the same file
// never collide. This is the default strategy.
type UniqueSuffixNamer struct{}

func (UniqueSuffixNamer) Name(original string) string {
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Base(original))
}

// OriginalNamer stores uploads under their original filename verbatim.
// A later upload with the same name silently overwrites the earlier file;
// kept only for compatibility with deployments that relied on it.
type OriginalNamer struct{}

func (OriginalNamer) Name(original string) string {
	return filepath.Base(original)
}

// NamerFor maps a configured strategy name to its Namer. Unknown names fall
// back to the collision-safe default.
func NamerFor(strategy string) Namer {
	if strategy == "original" {
		return OriginalNamer{}
	}
	return UniqueSuffixNamer{}
}
