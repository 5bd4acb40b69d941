package texture

import (
	"os"

	"softraster/internal/canvas"
)

// Open returns the texture named by name: a direct file path when one
// exists, otherwise the entry resolved from r.
func Open(r Resolver, name string) (*canvas.Canvas, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return Load(name)
	}
	return r.Resolve(name)
}
