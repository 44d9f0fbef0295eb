package textpath

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Font source prefixes understood by LoadFontData.
const (
	BuiltinPrefix = "builtin:"
	SystemPrefix  = "system:"
)

// builtinFonts are the fonts bundled with the binary. The Go fonts are
// TrueType (quadratic outlines); Latin Modern is CFF (cubic outlines).
var builtinFonts = map[string][]byte{
	"goregular":     goregular.TTF,
	"gobold":        gobold.TTF,
	"goitalic":      goitalic.TTF,
	"gobolditalic":  gobolditalic.TTF,
	"gomedium":      gomedium.TTF,
	"gomono":        gomono.TTF,
	"gomonobold":    gomonobold.TTF,
	"gosmallcaps":   gosmallcaps.TTF,
	"lmroman":       lmroman10regular.TTF,
	"lmromanbold":   lmroman10bold.TTF,
	"lmromanitalic": lmroman10italic.TTF,
	"lmsans":        lmsans10regular.TTF,
	"lmmono":        lmmono10regular.TTF,
}

// BuiltinFonts returns the names accepted after "builtin:", sorted.
func BuiltinFonts() []string {
	return slices.Sorted(maps.Keys(builtinFonts))
}

// Builtin returns the bytes of a bundled font.
func Builtin(name string) ([]byte, bool) {
	data, ok := builtinFonts[name]
	return data, ok
}

// LoadFontData returns the font file bytes for src:
//
//   - "builtin:<name>": a bundled font (see BuiltinFonts)
//   - "system:<file>": a font file found in the system font directories
//   - anything else: a file path, relative paths resolved against baseDir
func LoadFontData(src, baseDir string) ([]byte, error) {
	switch {
	case strings.HasPrefix(src, BuiltinPrefix):
		name := strings.TrimPrefix(src, BuiltinPrefix)
		data, ok := Builtin(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
		}
		return data, nil

	case strings.HasPrefix(src, SystemPrefix):
		name := strings.TrimPrefix(src, SystemPrefix)
		path, err := findfont.Find(name)
		if err != nil {
			return nil, fmt.Errorf("textpath: system font %q: %w", name, err)
		}
		Logger().Debug("system font located", "name", name, "path", path)
		return readFontFile(path)

	default:
		path := src
		if baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return readFontFile(path)
	}
}

func readFontFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textpath: read font: %w", err)
	}
	return data, nil
}
