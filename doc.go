// Package textpath turns configured documents into glyph outline paths.
//
// A configuration (TOML or YAML) names the fonts and documents; an Engine
// built from it lays out a document inside a box and returns one path
// string per visible glyph, in the order glyphs are placed:
//
//	cfg, err := textpath.LoadConfig("textpath.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng, err := textpath.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := eng.Paths(0, 0, 400, 300, 24, "greeting")
//
// Each path uses absolute commands separated by spaces:
//
//	M{x} {y} L{x} {y} Q{cx} {cy},{x} {y} C{c1x} {c1y},{c2x} {c2y},{x} {y} Z
//
// # Fonts
//
// Font sources are file paths (relative to the config file), "system:"
// names looked up in the platform font directories, or "builtin:" names
// of fonts bundled with the package (see BuiltinFonts).
//
// # Layout
//
// The layout itself lives in the text subpackage: bidi paragraph and run
// splitting, UAX #14 line breaking, HarfBuzz shaping and outline
// extraction. Engine adds configuration, named documents and an LRU
// cache keyed by document and box.
//
// # Logging
//
// textpath logs through log/slog and is silent by default. See SetLogger.
package textpath
