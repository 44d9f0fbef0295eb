package text

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// FontKind distinguishes fonts with fixed outlines from fonts whose
// outlines depend on variation axes.
type FontKind uint8

const (
	// FontStatic has fixed outlines; variation settings are ignored.
	FontStatic FontKind = iota
	// FontVariable has outlines that depend on axis values, which are
	// fixed once at registration.
	FontVariable
)

// String returns the string representation of the kind.
func (k FontKind) String() string {
	switch k {
	case FontStatic:
		return "Static"
	case FontVariable:
		return "Variable"
	default:
		return unknownStr
	}
}

// Variation sets one variation axis, e.g. {Tag: "wght", Value: 400}.
type Variation struct {
	Tag   string
	Value float32
}

// FontSpec describes a font to register.
type FontSpec struct {
	ID         FontID
	Data       []byte
	Kind       FontKind
	Variations []Variation
}

// Font is a registered font. It owns a private copy of the font file and
// the parsed font derived from it; both live as long as the Font.
//
// Font is safe for concurrent use. Faces obtained from Face are not and
// must stay with one layout call.
//
// Font must not be copied after creation (enforced by copyCheck).
type Font struct {
	// addr is used for copy protection.
	addr *Font

	id         FontID
	kind       FontKind
	data       []byte
	parsed     *font.Font
	variations []font.Variation
	upem       int
}

// newFont copies spec.Data and parses it.
func newFont(spec FontSpec) (*Font, error) {
	if spec.ID == "" {
		return nil, ErrEmptyFontID
	}
	if len(spec.Data) == 0 {
		return nil, &FontError{ID: spec.ID, Reason: "no data", Err: ErrEmptyFontData}
	}

	// The parsed font reads from data, so data is copied first and kept
	// alongside it.
	data := make([]byte, len(spec.Data))
	copy(data, spec.Data)

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{ID: spec.ID, Reason: "failed to parse", Err: err}
	}

	f := &Font{
		id:     spec.ID,
		kind:   spec.Kind,
		data:   data,
		parsed: face.Font,
		upem:   int(face.Upem()),
	}
	f.addr = f

	if spec.Kind == FontVariable {
		for _, v := range spec.Variations {
			if len(v.Tag) != 4 {
				return nil, &FontError{ID: spec.ID, Reason: fmt.Sprintf("invalid variation tag %q", v.Tag)}
			}
			f.variations = append(f.variations, font.Variation{
				Tag:   ot.MustNewTag(v.Tag),
				Value: v.Value,
			})
		}
	}
	return f, nil
}

// copyCheck panics if Font was copied by value.
func (f *Font) copyCheck() {
	if f.addr != f {
		panic("text: Font must not be copied by value")
	}
}

// ID returns the id the font was registered under.
func (f *Font) ID() FontID {
	f.copyCheck()
	return f.id
}

// Kind returns whether the font is static or variable.
func (f *Font) Kind() FontKind {
	f.copyCheck()
	return f.kind
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() int {
	f.copyCheck()
	return f.upem
}

// Data returns the raw font file. The slice must not be modified.
func (f *Font) Data() []byte {
	f.copyCheck()
	return f.data
}

// Face creates a face with the registered variations applied.
// Each layout call needs its own face.
func (f *Font) Face() *font.Face {
	f.copyCheck()
	face := font.NewFace(f.parsed)
	if len(f.variations) > 0 {
		face.SetVariations(f.variations)
	}
	return face
}

// Registry stores fonts by id and resolves fallback chains.
// It is immutable once NewRegistry returns and may be shared by any number
// of concurrent layout calls.
type Registry struct {
	fonts          map[FontID]*Font
	globalFallback FontID
}

// NewRegistry parses and registers specs. globalFallback must name one of
// them; a registry without it is a configuration error.
func NewRegistry(globalFallback FontID, specs ...FontSpec) (*Registry, error) {
	r := &Registry{
		fonts:          make(map[FontID]*Font, len(specs)),
		globalFallback: globalFallback,
	}
	for _, spec := range specs {
		if _, dup := r.fonts[spec.ID]; dup {
			return nil, &DuplicateFontError{ID: spec.ID}
		}
		f, err := newFont(spec)
		if err != nil {
			return nil, err
		}
		r.fonts[spec.ID] = f
	}
	if _, ok := r.fonts[globalFallback]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingGlobalFallback, globalFallback)
	}
	Logger().Debug("font registry built", "fonts", len(r.fonts), "fallback", globalFallback)
	return r, nil
}

// Lookup returns the font registered under id.
func (r *Registry) Lookup(id FontID) (*Font, bool) {
	f, ok := r.fonts[id]
	return f, ok
}

// GlobalFallback returns the id of the font used when nothing else resolves.
func (r *Registry) GlobalFallback() FontID {
	return r.globalFallback
}

// IDs returns the registered font ids in sorted order.
func (r *Registry) IDs() []FontID {
	return slices.Sorted(maps.Keys(r.fonts))
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	return len(r.fonts)
}

// ResolveID returns the first registered id among primary, fallback and
// the global fallback. Each miss is logged as a warning.
func (r *Registry) ResolveID(primary, fallback FontID) FontID {
	if _, ok := r.fonts[primary]; ok {
		return primary
	}
	Logger().Warn("font not found, using fallback",
		"font", primary, "fallback", fallback)

	if _, ok := r.fonts[fallback]; ok {
		return fallback
	}
	Logger().Warn("fallback font not found, using global fallback",
		"font", fallback, "fallback", r.globalFallback)

	return r.globalFallback
}

// Resolve is ResolveID returning the font itself. It never returns nil for
// a registry built by NewRegistry.
func (r *Registry) Resolve(primary, fallback FontID) *Font {
	return r.fonts[r.ResolveID(primary, fallback)]
}
