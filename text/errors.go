package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFontID is returned when a font is registered without an id.
	ErrEmptyFontID = errors.New("text: empty font id")

	// ErrMissingGlobalFallback is returned by NewRegistry when the global
	// fallback font is not among the registered fonts.
	ErrMissingGlobalFallback = errors.New("text: global fallback font is not registered")

	// ErrUnsupportedFontType is returned when an outline provider cannot
	// handle the given font (for example a variable font in SfntOutlines).
	ErrUnsupportedFontType = errors.New("text: unsupported font type for outline extraction")
)

// FontError reports a failure concerning one registered font.
type FontError struct {
	ID     FontID
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	msg := "text: font " + e.ID + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FontError) Unwrap() error {
	return e.Err
}

// DuplicateFontError is returned when two fonts share one id.
type DuplicateFontError struct {
	ID FontID
}

func (e *DuplicateFontError) Error() string {
	return "text: font " + e.ID + " registered twice"
}
