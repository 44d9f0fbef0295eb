package main

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gogpu/textpath/text"
)

// svgMargin is the space around the layout box and below it for the caption.
const svgMargin = 20

// writeSVG renders the box outline, the glyph paths and a caption line.
// Empty paths are skipped.
func writeSVG(w io.Writer, box text.InputTransform, paths []string, caption string) error {
	bw := bufio.NewWriter(w)

	width := box.X + box.W + svgMargin
	height := box.Y + box.H + 2*svgMargin
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#c0c0c0"/>`+"\n",
		box.X, box.Y, box.W, box.H)

	fmt.Fprintln(bw, `<g fill="black">`)
	for _, p := range paths {
		if p == "" {
			continue
		}
		fmt.Fprintf(bw, `<path d="%s"/>`+"\n", p)
	}
	fmt.Fprintln(bw, `</g>`)

	fmt.Fprintf(bw, `<text x="%d" y="%d" font-family="monospace" font-size="12" fill="#808080">`,
		box.X, box.Y+box.H+svgMargin)
	if err := xml.EscapeText(bw, []byte(caption)); err != nil {
		return err
	}
	fmt.Fprintln(bw, `</text>`)
	fmt.Fprintln(bw, `</svg>`)

	return bw.Flush()
}
