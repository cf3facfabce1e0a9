package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// SVG writes the code as a standalone SVG document. Coordinates are in
// modules; width and height carry the pixel size implied by Style.Scale.
func (c *Code) SVG(w io.Writer, s Style) error {
	if err := s.validate(); err != nil {
		return err
	}
	s = s.withDefaults()

	total := c.Size() + 2*s.Border
	side := c.Dimension(s)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n",
		side, side, total, total)
	fmt.Fprintf(bw, `<rect width="%d" height="%d"%s/>`+"\n", total, total, fillAttr(s.QuietZone))
	fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%d" height="%d"%s/>`+"\n", s.Border, s.Border, c.Size(), c.Size(), fillAttr(s.Light))

	bw.WriteString(`<path`)
	bw.WriteString(fillAttr(s.Dark))
	bw.WriteString(` d="`)
	for y, row := range c.modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			run := 1
			for x+run < len(row) && row[x+run] {
				run++
			}
			// one horizontal run of dark modules
			bw.WriteString("M" + strconv.Itoa(x+s.Border) + " " + strconv.Itoa(y+s.Border) +
				"h" + strconv.Itoa(run) + "v1h-" + strconv.Itoa(run) + "z")
			x += run
		}
	}
	bw.WriteString(`"/>` + "\n")
	bw.WriteString("</svg>\n")

	return bw.Flush()
}

func fillAttr(c color.Color) string {
	hex, opacity := hexColor(c)
	if opacity >= 1 {
		return fmt.Sprintf(` fill="%s"`, hex)
	}
	return fmt.Sprintf(` fill="%s" fill-opacity="%s"`, hex, strconv.FormatFloat(opacity, 'f', 3, 64))
}
