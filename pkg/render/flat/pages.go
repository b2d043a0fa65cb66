package flat

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Page is one printable tile of the net.
type Page struct {
	Col, Row int
	Image    *gg.Pixmap
}

// Name returns the file name stem of the page, row first.
func (p Page) Name(prefix string) string {
	return fmt.Sprintf("%s-page%d%d", prefix, p.Row, p.Col)
}

// Pages cuts pm into a cols×rows grid of equal tiles in row-major order.
// Pixels beyond the last whole tile on either axis are dropped.
func Pages(pm *gg.Pixmap, cols, rows int) []Page {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	qx, qy := pm.Width()/cols, pm.Height()/rows
	src, stride := pm.Data(), pm.Width()*4

	pages := make([]Page, 0, cols*rows)
	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < cols; ix++ {
			tile := gg.NewPixmap(qx, qy)
			dst := tile.Data()
			for y := 0; y < qy; y++ {
				from := (iy*qy+y)*stride + ix*qx*4
				copy(dst[y*qx*4:(y+1)*qx*4], src[from:from+qx*4])
			}
			pages = append(pages, Page{Col: ix, Row: iy, Image: tile})
		}
	}
	return pages
}
