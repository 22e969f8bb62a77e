package render

import (
	"bytes"
	"encoding/binary"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// IconPNG renders the crosshair scaled down to a side×side PNG for the tray,
// so the tray icon mirrors the live shape and colors. Opacity is forced to
// full; a faded tray icon would just look broken.
func IconPNG(s settings.Settings, side int) ([]byte, error) {
	s.Opacity = 1
	k := float64(side) / float64(2*Extent(s))

	dc := gg.NewContext(side, side)
	c := float64(side) / 2
	draw(dc, s, c, c, k)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IconICO wraps an encoded PNG in a single-image ICO container. Windows
// accepts PNG-compressed entries since Vista, so no BMP conversion is needed.
func IconICO(pngData []byte, side int) []byte {
	b := byte(side)
	if side >= 256 {
		b = 0
	}

	var buf bytes.Buffer
	put := func(v any) { binary.Write(&buf, binary.LittleEndian, v) }
	put(uint16(0)) // reserved
	put(uint16(1)) // type: icon
	put(uint16(1)) // image count
	buf.WriteByte(b)
	buf.WriteByte(b)
	buf.WriteByte(0) // palette size
	buf.WriteByte(0) // reserved
	put(uint16(1))   // color planes
	put(uint16(32))  // bits per pixel
	put(uint32(len(pngData)))
	put(uint32(22)) // payload offset: 6 byte header + 16 byte entry
	buf.Write(pngData)
	return buf.Bytes()
}
