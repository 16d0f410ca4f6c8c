package chip8

// Display colors written by RenderInto.
var (
	PixelOn  = [BytesPerPixel]byte{0xFF, 0xFF, 0xFF, 0xFF}
	PixelOff = [BytesPerPixel]byte{0x00, 0x00, 0x00, 0xFF}
)

// Display is the monochrome 64x32 bitmap, stored row-major.
type Display [Width * Height]bool

// Clear turns all pixels off.
func (d *Display) Clear() {
	*d = Display{}
}

// Pixel returns whether the pixel at the given position is lit.
// Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	return d[index(x, y)]
}

// DrawSprite XORs a sprite onto the display with its top left corner at x, y.
// Every sprite byte is a row of 8 pixels, most significant bit first.
// Positions wrap around the display edges. It returns whether any lit pixel
// was turned off.
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	var collision bool
	for row, line := range sprite {
		for bit := range 8 {
			if line&(0x80>>bit) == 0 {
				continue
			}
			i := index(x+bit, y+row)
			if d[i] {
				collision = true
			}
			d[i] = !d[i]
		}
	}
	return collision
}

// Render writes the display as RGBA8 pixels into frame, which must be FrameSize bytes.
func (d *Display) Render(frame []byte) error {
	if len(frame) != FrameSize {
		return ErrBufferSize
	}
	for i, lit := range d {
		color := PixelOff
		if lit {
			color = PixelOn
		}
		copy(frame[i*BytesPerPixel:], color[:])
	}
	return nil
}

// String returns a text rendering of the display, one line per row.
func (d *Display) String() string {
	buf := make([]byte, 0, (Width+1)*Height)
	for y := range Height {
		for x := range Width {
			if d[y*Width+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}
