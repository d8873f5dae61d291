package render

// FillStateRGBA converts binary cell data (0/1) into the premultiplied RGBA
// texel layout of a state texture: white for alive, opaque black for dead.
func FillStateRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		base := i * 4
		v := byte(0)
		if c != 0 {
			v = 255
		}
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 255
	}
}
