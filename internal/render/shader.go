//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// stepShaderSrc advances one Life generation on the GPU. The source image is
// the current state texture and the destination is the next one; alive is any
// texel with a red channel above 0.5. Neighbor lookups wrap toroidally via
// mod against the source size, with one size added first so the -1 offsets
// never go negative.
var stepShaderSrc = []byte(`//kage:unit pixels

package main

func alive(p vec2) float {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	q := origin + mod(p-origin+size, size)
	return step(0.5, imageSrc0UnsafeAt(q).r)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	sum := alive(srcPos+vec2(-1, -1)) + alive(srcPos+vec2(0, -1)) + alive(srcPos+vec2(1, -1)) +
		alive(srcPos+vec2(-1, 0)) + alive(srcPos+vec2(1, 0)) +
		alive(srcPos+vec2(-1, 1)) + alive(srcPos+vec2(0, 1)) + alive(srcPos+vec2(1, 1))

	next := 0.0
	if sum == 2.0 {
		next = alive(srcPos)
	} else if sum == 3.0 {
		next = 1.0
	}
	return vec4(next, next, next, 1)
}
`)

// displayShaderSrc colors the state texture for presentation: the gradient is
// a pure function of the cell coordinate and the alpha carries the state so
// dead cells show the clear color through.
var displayShaderSrc = []byte(`//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	cell := floor(srcPos - origin)
	state := step(0.5, imageSrc0UnsafeAt(srcPos).r)
	c := cell / size
	return vec4(c.x, c.y, 1.0-c.x, 1.0) * state
}
`)

// NewStepShader compiles the Life step shader.
func NewStepShader() (*ebiten.Shader, error) {
	return ebiten.NewShader(stepShaderSrc)
}

// NewDisplayShader compiles the presentation shader.
func NewDisplayShader() (*ebiten.Shader, error) {
	return ebiten.NewShader(displayShaderSrc)
}
