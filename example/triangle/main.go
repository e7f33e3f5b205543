// SPDX-License-Identifier: Unlicense OR MIT

// Command triangle renders an animated triangle through the full gate
// protocol against a recording driver and prints the call trace of each
// frame. The second and later frames show the state cache at work: every
// setting already committed is elided and only the clear, the animated
// uniform and the draw reach the driver.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"gioui.org/shader"
	"github.com/chewxy/math32"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/gl33"
	"github.com/sdleffler/luminance/internal/f32color"
	"github.com/sdleffler/luminance/internal/gltest"
)

const vertSrc = `#version 330 core
in vec2 pos;
in vec3 rgb;
uniform float angle;
out vec3 vColor;
void main() {
	float c = cos(angle), s = sin(angle);
	gl_Position = vec4(mat2(c, -s, s, c) * pos, 0.0, 1.0);
	vColor = rgb;
}`

const fragSrc = `#version 330 core
in vec3 vColor;
out vec4 fragColor;
void main() { fragColor = vec4(vColor, 1.0); }`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "triangle:", err)
		os.Exit(1)
	}
}

func run() error {
	luminance.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	rec := gltest.New()
	ctx, err := gl33.New(rec)
	if err != nil {
		return err
	}
	defer ctx.Release()

	// Interleaved position and color, one triangle.
	verts, err := gl33.NewBufferFrom(ctx, []float32{
		0, 0.7, 1, 0, 0,
		-0.7, -0.7, 0, 1, 0,
		0.7, -0.7, 0, 0, 1,
	})
	if err != nil {
		return err
	}
	defer verts.Release()

	layout := luminance.VertexLayout{
		Inputs: []luminance.InputDesc{
			{Type: shader.DataTypeFloat, Size: 2, Offset: 0},
			{Type: shader.DataTypeFloat, Size: 3, Offset: 8},
		},
		Stride: 20,
	}
	tess, err := gl33.NewTess(ctx, gl33.TessDesc{
		Mode:     luminance.ModeTriangle,
		Vertices: []gl33.VertexBuffer{{Buffer: verts, Layout: layout}},
	})
	if err != nil {
		return err
	}
	defer tess.Release()

	inputs := []shader.InputLocation{
		{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 2},
		{Name: "rgb", Location: 1, Type: shader.DataTypeFloat, Size: 3},
	}
	prog, _, err := gl33.NewProgram(ctx, vertSrc, fragSrc, inputs, []string{"angle"})
	if err != nil {
		return err
	}
	defer prog.Release()

	rec.TakeTrace()
	target := gl33.BackBuffer(ctx, 800, 600)
	clear := f32color.LinearFromSRGB(color.NRGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff})
	st := luminance.PipelineState{ClearColor: clear.Float32()}

	for frame := 0; frame < 3; frame++ {
		angle := 2 * math32.Pi * float32(frame) / 60
		err := ctx.Pipeline(target, st, func(p *gl33.Pipeline, sg gl33.ShadingGate) error {
			return sg.Shade(prog, func(pi gl33.ProgramInterface, rg gl33.RenderGate) error {
				pi.Uniform("angle").SetFloat(angle)
				return rg.Render(luminance.DefaultRenderState(), func(tg gl33.TessGate) error {
					return tg.Render(tess)
				})
			})
		})
		if err != nil {
			return err
		}
		fmt.Printf("frame %d:\n", frame)
		for _, call := range rec.TakeTrace() {
			fmt.Println("\t" + call)
		}
	}
	return nil
}
