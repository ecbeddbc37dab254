// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	palscope "github.com/palscope/palscope"
	"github.com/palscope/palscope/base/logx"
	"github.com/palscope/palscope/cam/cam16"
	"github.com/palscope/palscope/cam/cie"
	"github.com/palscope/palscope/graph"
	"github.com/palscope/palscope/palette"
	"github.com/palscope/palscope/plotcache"
	"github.com/palscope/palscope/text"
)

// The analysis image has a fixed layout.
const (
	Width  = 640
	Height = 432

	innerX = 17
	innerY = 16
	innerW = 610
	innerH = 406
)

// Options configures one analysis run.
type Options struct {
	Colours       []cie.RGB255
	ICC           []byte
	T             float32
	GreyUI        bool
	Multithreaded bool
	OutFile       string
	Cacher        *plotcache.Cacher
	Font          *text.Font
}

// task is one widget's worth of drawing: it runs against exactly one
// graph provider and one cache provider, so its draw order is
// preserved at the host.
type task func(g graph.Provider, cache plotcache.Provider)

// Analyse renders the full diagnostic image and writes it to the
// output file.
func Analyse(o Options) error {
	logx.PrintlnInfo("Starting analysis.")
	il := cam16.NewIlluminant(cie.FromTemp(o.T))
	pal := palette.New(o.Colours, il, o.GreyUI)
	font := o.Font

	img := graph.New(Width, Height)
	if o.ICC != nil {
		img.SetICCProfile(o.ICC)
	}
	img.Block(0, 0, Width, Height, pal.BgRGB)
	img.Block(innerX, innerY, innerW, innerH, pal.BlRGB)
	img.Text(fmt.Sprintf("= PALSCOPE v%s - PALETTE ANALYSER =", palscope.Version),
		Width/2, 2, text.N, font, pal.TlRGB)
	img.Text(fmt.Sprintf("Unique colours in palette: %d", pal.N),
		2, 2, text.NW, font, pal.TlRGB)
	img.Text("Colour difference: CAM16UCS",
		Width-2, 2, text.NE, font, pal.TlRGB)
	img.Text(fmt.Sprintf("Illuminant: D(T=%.2f°K)", o.T),
		Width-2, 9, text.NE, font, pal.TlRGB)
	img.Text(palscope.Repo, Width-3, Height-2, text.SE, font, pal.TlRGB)

	tasks := layout(pal, il, font)

	if !o.Multithreaded {
		cp := plotcache.NewSingle(o.T, il, o.Cacher)
		for _, t := range tasks {
			t(img, cp)
		}
	} else {
		ghost := graph.NewHost(img)
		chost := plotcache.NewHost(o.Cacher)
		var eg errgroup.Group
		for _, t := range tasks {
			t := t
			gp := ghost.Register()
			cp := chost.Register(o.T, il)
			eg.Go(func() error {
				t(gp, cp)
				return nil
			})
		}
		ghostDone := make(chan struct{})
		chostDone := make(chan struct{})
		go func() { ghost.Run(); close(ghostDone) }()
		go func() { chost.Run(); close(chostDone) }()
		if err := eg.Wait(); err != nil {
			return err
		}
		ghost.Close()
		chost.Close()
		<-ghostDone
		<-chostDone
	}

	logx.PrintlnInfo("Saving...")
	return img.Save(o.OutFile)
}

// layout emits the widget placements in the fixed analysis order.
// Every emission pairs a widget with the labels that belong to it, so
// that labels land atop their own plot regardless of how the widgets
// interleave between workers.
func layout(pal *palette.Palette, il *cam16.Illuminant, font *text.Font) []task {
	var tasks []task
	run := func(t task) {
		tasks = append(tasks, t)
	}

	const rectJChW, rectJChH = 99, 96
	for i, chroma := range [2]float32{40, 10} {
		chroma := chroma
		x := innerX + 1 + (rectJChW+2)*i
		y := innerY + 1
		run(func(g graph.Provider, cache plotcache.Provider) {
			g.Text(fmt.Sprintf("CHROMA: %d", int(chroma)),
				x, innerY-1, text.SW, font, pal.BlRGB)
			RectJCh{W: rectJChW, H: rectJChH, C: chroma}.
				Render(g, cache, pal, il, font, x, y)
		})
	}

	const spectrumW, spectrumH = 200, 6
	spectrumY := innerY + 100
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("SPEC", innerX-1, spectrumY+1, text.NE, font, pal.BlRGB)
		g.Text("C50%", innerX-1, spectrumY+1+(spectrumH+1), text.NE, font, pal.BlRGB)
		g.Text("J50%", innerX-1, spectrumY+1+(spectrumH+1)*2, text.NE, font, pal.BlRGB)
		NewSpectrum(spectrumW, spectrumH).
			Render(g, cache, pal, il, font, innerX+1, spectrumY)
	})

	spectroboxY := innerY + 123
	const spectroboxW, spectroboxH = 200, 92
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("SPEC", innerX-1, spectroboxY+1+spectroboxH/2-3, text.E, font, pal.BlRGB)
		g.Text("BOX", innerX-1, spectroboxY+1+spectroboxH/2+3, text.E, font, pal.BlRGB)
		NewSpectroBox(spectroboxW, spectroboxH).
			Render(g, cache, pal, il, font, innerX+1, spectroboxY)
	})

	indexedX := innerX + 203
	indexedY := innerY + 1
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("INDEXED PALETTE", indexedX, innerY-1, text.SW, font, pal.BlRGB)
		Indexed{SlotsX: 32, SlotsY: 8, WW: 3, HH: 4}.
			Render(g, cache, pal, il, font, indexedX, indexedY)
	})

	const closeN, closeD = 10, 9
	closeX := innerX + 203
	closeW := (closeD+1)*closeN - 1
	close10Y := innerY + 45
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("close cols: 10% li-match",
			closeX+closeW/2, close10Y, text.S, font, pal.FgRGB)
		CloseLiMatch{WW: closeD, HH: closeD, N: closeN, LiMatch: 0.1}.
			Render(g, cache, pal, il, font, closeX, close10Y)
	})

	close70Y := close10Y + closeD*2 + 2
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("close cols: 70% li-match",
			closeX+closeW/2, close70Y+closeD*2+1, text.N, font, pal.FgRGB)
		CloseLiMatch{WW: closeD, HH: closeD, N: closeN, LiMatch: 0.7}.
			Render(g, cache, pal, il, font, closeX, close70Y)
	})

	issX := innerX + 203
	issY := innerY + 92
	run(func(g graph.Provider, cache plotcache.Provider) {
		ISS{W: 44, H: 24, Warn: 2, Alert: 3.5}.
			Render(g, cache, pal, il, font, issX, issY)
	})

	acyclicX := innerX + 259
	acyclicY := innerY + 92
	run(func(g graph.Provider, cache plotcache.Provider) {
		Acyclic{W: 44, H: 24}.
			Render(g, cache, pal, il, font, acyclicX, acyclicY)
	})

	sdistX := innerX + 203
	sdistY := innerY + 124
	const sdistW, sdistH = 100, 36
	run(func(g graph.Provider, cache plotcache.Provider) {
		SpectralDistribution{W: sdistW, H: sdistH}.
			Render(g, cache, pal, il, font, sdistX, sdistY)
		g.Text("spectral distribution",
			sdistX+sdistW/2, sdistY, text.S, font, pal.FgRGB)
	})

	tdistX := innerX + 203
	tdistY := innerY + 170
	const tdistW, tdistH = 100, 36
	run(func(g graph.Provider, cache plotcache.Provider) {
		TemperatureDistribution{W: tdistW, H: tdistH}.
			Render(g, cache, pal, il, font, tdistX, tdistY)
		g.Text("temperature", tdistX+tdistW/2, tdistY-1, text.S, font, pal.FgRGB)
	})

	limatchX := innerX + 305
	const limatchW, limatchH = 34, 214
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("LI-MATCH", limatchX+limatchW/2, innerY-1, text.S, font, pal.BlRGB)
		LiMatchGreyscale{W: limatchW, H: limatchH}.
			Render(g, cache, pal, il, font, limatchX, innerY+1)
	})

	isocubesX := innerX + 355
	const isocubesWW, isocubesDX = 80, 7
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("CAM16UCS COLOURSPACE",
			isocubesX+isocubesWW+isocubesDX/2, innerY-1, text.S, font, pal.BlRGB)
		CAM16IsoCubes{WW: isocubesWW, DX: isocubesDX}.
			Render(g, cache, pal, il, font, isocubesX, innerY+1)
	})

	chrlihueX := innerX + 352
	chrlihueY := innerY + 96
	run(func(g graph.Provider, cache plotcache.Provider) {
		ChromaLightnessHue{W1: 46, HH1: 37, W2: 130, H2: 109}.
			Render(g, cache, pal, il, font, chrlihueX, chrlihueY)
	})

	compsX := innerX + 533
	compsY := innerY + 7
	const compsW = 74
	compsH := innerH - 9
	compsTY := innerY + 3

	if pal.N <= 64 {
		compsY = innerY + 82
		compsH = innerH - 83
		compsTY = innerY + 83

		mixesX := innerX + 533
		run(func(g graph.Provider, cache plotcache.Provider) {
			g.VText("USEFUL MIXES", innerX+innerW+5, innerY+1,
				text.HCenter, font, pal.BlRGB)
			UsefulMixes{XN: 7, YN: 7, WW: 10, HH: 9}.
				Render(g, cache, pal, il, font, mixesX, innerY+1)
		})
	}

	run(func(g graph.Provider, cache plotcache.Provider) {
		g.VText("LIGHTNESS & CHROMA", innerX+innerW+5, compsTY,
			text.HCenter, font, pal.BlRGB)
		LightnessChromaComponents{W: compsW, H: compsH}.
			Render(g, cache, pal, il, font, compsX, compsY)
	})

	mainpalY := innerY + 234
	const mainpalW, mainpalH = 512, 10
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("PAL", innerX-1, mainpalY+2, text.NE, font, pal.BlRGB)
		MainPalette{W: mainpalW, H: mainpalH}.
			Render(g, cache, pal, il, font, innerX+1, mainpalY)
	})

	if pal.N <= 64 {
		neuY := innerY + 220
		run(func(g graph.Provider, cache plotcache.Provider) {
			g.Text("NEU", innerX-1, neuY, text.NE, font, pal.BlRGB)
			g.Text("GREY", innerX-1, neuY+7, text.NE, font, pal.BlRGB)
			Neutralisers{W: 512, H1: 6, H2: 7}.
				Render(g, cache, pal, il, font, innerX+1, neuY)
		})
	}

	rgb12bitY := innerY + 256
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("12 BIT RGB", innerX+1, rgb12bitY-1, text.SW, font, pal.FgRGB)
		RGB12Bit{}.Render(g, cache, pal, il, font, innerX+1, rgb12bitY)
	})

	huechromaX := innerX + 8
	huechromaY := innerY + 291
	const huechromaD = 105
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("POLAR HUE-CHROMA",
			huechromaX+huechromaD/2, innerY+innerH+1, text.N, font, pal.BlRGB)
		HueChromaPolar{D: huechromaD}.
			Render(g, cache, pal, il, font, huechromaX, huechromaY)
	})

	hueliX := innerX + 137
	hueliY := innerY + 251
	const hueliDSmall, hueliDBig = 60, 90
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("POLAR HUE-LIGHTNESS",
			hueliX+(hueliDSmall+hueliDBig)/2, innerY+innerH+1,
			text.N, font, pal.BlRGB)
		HueLightnessPolarFilledGroup{
			CLow: 10, CHigh: 50,
			DSmall: hueliDSmall, DBig: hueliDBig,
		}.Render(g, cache, pal, il, font, hueliX, hueliY)
	})

	compX := innerX + 296
	compY := innerY + 256
	const compD, compDX, compDY = 70, 2, 9
	const compC = 42.0
	run(func(g graph.Provider, cache plotcache.Provider) {
		g.Text("COMPLEMENTARIES/DESATURATION",
			compX+(compD*3+compDX*2)/2, innerY+innerH+1,
			text.N, font, pal.BlRGB)
	})
	compHues := [6]struct {
		angle float32
		title string
	}{
		{0 * math32.Pi / 6, "purple/seaweed"},
		{1 * math32.Pi / 6, "red/cyan"},
		{2 * math32.Pi / 6, "orange/blue"},
		{3 * math32.Pi / 6, "olive/ultramarine"},
		{4 * math32.Pi / 6, "lime/violet"},
		{5 * math32.Pi / 6, "emerald/rose"},
	}
	for yi := 0; yi < 2; yi++ {
		for xi := 0; xi < 3; xi++ {
			i := yi*3 + xi
			a := compC * math32.Cos(compHues[i].angle)
			b := compC * math32.Sin(compHues[i].angle)
			title := compHues[i].title
			x := compX + (compD+compDX)*xi
			y := compY + (compD+compDY)*yi
			run(func(g graph.Provider, cache plotcache.Provider) {
				g.Text(title, x, y-7, text.NW, font, pal.FgRGB)
				Complementaries{A: a, B: b, W: compD, H: compD}.
					Render(g, cache, pal, il, font, x, y)
			})
		}
	}

	return tasks
}
