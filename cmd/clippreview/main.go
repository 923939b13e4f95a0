package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/prefabs"
)

const (
	screenSize = 512
	maxLog     = 12
	dt         = 1.0 / 60.0
)

// previewGame loops one animation parameter and logs its frame events.
type previewGame struct {
	animator *component.Animator
	params   []string
	current  int
	motion   cp.Vector
	events   []string
	paused   bool
}

func (g *previewGame) play(i int) {
	if len(g.params) == 0 {
		return
	}
	g.current = (i + len(g.params)) % len(g.params)
	g.motion = cp.Vector{}
	g.events = g.events[:0]
	g.animator.ChangeAnimationState(g.params[g.current], 0, 0)
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.play(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.play(g.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.play(g.current)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	}
	if !g.paused {
		g.animator.Update(dt)
	}
	return nil
}

func (g *previewGame) onEvent(layer, frame int, evt component.AnimationEvent) {
	line := fmt.Sprintf("f%02d %s", frame, evt.Type)
	if evt.Payload != "" {
		line += " (" + evt.Payload + ")"
	}
	g.events = append(g.events, line)
	if len(g.events) > maxLog {
		g.events = g.events[len(g.events)-maxLog:]
	}
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	// root motion travelled so far, scaled into the window
	x := float32(screenSize/4 + g.motion.X/2)
	y := float32(screenSize/2 + g.motion.Y/2)
	vector.FillRect(screen, x-14, y-28, 28, 56, color.RGBA{0x46, 0x82, 0xb4, 0xff}, false)

	param := ""
	if len(g.params) > 0 {
		param = g.params[g.current]
	}
	header := fmt.Sprintf("%s -> %s\nblend: %v  paused: %v\n<- -> switch  R restart  space pause\n\n",
		param, g.animator.CurrentClip(0), g.animator.IsInTransition(0), g.paused)
	ebitenutil.DebugPrint(screen, header+strings.Join(g.events, "\n"))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	path := flag.String("file", "", "animations yaml (defaults to prefabs/animations.yaml)")
	param := flag.String("param", "", "parameter to start with")
	flag.Parse()

	var (
		spec prefabs.AnimationsSpec
		err  error
	)
	if *path == "" {
		spec, err = prefabs.LoadSpec[prefabs.AnimationsSpec]("animations.yaml")
	} else {
		spec, err = prefabs.LoadSpecFile[prefabs.AnimationsSpec](*path)
	}
	if err != nil {
		log.Fatal(err)
	}
	animator, err := component.NewAnimatorFromSpec(&spec)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{animator: animator}
	for _, p := range spec.Params {
		g.params = append(g.params, p.Name)
	}
	animator.Emitter.Handlers = append(animator.Emitter.Handlers, g.onEvent)
	animator.OnRootMotion = func(delta cp.Vector) { g.motion = g.motion.Add(delta) }

	start := 0
	for i, p := range g.params {
		if p == *param {
			start = i
		}
	}
	g.play(start)

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Clip Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
