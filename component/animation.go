package component

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

// Clip is a frame-timed animation. RootMotion is the displacement the clip
// applies over its full length in actor-local space (facing +X).
type Clip struct {
	Name       string
	FrameCount int
	FPS        int
	Loop       bool
	RootMotion cp.Vector
	Events     *AnimationEventMap
}

// NewClip creates a clip. `fps` defaults to 12 if <= 0 and a clip always has
// at least one frame.
func NewClip(name string, frameCount, fps int, loop bool) *Clip {
	if fps <= 0 {
		fps = 12
	}
	if frameCount <= 0 {
		frameCount = 1
	}
	return &Clip{
		Name:       name,
		FrameCount: frameCount,
		FPS:        fps,
		Loop:       loop,
		Events:     NewAnimationEventMap(),
	}
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c == nil || c.FPS <= 0 {
		return 0
	}
	return float64(c.FrameCount) / float64(c.FPS)
}

type animLayer struct {
	param string
	clip  *Clip
	time  float64
	frame int
	blend float64
	done  bool
	seq   uint64
}

// Animator plays one clip per layer, crossfading on every state change and
// emitting frame events as playback crosses their frames.
type Animator struct {
	clips      map[string]*Clip
	controller map[string]string
	overrides  map[string]string
	durations  map[string]float64
	layers     []animLayer
	reported   map[string]bool
	seq        uint64

	Emitter      AnimationEventEmitter
	OnRootMotion func(delta cp.Vector)
}

// NewAnimator creates an animator with the given number of layers (min 1).
func NewAnimator(layers int) *Animator {
	if layers <= 0 {
		layers = 1
	}
	a := &Animator{
		clips:      make(map[string]*Clip),
		controller: make(map[string]string),
		overrides:  make(map[string]string),
		durations:  make(map[string]float64),
		layers:     make([]animLayer, layers),
		reported:   make(map[string]bool),
	}
	for i := range a.layers {
		a.layers[i].frame = -1
	}
	return a
}

// AddClip registers a clip by name, replacing any clip with the same name.
func (a *Animator) AddClip(c *Clip) {
	if a == nil || c == nil || c.Name == "" {
		return
	}
	a.clips[c.Name] = c
}

// Bind maps a parameter to a clip. A positive duration overrides the
// parameter's transition duration.
func (a *Animator) Bind(param, clip string, duration float64) {
	if a == nil || param == "" {
		return
	}
	a.controller[param] = clip
	if duration > 0 {
		a.durations[param] = duration
	}
}

// OverrideClip swaps the clip played for param. An empty clip restores the
// controller default.
func (a *Animator) OverrideClip(param, clip string) {
	if a == nil || param == "" {
		return
	}
	if clip == "" {
		delete(a.overrides, param)
		return
	}
	a.overrides[param] = clip
}

func (a *Animator) clipFor(param string) *Clip {
	name, ok := a.overrides[param]
	if !ok {
		name = a.controller[param]
	}
	return a.clips[name]
}

// ChangeAnimationState starts param's clip on layer with a crossfade of
// blend seconds.
func (a *Animator) ChangeAnimationState(param string, blend float64, layer int) {
	if a == nil {
		return
	}
	if layer < 0 || layer >= len(a.layers) {
		a.reportOnce("layer:"+param, "animation: layer %d out of range for %q", layer, param)
		return
	}
	clip := a.clipFor(param)
	if clip == nil {
		a.reportOnce("clip:"+param, "animation: no clip bound to %q", param)
	}
	a.seq++
	a.layers[layer] = animLayer{
		param: param,
		clip:  clip,
		frame: -1,
		blend: math.Max(0, blend),
		seq:   a.seq,
	}
}

// IsInTransition reports whether layer is still crossfading.
func (a *Animator) IsInTransition(layer int) bool {
	if a == nil || layer < 0 || layer >= len(a.layers) {
		return false
	}
	return a.layers[layer].blend > 0
}

// AnimationDuration returns the configured transition duration for param,
// falling back to the defaults table and then to the clip length.
func (a *Animator) AnimationDuration(param string) float64 {
	if a == nil {
		return 0
	}
	if d, ok := a.durations[param]; ok {
		return d
	}
	if d, ok := DefaultTransitionDurations[param]; ok {
		return d
	}
	return a.clipFor(param).Duration()
}

// CurrentClip returns the clip name playing on layer.
func (a *Animator) CurrentClip(layer int) string {
	if a == nil || layer < 0 || layer >= len(a.layers) || a.layers[layer].clip == nil {
		return ""
	}
	return a.layers[layer].clip.Name
}

// CurrentParam returns the parameter last requested on layer.
func (a *Animator) CurrentParam(layer int) string {
	if a == nil || layer < 0 || layer >= len(a.layers) {
		return ""
	}
	return a.layers[layer].param
}

// Update advances every layer by dt seconds. Root motion is taken from
// layer 0 only.
func (a *Animator) Update(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	for i := range a.layers {
		l := &a.layers[i]
		clip := l.clip
		if clip == nil {
			continue
		}
		if l.blend > 0 {
			l.blend = math.Max(0, l.blend-dt)
		}
		if l.done {
			continue
		}

		dur := clip.Duration()
		prev := l.time
		l.time += dt
		if !clip.Loop && l.time >= dur {
			l.time = dur
			l.done = true
		}

		if i == 0 && a.OnRootMotion != nil && dur > 0 && (clip.RootMotion.X != 0 || clip.RootMotion.Y != 0) {
			a.OnRootMotion(clip.RootMotion.Mult((l.time - prev) / dur))
		}

		target := int(l.time * float64(clip.FPS))
		seq := l.seq
		from := l.frame + 1
		l.frame = target
	frames:
		for f := from; f <= target; f++ {
			idx := f
			if clip.Loop {
				idx = f % clip.FrameCount
			} else if idx >= clip.FrameCount {
				break
			}
			for _, evt := range clip.Events.At(idx) {
				evt.Clip = clip.Name
				a.Emitter.Emit(i, idx, evt)
				// a handler restarted this layer
				if a.layers[i].seq != seq {
					break frames
				}
			}
		}
	}
}

func (a *Animator) reportOnce(key, format string, args ...any) {
	if a.reported[key] {
		return
	}
	a.reported[key] = true
	log.Printf(format, args...)
}
