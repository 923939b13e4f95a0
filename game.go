package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/debugview"
	"github.com/milk9111/executioner/effects"
	"github.com/milk9111/executioner/physics"
	"github.com/milk9111/executioner/player"
	"github.com/milk9111/executioner/prefabs"
	"github.com/milk9111/executioner/targeting"
	"github.com/milk9111/executioner/weapon"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	frameDT    = 1.0 / 60.0
	fixedDT    = 1.0 / 120.0
	maxSubStep = 8
	playerID   = 1
)

// Options are the command line settings.
type Options struct {
	Debug       bool
	WSAddr      string
	WeaponsPath string
	Watch       bool
}

type Game struct {
	opts        Options
	frames      int
	accumulator float64

	input *Input

	spec     *prefabs.PlayerSpec
	ground   []prefabs.SegmentSpec
	space    *physics.Space
	mover    *physics.Mover
	animator *component.Animator

	refs     *player.References
	brain    *player.Brain
	health   *component.Health
	stamina  *component.Energy
	ultimate *component.Energy

	sensor  *component.MeleeSensor
	weapons *weapon.Manager
	targets *targeting.AbilityTargetProvider
	dummies []*Dummy

	particles *effects.Particles
	sounds    *effects.Sounds
	menu      *WeaponMenu

	debug       *debugview.Broadcaster
	stopDebug   context.CancelFunc
	clipboardOK bool
	watcher     *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	anims, err := prefabs.LoadAnimationsSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	weapons, err := weapon.Load(opts.WeaponsPath)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:      opts,
		input:     NewInput(),
		spec:      spec,
		ground:    arena.Ground,
		particles: effects.NewParticles(nil),
		sounds:    effects.NewSounds(),
	}

	g.space = physics.NewSpace()
	for _, seg := range arena.Ground {
		g.space.AddGround(cp.Vector{X: seg.A.X, Y: seg.A.Y}, cp.Vector{X: seg.B.X, Y: seg.B.Y}, 2)
	}
	g.mover = physics.NewMover(g.space, physics.MoverConfig{
		Position:   cp.Vector{X: spec.Spawn.X, Y: spec.Spawn.Y},
		Width:      spec.Collider.Width,
		Height:     spec.Collider.Height,
		Mass:       spec.Mass,
		Friction:   spec.Collider.Friction,
		MoveSpeed:  spec.MoveSpeed,
		SlopeLimit: spec.SlopeLimit,
	})

	g.animator, err = component.NewAnimatorFromSpec(anims)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.health = component.NewHealth(spec.Health)
	g.stamina = newPool(spec.Stamina)
	g.ultimate = newPool(spec.Ultimate)

	combat := &component.CombatEventEmitter{}
	combat.Handlers = append(combat.Handlers, g.onCombatEvent)
	g.sensor = &component.MeleeSensor{
		OwnerID: playerID,
		Faction: component.FactionPlayer,
		Owner:   g.mover.Transform,
		Emitter: combat,
	}
	g.weapons, err = weapon.NewManager(weapons, g.sensor, g.animator)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.targets = targeting.NewAbilityTargetProvider(spec.LockRange, spec.TargetDistance)
	for i, ds := range arena.Dummies {
		d := NewDummy(playerID+1+i, ds)
		g.dummies = append(g.dummies, d)
		g.targets.Add(d)
	}

	g.menu = NewWeaponMenu(g.weapons)
	g.refs = player.NewReferences()

	forward := player.NewEventForward(g.refs, g.animator, g.mover)
	g.animator.Emitter.Handlers = append(g.animator.Emitter.Handlers, forward.HandleAnimationEvent, g.onClipEvent)
	g.animator.OnRootMotion = forward.OnAnimatorMove
	g.mover.WarpWindow = func() bool { return g.refs.InAnimationWarpFrames }

	collab := player.Collaborators{
		Animator:  g.animator,
		Mover:     g.mover,
		Warp:      g.mover.Warp(),
		Targets:   g.targets,
		Weapons:   g.weapons,
		Menu:      g.menu,
		Health:    g.health,
		Stamina:   g.stamina,
		Ultimate:  g.ultimate,
		Particles: g.particles,
		Sounds:    g.sounds,
	}
	if opts.Debug {
		g.debug = debugview.NewBroadcaster(64)
		collab.Debug = g.debug
		if opts.WSAddr != "" {
			ctx, cancel := context.WithCancel(context.Background())
			g.stopDebug = cancel
			go func() {
				if err := debugview.Serve(ctx, opts.WSAddr, g.debug); err != nil {
					log.Printf("game: debug stream: %v", err)
				}
			}()
		}
		if err := clipboard.Init(); err != nil {
			log.Printf("game: clipboard unavailable: %v", err)
		} else {
			g.clipboardOK = true
		}
	}

	g.brain, err = player.NewBrain(g.refs, collab, playerConfig(spec))
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if opts.Watch {
		g.startWatcher()
	}
	return g, nil
}

func newPool(spec prefabs.PoolSpec) *component.Energy {
	e := component.NewEnergy(spec.Max, spec.Start)
	e.RegenPerSecond = spec.Regen
	e.RegenDelay = spec.RegenDelay
	return e
}

func playerConfig(spec *prefabs.PlayerSpec) player.Config {
	cfg := player.DefaultConfig()
	if spec.DodgeStaminaCost > 0 {
		cfg.DodgeStaminaCost = spec.DodgeStaminaCost
	}
	if spec.WarpRootMotionMultiplier > 0 {
		cfg.WarpRootMotionMultiplier = spec.WarpRootMotionMultiplier
	}
	if spec.EquipTransitionBlend > 0 {
		cfg.EquipTransitionBlend = spec.EquipTransitionBlend
	}
	cfg.VFXOffset = cp.Vector{X: spec.VFXOffset.X, Y: spec.VFXOffset.Y}
	return cfg
}

func (g *Game) startWatcher() {
	dirs := []string{"prefabs", filepath.Join("prefabs", "scripts")}
	if g.opts.WeaponsPath != "" {
		dirs = append(dirs, filepath.Dir(g.opts.WeaponsPath))
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: watch disabled: %v", err)
		return
	}
	g.watcher = w
}

// pollWatcher reloads weapon data after a change on disk. The brain reads
// weapon costs fresh on every check, so a reload applies immediately.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.IsWeaponsFile(path) || (g.opts.WeaponsPath != "" && filepath.Base(path) == filepath.Base(g.opts.WeaponsPath)) {
				reload = true
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watch: %v", err)
			}
		default:
			if reload {
				g.reloadWeapons()
			}
			return
		}
	}
}

func (g *Game) reloadWeapons() {
	weapons, err := weapon.Load(g.opts.WeaponsPath)
	if err != nil {
		log.Printf("game: reload weapons: %v", err)
		return
	}
	if err := g.weapons.Replace(weapons); err != nil {
		log.Printf("game: reload weapons: %v", err)
		return
	}
	g.menu.Rebuild()
	log.Printf("game: reloaded %d weapons", len(weapons))
}

// onClipEvent spawns the particles named directly on clip events, such as
// landing dust. Weapon effects go through the brain's hooks instead.
func (g *Game) onClipEvent(layer, frame int, evt component.AnimationEvent) {
	if evt.Type != component.AnimationEventSpawnParticle || evt.Payload == "" {
		return
	}
	t := g.mover.Transform()
	t.Position.Y += g.spec.Collider.Height / 2
	g.particles.SpawnParticle(evt.Payload, t)
}

func (g *Game) onCombatEvent(evt component.CombatEvent) {
	if evt.Type != component.EventDamageApplied {
		return
	}
	g.particles.SpawnParticle("sparks", common.Transform{Position: evt.Position, Rotation: g.mover.Transform().Rotation})
	g.sounds.PlayOneShot("impact")
}

func (g *Game) hitPlayer(amount float64) {
	if g.brain.Terminated() {
		return
	}
	if g.health.ApplyDamage(amount, component.CombatEvent{Type: component.EventHit, TargetID: playerID, Damage: amount}) {
		g.health.StartIFrames(g.spec.HitIFrames)
		g.sounds.PlayOneShot("slash")
	}
}

func (g *Game) hurtboxes() []component.Hurtbox {
	out := make([]component.Hurtbox, 0, len(g.dummies))
	for _, d := range g.dummies {
		out = append(out, d.Hurtbox())
	}
	return out
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	g.input.Update()
	if g.input.Respawn && g.brain.Terminated() {
		if err := g.respawn(); err != nil {
			return err
		}
	}
	if g.input.CopyHistory {
		g.copyHistory()
	}

	g.input.Apply(g.refs)
	g.menu.Update(g.input)

	g.animator.Update(frameDT)
	g.brain.Tick(frameDT)

	g.accumulator += frameDT
	for steps := 0; g.accumulator >= fixedDT && steps < maxSubStep; steps++ {
		g.space.Step(fixedDT)
		g.brain.FixedTick(fixedDT)
		g.sensor.Resolve(g.hurtboxes())
		g.accumulator -= fixedDT
	}

	g.health.Tick(frameDT)
	g.stamina.Regenerate(frameDT)
	pos := g.mover.Position()
	for _, d := range g.dummies {
		d.Update(frameDT, pos, g.hitPlayer)
	}
	g.particles.Update(frameDT)
	return nil
}

// respawn rebuilds the player after death. The brain is single-use, so a
// fresh one is wired against the same collaborators.
func (g *Game) respawn() error {
	g.Close()
	next, err := NewGame(g.opts)
	if err != nil {
		return err
	}
	*g = *next
	return nil
}

func (g *Game) copyHistory() {
	if g.debug == nil || !g.clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(g.debug.History(), "\n")))
	log.Printf("game: copied state history")
}

func (g *Game) Close() {
	if g.stopDebug != nil {
		g.stopDebug()
		g.stopDebug = nil
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for _, seg := range g.ground {
		vector.StrokeLine(screen, float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y), 3, colornames.Lightgrey, true)
	}

	for _, d := range g.dummies {
		if !d.IsAlive() {
			continue
		}
		c := colornames.Sienna
		if d.flash > 0 {
			c = colornames.White
		}
		fillBB(screen, d.Bounds(), c)
	}

	g.drawPlayer(screen)
	g.particles.Draw(screen, 0, 0)

	if g.opts.Debug && g.sensor.Enabled() {
		bb := g.sensor.Bounds()
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, color.RGBA{R: 255, A: 200}, false)
	}

	drawBar(screen, 20, 40, g.health.Current/g.health.Max, colornames.Crimson)
	drawBar(screen, 20, 56, g.stamina.Fraction(), colornames.Limegreen)
	drawBar(screen, 20, 72, g.ultimate.Fraction(), colornames.Gold)

	g.menu.Draw(screen)

	w := g.weapons.SelectedWeapon()
	status := fmt.Sprintf("FPS: %.2f  state: %s  weapon: %s  combo: %d", ebiten.ActualFPS(), g.brain.State(), w.Name, g.weapons.AttackIndex())
	if g.brain.Terminated() {
		status += "  [R] respawn"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	pos := g.mover.Position()
	hw, hh := g.spec.Collider.Width/2, g.spec.Collider.Height/2
	c := colornames.Steelblue
	switch {
	case g.brain.Terminated():
		c = colornames.Dimgray
	case g.mover.IsKinematic():
		c = colornames.Orchid
	case g.health.IFrames > 0:
		c = colornames.Lightpink
	}
	fillBB(screen, cp.BB{L: pos.X - hw, B: pos.Y - hh, R: pos.X + hw, T: pos.Y + hh}, c)

	// facing and weapon marker
	t := g.mover.Transform()
	tip := t.TransformPoint(cp.Vector{X: hw + 10})
	wc := colornames.Silver
	if !g.brain.WeaponInHand() {
		wc = colornames.Darkgray
	}
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), 3, wc, true)

	if locked := g.targets.Locked(); locked != nil && g.opts.Debug {
		p := locked.Position()
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), 36, 1, colornames.Gold, true)
	}
}

func fillBB(screen *ebiten.Image, bb cp.BB, c color.Color) {
	vector.FillRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), c, false)
}

func drawBar(screen *ebiten.Image, x, y float32, fraction float64, c color.Color) {
	const width, height = 200, 10
	vector.FillRect(screen, x, y, width, height, color.RGBA{A: 160}, false)
	vector.FillRect(screen, x, y, width*float32(common.Clamp01(fraction)), height, c, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
