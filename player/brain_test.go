package player

import (
	"errors"
	"slices"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/weapon"
)

const frame = 1.0 / 60.0

type harness struct {
	refs      *References
	anim      *fakeAnimator
	mover     *fakeMover
	warp      *fakeWarp
	targets   *fakeTargets
	weapons   *fakeWeapons
	menu      *fakeMenu
	health    *component.Health
	stamina   *component.Energy
	ultimate  *component.Energy
	particles *fakeParticles
	sounds    *fakeSounds
	debug     *fakeDebug
	brain     *Brain
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		refs:      NewReferences(),
		anim:      &fakeAnimator{durations: map[string]float64{component.ParamEquipTransition: 0.5}},
		mover:     &fakeMover{grounded: true},
		warp:      &fakeWarp{possible: true},
		targets:   &fakeTargets{target: common.Transform{Position: cp.Vector{X: 60}}, ok: true},
		weapons:   &fakeWeapons{weapons: []weapon.Weapon{testWeapon("sword"), testWeapon("axe")}, queued: -1, sensor: &fakeSensor{}},
		menu:      &fakeMenu{},
		health:    component.NewHealth(100),
		stamina:   component.NewEnergy(100, 100),
		ultimate:  component.NewEnergy(100, 0),
		particles: &fakeParticles{},
		sounds:    &fakeSounds{},
		debug:     &fakeDebug{},
	}
	b, err := NewBrain(h.refs, h.collaborators(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	h.brain = b
	return h
}

func (h *harness) collaborators() Collaborators {
	return Collaborators{
		Animator:  h.anim,
		Mover:     h.mover,
		Warp:      h.warp,
		Targets:   h.targets,
		Weapons:   h.weapons,
		Menu:      h.menu,
		Health:    h.health,
		Stamina:   h.stamina,
		Ultimate:  h.ultimate,
		Particles: h.particles,
		Sounds:    h.sounds,
		Debug:     h.debug,
	}
}

// toLocomotion finishes the initial equip.
func (h *harness) toLocomotion(t *testing.T) {
	t.Helper()
	h.refs.MarkEnded(SegmentEquip)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
}

func (h *harness) expect(t *testing.T, want string) {
	t.Helper()
	if got := h.brain.State(); got != want {
		t.Fatalf("state = %q, want %q (history %v)", got, want, h.debug.states)
	}
}

func (h *harness) toUltimate(t *testing.T) {
	t.Helper()
	h.toLocomotion(t)
	h.ultimate.Current = 100
	h.refs.UltimatePressed = true
	h.brain.Tick(frame)
	h.refs.UltimatePressed = false
	h.expect(t, StateAttackUltimate)
}

func TestNewBrainMissingCollaborator(t *testing.T) {
	tests := []struct {
		name  string
		strip func(c *Collaborators)
	}{
		{"animator", func(c *Collaborators) { c.Animator = nil }},
		{"mover", func(c *Collaborators) { c.Mover = nil }},
		{"warp", func(c *Collaborators) { c.Warp = nil }},
		{"targets", func(c *Collaborators) { c.Targets = nil }},
		{"weapons", func(c *Collaborators) { c.Weapons = nil }},
		{"menu", func(c *Collaborators) { c.Menu = nil }},
		{"health", func(c *Collaborators) { c.Health = nil }},
		{"stamina", func(c *Collaborators) { c.Stamina = nil }},
		{"ultimate", func(c *Collaborators) { c.Ultimate = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			c := h.collaborators()
			tt.strip(&c)
			if _, err := NewBrain(NewReferences(), c, DefaultConfig()); !errors.Is(err, ErrMissingCollaborator) {
				t.Fatalf("err = %v, want ErrMissingCollaborator", err)
			}
		})
	}

	t.Run("references", func(t *testing.T) {
		h := newHarness(t)
		if _, err := NewBrain(nil, h.collaborators(), DefaultConfig()); !errors.Is(err, ErrMissingCollaborator) {
			t.Fatalf("err = %v, want ErrMissingCollaborator", err)
		}
	})
}

func TestOptionalCollaborators(t *testing.T) {
	h := newHarness(t)
	c := h.collaborators()
	c.Particles, c.Sounds, c.Debug = nil, nil, nil
	refs := NewReferences()
	b, err := NewBrain(refs, c, DefaultConfig())
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	refs.MarkEnded(SegmentEquip)
	b.Tick(frame)
	if b.State() != StateGroundLocomotion {
		t.Fatalf("state = %q", b.State())
	}
}

func TestBrainStartsInWeaponEquip(t *testing.T) {
	h := newHarness(t)
	h.expect(t, StateWeaponEquip)
	if !slices.Equal(h.debug.states, []string{StateWeaponEquip}) {
		t.Fatalf("debug = %v", h.debug.states)
	}
	if h.weapons.equips != 1 {
		t.Fatalf("equips = %d, want 1", h.weapons.equips)
	}
	if h.refs.GrabWeapon.Len() != 1 || h.refs.ReleaseHolster.Len() != 1 {
		t.Fatal("equip did not subscribe its hooks")
	}

	h.toLocomotion(t)
	if h.refs.GrabWeapon.Len() != 0 || h.refs.ReleaseHolster.Len() != 0 {
		t.Fatal("equip hooks leaked past exit")
	}
	if h.refs.Ended(SegmentEquip) {
		t.Fatal("equip flag not consumed")
	}
}

func TestAttackRequiresStamina(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.stamina.Current = 10

	h.refs.AttackPressed = true
	for range 5 {
		h.brain.Tick(frame)
	}
	h.expect(t, StateGroundLocomotion)
	if h.stamina.Current != 10 {
		t.Fatalf("stamina = %v, want 10", h.stamina.Current)
	}
	if slices.Contains(h.anim.played, component.ParamLightAttack) {
		t.Fatal("light attack animation played")
	}
}

func TestAttackBlockedDuringCrossfade(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.anim.inTransition = true
	h.refs.AttackPressed = true
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)

	h.anim.inTransition = false
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)
}

func TestDamageBeatsLocomotionTransitions(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)

	// every locomotion exit is satisfied at once
	h.refs.AttackPressed = true
	h.refs.DodgePressed = true
	h.refs.MenuPressed = true
	h.mover.grounded = false
	h.health.ApplyDamage(10, component.CombatEvent{})

	h.brain.Tick(frame)
	h.expect(t, StateGetHit)
	if h.health.HasTakenDamage() {
		t.Fatal("damage not acknowledged on enter")
	}
	if h.stamina.Current != 100 {
		t.Fatalf("stamina = %v, nothing else should have run", h.stamina.Current)
	}

	h.refs.ClearInput()
	h.mover.grounded = true
	h.brain.Tick(frame)
	h.expect(t, StateGetHit)

	h.refs.MarkEnded(SegmentGetHit)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
}

func TestGetHitReentersOnNewDamage(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.health.ApplyDamage(10, component.CombatEvent{})
	h.brain.Tick(frame)
	h.expect(t, StateGetHit)

	before := len(h.debug.states)
	h.health.ApplyDamage(10, component.CombatEvent{})
	h.brain.Tick(frame)
	h.expect(t, StateGetHit)
	if len(h.debug.states) != before+1 {
		t.Fatalf("no re-entry recorded: %v", h.debug.states)
	}
}

func TestLightAttackSelfTransition(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)

	h.refs.AttackPressed = true
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)
	if h.stamina.Current != 85 {
		t.Fatalf("stamina after first swing = %v, want 85", h.stamina.Current)
	}
	if h.weapons.sensor.inits != 1 || h.weapons.sensor.damage != 10 {
		t.Fatalf("sensor = %+v", *h.weapons.sensor)
	}

	h.refs.MarkEnded(SegmentAttack)
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)
	if h.stamina.Current != 70 {
		t.Fatalf("stamina after second swing = %v, want 70", h.stamina.Current)
	}
	if h.refs.Ended(SegmentAttack) {
		t.Fatal("attack flag survived re-entry")
	}
	if h.weapons.attackIndex != 1 {
		t.Fatalf("attack index = %d, want 1", h.weapons.attackIndex)
	}
	if n := countOf(h.anim.played, component.ParamLightAttack); n != 2 {
		t.Fatalf("light attack played %d times, want 2", n)
	}
	if h.refs.EnableHitDetection.Len() != 1 || h.refs.SpawnParticles.Len() != 1 {
		t.Fatal("subscriptions accumulated across re-entry")
	}

	// held button without a finished segment does not restart
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)
	if h.stamina.Current != 70 {
		t.Fatalf("stamina = %v, want 70", h.stamina.Current)
	}

	h.refs.AttackPressed = false
	h.refs.MarkEnded(SegmentAttack)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
}

func TestComboReadsCurrentWeaponCosts(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.stamina.Current = 35

	h.refs.AttackPressed = true
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)

	h.refs.AttackPressed = false
	h.refs.SecondAttackPressed = true
	h.refs.MarkEnded(SegmentAttack)
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)

	// a reload cheapens the heavy attack
	h.weapons.weapons[0].Heavy.Attributes.Stamina = 10
	h.brain.Tick(frame)
	h.expect(t, StateHeavyAttack)
	if h.stamina.Current != 10 {
		t.Fatalf("stamina = %v, want 10", h.stamina.Current)
	}
	if h.weapons.sensor.damage != 25 {
		t.Fatalf("heavy damage = %v, want 25", h.weapons.sensor.damage)
	}
}

func TestHitWindowFollowsHooks(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.refs.AttackPressed = true
	h.brain.Tick(frame)
	h.expect(t, StateLightAttack)

	s := h.weapons.sensor
	if !s.gainsUltimate || s.gain != 5 {
		t.Fatalf("light attack should grant ultimate: %+v", *s)
	}
	h.refs.EnableHitDetection.Invoke()
	if !s.enabled {
		t.Fatal("window not opened")
	}
	h.refs.DisableHitDetection.Invoke()
	if s.enabled {
		t.Fatal("window not closed")
	}

	h.refs.EnableHitDetection.Invoke()
	h.refs.AttackPressed = false
	h.refs.MarkEnded(SegmentAttack)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
	if s.enabled {
		t.Fatal("exit left the window open")
	}
}

func TestAttackSpawnsItsOwnEffect(t *testing.T) {
	tests := []struct {
		name    string
		press   func(h *harness)
		state   string
		spawned []string
	}{
		{"light", func(h *harness) { h.refs.AttackPressed = true }, StateLightAttack, []string{"slash"}},
		{"heavy without effect", func(h *harness) { h.refs.SecondAttackPressed = true }, StateHeavyAttack, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.toLocomotion(t)
			tt.press(h)
			h.brain.Tick(frame)
			h.expect(t, tt.state)

			h.refs.SpawnParticles.Invoke()
			var got []string
			for _, p := range h.particles.spawned {
				got = append(got, p.name)
			}
			if !slices.Equal(got, tt.spawned) {
				t.Fatalf("spawned %v, want %v", got, tt.spawned)
			}
		})
	}
}

func TestUltimateGating(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		want  string
	}{
		{"ready", func(h *harness) {}, StateAttackUltimate},
		{"not enough charge", func(h *harness) { h.ultimate.Current = 40 }, StateGroundLocomotion},
		{"crossfading", func(h *harness) { h.anim.inTransition = true }, StateGroundLocomotion},
		{"no target", func(h *harness) { h.targets.ok = false }, StateGroundLocomotion},
		{"out of reach", func(h *harness) { h.warp.possible = false }, StateGroundLocomotion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.toLocomotion(t)
			h.ultimate.Current = 100
			tt.setup(h)
			h.refs.UltimatePressed = true
			h.brain.Tick(frame)
			h.expect(t, tt.want)
		})
	}
}

func TestUltimateEnter(t *testing.T) {
	h := newHarness(t)
	h.toUltimate(t)

	if h.ultimate.Current != 50 || h.stamina.Current != 90 {
		t.Fatalf("ultimate = %v stamina = %v, want 50 and 90", h.ultimate.Current, h.stamina.Current)
	}
	if !h.mover.kinematic {
		t.Fatal("mover not kinematic")
	}
	if !h.warp.armed || h.warp.target.Position.X != 60 {
		t.Fatalf("warp = %+v", *h.warp)
	}
	if h.weapons.finisher != "sword_execution" {
		t.Fatalf("finisher clip = %q", h.weapons.finisher)
	}
	if got := h.anim.played[len(h.anim.played)-1]; got != component.ParamAttackFinisher {
		t.Fatalf("last played = %q", got)
	}
	if h.weapons.sensor.damage != 80 || !h.weapons.sensor.gainsUltimate {
		t.Fatalf("sensor = %+v", *h.weapons.sensor)
	}

	h.refs.SpawnParticles.Invoke()
	if len(h.particles.spawned) != 1 || h.particles.spawned[0].name != "arc" {
		t.Fatalf("particles = %+v", h.particles.spawned)
	}
	if !slices.Equal(h.sounds.played, []string{"swoosh"}) {
		t.Fatalf("sounds = %v", h.sounds.played)
	}

	h.refs.MarkEnded(SegmentExecution)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
	if h.mover.kinematic || h.warp.armed {
		t.Fatal("finisher exit did not restore physics")
	}
}

func TestUltimateCheckLocksOnlyOnEnter(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.ultimate.Current = 100
	h.warp.possible = false
	h.refs.UltimatePressed = true
	for range 5 {
		h.brain.Tick(frame)
	}
	h.expect(t, StateGroundLocomotion)
	if h.targets.peeks == 0 {
		t.Fatal("feasibility was never checked")
	}
	if h.targets.locks != 0 {
		t.Fatalf("rejected checks locked a target %d times", h.targets.locks)
	}

	h.warp.possible = true
	h.brain.Tick(frame)
	h.expect(t, StateAttackUltimate)
	if h.targets.locks != 1 {
		t.Fatalf("locks = %d, want 1", h.targets.locks)
	}
}

func TestUltimateWithoutWarpTarget(t *testing.T) {
	h := newHarness(t)
	h.targets.lost = true
	h.toUltimate(t)

	if h.ultimate.Current != 50 || h.stamina.Current != 90 {
		t.Fatalf("ultimate = %v stamina = %v, want 50 and 90", h.ultimate.Current, h.stamina.Current)
	}
	if !h.mover.kinematic {
		t.Fatal("mover not kinematic")
	}
	if h.warp.armed {
		t.Fatal("warp armed without a target")
	}
	if got := h.anim.played[len(h.anim.played)-1]; got != component.ParamAttackFinisher {
		t.Fatalf("last played = %q", got)
	}
	for name, hook := range map[string]*Hook{
		"spawn":   &h.refs.SpawnParticles,
		"enable":  &h.refs.EnableHitDetection,
		"disable": &h.refs.DisableHitDetection,
	} {
		if hook.Len() == 0 {
			t.Errorf("%s hook not subscribed", name)
		}
	}

	h.refs.EnableHitDetection.Invoke()
	h.refs.MarkEnded(SegmentExecution)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
	if h.mover.kinematic || h.weapons.sensor.enabled {
		t.Fatal("exit did not clean up")
	}
	if h.warp.nulls != 1 || h.refs.SpawnParticles.Len() != 0 {
		t.Fatalf("warp nulls = %d, spawn handlers = %d", h.warp.nulls, h.refs.SpawnParticles.Len())
	}
}

func TestUltimateWithoutFinisher(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.weapons.noFinisher = true
	h.ultimate.Current = 100
	h.refs.UltimatePressed = true
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)

	// entered anyway, as a collaborator changing under the state would
	s := newAttackUltimateState(h.brain.ctx)
	s.OnEnter()
	if !h.refs.Ended(SegmentExecution) {
		t.Fatal("execution should be over when there is no finisher")
	}
	if h.mover.kinematic || h.refs.SpawnParticles.Len() != 0 {
		t.Fatal("activation ran without a finisher")
	}
	s.OnExit()
}

func TestUltimateInterruptedCleansUp(t *testing.T) {
	tests := []struct {
		name      string
		progress  func(h *harness)
		interrupt func(h *harness)
		want      string
	}{
		{
			name:      "die before hit window",
			progress:  func(h *harness) {},
			interrupt: func(h *harness) { h.health.ApplyDamage(1000, component.CombatEvent{}) },
			want:      StateDie,
		},
		{
			name: "die inside hit and warp window",
			progress: func(h *harness) {
				h.refs.InAnimationWarpFrames = true
				h.refs.EnableHitDetection.Invoke()
			},
			interrupt: func(h *harness) { h.health.ApplyDamage(1000, component.CombatEvent{}) },
			want:      StateDie,
		},
		{
			name: "hit inside hit window",
			progress: func(h *harness) {
				h.refs.EnableHitDetection.Invoke()
			},
			interrupt: func(h *harness) { h.health.ApplyDamage(5, component.CombatEvent{}) },
			want:      StateGetHit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.toUltimate(t)
			tt.progress(h)
			tt.interrupt(h)
			h.brain.Tick(frame)
			h.expect(t, tt.want)

			if h.weapons.sensor.enabled {
				t.Error("sensor still enabled")
			}
			if h.mover.kinematic {
				t.Error("mover still kinematic")
			}
			if h.warp.armed || h.warp.nulls != 1 {
				t.Errorf("warp = %+v", *h.warp)
			}
			if h.refs.InAnimationWarpFrames {
				t.Error("warp frames flag not cleared")
			}
			for name, hook := range map[string]*Hook{
				"spawn":   &h.refs.SpawnParticles,
				"enable":  &h.refs.EnableHitDetection,
				"disable": &h.refs.DisableHitDetection,
			} {
				if hook.Len() != 0 {
					t.Errorf("%s hook has %d handlers", name, hook.Len())
				}
			}

			h.refs.SpawnParticles.Invoke()
			if len(h.particles.spawned) != 0 || len(h.sounds.played) != 0 {
				t.Error("released handler still fired")
			}
		})
	}
}

func TestDieIsTerminal(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.health.ApplyDamage(1000, component.CombatEvent{})
	h.brain.Tick(frame)
	h.expect(t, StateDie)
	if !h.brain.Terminated() {
		t.Fatal("machine still running")
	}
	if last := h.debug.states[len(h.debug.states)-1]; last != StateDie {
		t.Fatalf("debug sink last saw %q, want %q", last, StateDie)
	}

	played := len(h.anim.played)
	moves := len(h.mover.moves)
	history := len(h.debug.states)
	h.refs.AttackPressed = true
	h.refs.MenuPressed = true
	h.refs.MoveAxis = 1
	h.health.ApplyDamage(1, component.CombatEvent{})
	for range 10 {
		h.brain.Tick(frame)
		h.brain.FixedTick(frame)
	}
	h.expect(t, StateDie)
	if len(h.anim.played) != played || len(h.mover.moves) != moves {
		t.Fatal("dead brain kept acting")
	}
	if len(h.debug.states) != history {
		t.Fatalf("debug sink saw %v after death", h.debug.states[history:])
	}
	if h.menu.opens != 0 {
		t.Fatal("menu opened after death")
	}
}

func TestWeaponSwapFlow(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)

	h.refs.MenuPressed = true
	h.brain.Tick(frame)
	h.expect(t, StateWeaponMenu)
	if !h.menu.open {
		t.Fatal("menu not opened")
	}

	h.menu.index = 1
	h.refs.MenuPressed = false
	h.brain.Tick(frame)
	h.expect(t, StateWeaponUnEquip)
	if h.menu.open || h.weapons.queued != 1 {
		t.Fatalf("menu open = %v queued = %d", h.menu.open, h.weapons.queued)
	}

	h.refs.GrabHolster.Invoke()
	h.refs.ReleaseWeapon.Invoke()
	if h.brain.WeaponInHand() {
		t.Fatal("weapon still in hand after release")
	}

	const dt = 0.125
	h.refs.MarkEnded(SegmentUnEquip)
	h.brain.Tick(dt)
	h.expect(t, StateIdleEquipTransition)

	// segment flags do not shorten the wait
	h.refs.MarkEnded(SegmentEquip)
	h.refs.MarkEnded(SegmentUnEquip)
	for range 3 {
		h.brain.Tick(dt)
		h.expect(t, StateIdleEquipTransition)
	}

	h.brain.Tick(dt)
	h.expect(t, StateWeaponEquip)
	if h.weapons.selected != 1 {
		t.Fatalf("selected = %d, want 1", h.weapons.selected)
	}

	h.refs.GrabWeapon.Invoke()
	if !h.brain.WeaponInHand() {
		t.Fatal("weapon not drawn")
	}
	h.refs.MarkEnded(SegmentEquip)
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
}

func TestWeaponMenuKeepsWeapon(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.refs.MenuPressed = true
	h.brain.Tick(frame)
	h.refs.MenuPressed = false
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
	if h.weapons.queued != -1 {
		t.Fatalf("queued = %d", h.weapons.queued)
	}
}

func TestLocomotionTraversal(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)

	h.refs.MoveAxis = -1
	h.brain.FixedTick(frame)
	if !slices.Equal(h.mover.moves, []float64{-1}) {
		t.Fatalf("moves = %v", h.mover.moves)
	}

	steps := []struct {
		name  string
		apply func()
		want  string
	}{
		{"dodge", func() { h.refs.DodgePressed = true }, StateDodging},
		{"airborne mid dodge", func() { h.refs.DodgePressed = false; h.mover.grounded = false }, StateDodging},
		{"dodge ends in air", func() { h.refs.MarkEnded(SegmentDodge) }, StateFalling},
		{"steep ground", func() { h.mover.grounded = true; h.mover.steep = true }, StateSliding},
		{"flat ground", func() { h.mover.steep = false }, StateLanding},
		{"landing holds", func() {}, StateLanding},
		{"land ends", func() { h.refs.MarkEnded(SegmentLand) }, StateGroundLocomotion},
	}
	for _, s := range steps {
		s.apply()
		h.brain.Tick(frame)
		if got := h.brain.State(); got != s.want {
			t.Fatalf("%s: state = %q, want %q", s.name, got, s.want)
		}
	}
	if h.stamina.Current != 80 {
		t.Fatalf("stamina = %v, want 80", h.stamina.Current)
	}
}

func TestDodgeRequiresStamina(t *testing.T) {
	h := newHarness(t)
	h.toLocomotion(t)
	h.stamina.Current = 19
	h.refs.DodgePressed = true
	h.brain.Tick(frame)
	h.expect(t, StateGroundLocomotion)
}

func TestObserveReportsSwitches(t *testing.T) {
	h := newHarness(t)
	var got []string
	cancel := h.brain.Observe(func(name string) { got = append(got, name) })
	h.toLocomotion(t)
	cancel()
	h.refs.MenuPressed = true
	h.brain.Tick(frame)
	if !slices.Equal(got, []string{StateGroundLocomotion}) {
		t.Fatalf("observed %v", got)
	}
}

func TestObserveReportsDeath(t *testing.T) {
	h := newHarness(t)
	var got []string
	h.brain.Observe(func(name string) { got = append(got, name) })
	h.toLocomotion(t)
	h.health.ApplyDamage(1000, component.CombatEvent{})
	h.brain.Tick(frame)
	h.brain.Tick(frame)
	if !slices.Equal(got, []string{StateGroundLocomotion, StateDie}) {
		t.Fatalf("observed %v", got)
	}
}

func countOf(s []string, v string) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}
