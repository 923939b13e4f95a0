package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/executioner/player"
)

const stickDeadzone = 0.2

// Input samples keyboard and the first gamepad once per frame. Attack
// buttons report held state so a held button keeps chaining the combo.
type Input struct {
	MoveX        float64
	Dodge        bool
	Menu         bool
	Ultimate     bool
	Attack       bool
	SecondAttack bool

	MenuLeft    bool
	MenuRight   bool
	CopyHistory bool
	Respawn     bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	i.Dodge = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	i.Menu = ebiten.IsKeyPressed(ebiten.KeyTab)
	i.Ultimate = ebiten.IsKeyPressed(ebiten.KeyF)
	i.Attack = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.SecondAttack = ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	i.MenuLeft = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	i.MenuRight = inpututil.IsKeyJustPressed(ebiten.KeyE)
	i.CopyHistory = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	i.Respawn = inpututil.IsKeyJustPressed(ebiten.KeyR)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		i.Dodge = i.Dodge || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		i.Menu = i.Menu || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		i.Ultimate = i.Ultimate || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		i.Attack = i.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		i.SecondAttack = i.SecondAttack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop)
		i.MenuLeft = i.MenuLeft || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		i.MenuRight = i.MenuRight || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight)
	}

	i.MoveX = moveX
}

// Apply copies the frame's input onto the brain's blackboard.
func (i *Input) Apply(refs *player.References) {
	refs.MoveAxis = i.MoveX
	refs.DodgePressed = i.Dodge
	refs.MenuPressed = i.Menu
	refs.UltimatePressed = i.Ultimate
	refs.AttackPressed = i.Attack
	refs.SecondAttackPressed = i.SecondAttack
}
