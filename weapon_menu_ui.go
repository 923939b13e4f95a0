package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/weapon"
	"golang.org/x/image/font/basicfont"
)

// WeaponMenu is the weapon picker shown while the menu button is held. The
// brain reads SelectedIndex when the menu closes.
type WeaponMenu struct {
	weapons *weapon.Manager

	ui      *ebitenui.UI
	current *widget.Text
	detail  *widget.Text

	index int
	open  bool
}

func NewWeaponMenu(weapons *weapon.Manager) *WeaponMenu {
	m := &WeaponMenu{weapons: weapons, index: weapons.SelectedIndex()}
	m.Rebuild()
	return m
}

// Rebuild recreates the buttons from the manager's weapon list.
func (m *WeaponMenu) Rebuild() {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x44, B: 0x22, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Weapons", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	m.current = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)
	m.detail = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(center),
	)
	for i, name := range m.weapons.Names() {
		idx := i
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(name, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.Select(idx)
			}),
		))
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(row)
	panel.AddChild(m.current)
	panel.AddChild(m.detail)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	m.Select(m.index)
}

func (m *WeaponMenu) SelectedIndex() int { return m.index }

// SetOpen shows or hides the menu. Opening starts from the equipped weapon.
func (m *WeaponMenu) SetOpen(open bool) {
	if open && !m.open {
		m.Select(m.weapons.SelectedIndex())
	}
	m.open = open
}

func (m *WeaponMenu) IsOpen() bool { return m.open }

// Select highlights weapon i, wrapping around the list.
func (m *WeaponMenu) Select(i int) {
	weapons := m.weapons.Weapons()
	if len(weapons) == 0 {
		return
	}
	i %= len(weapons)
	if i < 0 {
		i += len(weapons)
	}
	m.index = i
	w := weapons[i]
	m.current.Label = fmt.Sprintf("> %s <", w.Name)
	m.detail.Label = fmt.Sprintf("%s  light %.0f  heavy %.0f  finisher %.0f ult",
		w.Description, w.Light.Attributes.Stamina, w.Heavy.Attributes.Stamina, w.Finisher.Attributes.Ultimate)
}

func (m *WeaponMenu) Update(in *Input) {
	if !m.open {
		return
	}
	if in.MenuLeft {
		m.Select(m.index - 1)
	}
	if in.MenuRight {
		m.Select(m.index + 1)
	}
	m.ui.Update()
}

func (m *WeaponMenu) Draw(screen *ebiten.Image) {
	if !m.open {
		return
	}
	m.ui.Draw(screen)
}
