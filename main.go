package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/executioner/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (state stream, hit boxes, history copy with F2)")
	wsAddr := flag.String("ws", "", "serve brain state switches over websocket at this address when -debug is set (e.g. :7777)")
	weaponsPath := flag.String("weapons", "", "weapons yaml to load instead of prefabs/weapons.yaml")
	watch := flag.Bool("watch", false, "reload weapon data and damage scripts when they change on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("executioner")

	game, err := NewGame(Options{
		Debug:       *debug,
		WSAddr:      *wsAddr,
		WeaponsPath: *weaponsPath,
		Watch:       *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
