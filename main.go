package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/brackwater/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable the debug overlay")
	levelName := flag.String("level", "level_1", "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "watch prefabs/ and re-apply tuning on edit")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("brackwater")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
