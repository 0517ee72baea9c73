package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"

	"github.com/G9Pedro/colony-game-sub001/camera"
	"github.com/G9Pedro/colony-game-sub001/interaction"
	"github.com/G9Pedro/colony-game-sub001/levels"
	"github.com/G9Pedro/colony-game-sub001/prefabs"
	"github.com/G9Pedro/colony-game-sub001/system"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var gridColor = color.NRGBA{R: 0x3c, G: 0x4a, B: 0x35, A: 0xff}

type Game struct {
	frames int
	debug  bool

	cam      *camera.Camera
	viewport *interaction.ScreenViewport
	session  *interaction.Session
	input    *interaction.EbitenInput
	colony   *levels.Colony
	tour     *system.Tour
	tourSrc  string
	watcher  *prefabs.Watcher
	stats    *ebitenui.UI
	statsBox *StatsPanel

	clipboardOK bool

	hover      camera.Tile
	hoverOK    bool
	selected   int
	selectedOK bool
	lastClick  camera.Tile
}

func NewGame(colonyName string, debug, tour bool) (*Game, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	colony, err := levels.LoadColonyFromFS(colonyName)
	if err != nil {
		return nil, fmt.Errorf("game: colony %s: %w", colonyName, err)
	}

	cfg := spec.Config()
	if colony.Radius > 0 {
		cfg.WorldRadius = colony.Radius
	}
	cam := camera.New(cfg)
	viewport := &interaction.ScreenViewport{W: baseWidth, H: baseHeight}
	cam.SetViewport(viewport.W, viewport.H)

	g := &Game{
		debug:    debug,
		cam:      cam,
		viewport: viewport,
		colony:   colony,
		tourSrc:  spec.Tour,
	}
	g.session = interaction.NewSession(cam, viewport, g, colony)
	g.input = interaction.NewEbitenInput(g.session)
	g.statsBox = NewStatsPanel()
	g.stats = g.statsBox.UI()

	if tour && spec.Tour != "" {
		g.startTour()
	}

	if w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")); err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) startTour() {
	src, err := prefabs.LoadScript(g.tourSrc)
	if err != nil {
		log.Printf("tour: load %s: %v", g.tourSrc, err)
		return
	}
	t, err := system.NewTour(src, g.cam)
	if err != nil {
		log.Printf("tour: %v", err)
		return
	}
	g.tour = t
}

func (g *Game) TileHovered(tile camera.Tile, x, y float64) {
	g.hover = tile
	g.hoverOK = g.inWorld(tile)
}

func (g *Game) GroundClicked(tile camera.Tile, x, y float64) {
	g.selectedOK = false
	g.lastClick = tile
	if g.debug {
		log.Printf("ground click at tile (%d,%d) px (%.0f,%.0f)", tile.X, tile.Z, x, y)
	}
}

func (g *Game) EntitySelected(id int, tile camera.Tile) {
	g.selected = id
	g.selectedOK = true
	if e, ok := g.colony.Entity(id); ok && g.debug {
		log.Printf("selected %s %q at (%d,%d)", e.Type, e.Name, tile.X, tile.Z)
	}
}

func (g *Game) inWorld(tile camera.Tile) bool {
	r := g.cam.State().WorldRadius
	return math.Abs(float64(tile.X)) <= r && math.Abs(float64(tile.Z)) <= r
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	// input first so this frame's inertia sees the latest gesture
	if g.input.Update() {
		g.tour.Cancel()
	}
	dt := 1 / float64(ebiten.TPS())
	if err := g.tour.Update(dt); err != nil {
		log.Printf("%v", err)
	}
	g.cam.Update(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.tour.Cancel()
		g.cam.CenterOn(0, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyStats()
	}

	g.statsBox.SetText(g.statsLine())
	g.stats.Update()
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	for _, ch := range g.watcher.Poll() {
		switch ch.Kind {
		case prefabs.ChangeSpec:
			if filepath.Base(ch.Path) != prefabs.CameraFile {
				continue
			}
			spec, err := prefabs.LoadCameraSpec()
			if err != nil {
				log.Printf("prefabs: reload: %v", err)
				continue
			}
			cfg := spec.Config()
			cfg.WorldRadius = g.cam.State().WorldRadius
			g.cam.Tune(cfg)
			log.Printf("prefabs: reloaded %s", prefabs.CameraFile)
		case prefabs.ChangeScript:
			if !g.tour.Done() {
				g.startTour()
				log.Printf("prefabs: restarted tour from %s", ch.Path)
			}
		}
	}
}

func (g *Game) statsLine() string {
	st := g.cam.State()
	line := fmt.Sprintf("center %.2f, %.2f   zoom %.2f   view %dx%d   radius %.0f   %s",
		st.CenterX, st.CenterZ, st.Zoom, st.Width, st.Height, st.WorldRadius, g.cam.Gesture())
	if g.hoverOK {
		line += fmt.Sprintf("\nhover %d, %d", g.hover.X, g.hover.Z)
	}
	if g.selectedOK {
		if e, ok := g.colony.Entity(g.selected); ok {
			line += fmt.Sprintf("\nselected %s (%s)", e.Name, e.Type)
		}
	}
	return line
}

func (g *Game) copyStats() {
	if !g.clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.statsLine()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawGrid(screen)
	g.drawEntities(screen)
	if g.hoverOK {
		g.strokeTile(screen, g.hover, 2, colornames.Gold)
	}

	g.stats.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 8, g.viewport.H-20)
	}
}

// drawGrid strokes the tile borders inside the world radius.
func (g *Game) drawGrid(screen *ebiten.Image) {
	r := int(g.cam.State().WorldRadius)
	vis := g.cam.VisibleTiles()
	minX, maxX := max(vis.MinX, -r), min(vis.MaxX, r)
	minZ, maxZ := max(vis.MinZ, -r), min(vis.MaxZ, r)
	if minX > maxX || minZ > maxZ {
		return
	}

	for x := minX; x <= maxX+1; x++ {
		g.worldLine(screen, float64(x)-0.5, float64(minZ)-0.5, float64(x)-0.5, float64(maxZ)+0.5, 1, gridColor)
	}
	for z := minZ; z <= maxZ+1; z++ {
		g.worldLine(screen, float64(minX)-0.5, float64(z)-0.5, float64(maxX)+0.5, float64(z)-0.5, 1, gridColor)
	}
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	zoom := g.cam.State().Zoom
	for _, e := range g.colony.Entities {
		sx, sy := g.cam.WorldToScreen(float64(e.X), float64(e.Z))
		clr := colornames.Lightskyblue
		size := 6.0
		switch e.Type {
		case "building":
			clr = colornames.Sandybrown
			size = 10
		case "resource":
			clr = colornames.Slategray
			size = 8
		}
		vector.FillCircle(screen, float32(sx), float32(sy), float32(size*zoom), clr, true)
		if g.selectedOK && g.selected == e.ID {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32((size+4)*zoom), 2, colornames.White, true)
		}
	}
}

func (g *Game) strokeTile(screen *ebiten.Image, t camera.Tile, width float32, clr color.Color) {
	x, z := float64(t.X), float64(t.Z)
	g.worldLine(screen, x-0.5, z-0.5, x+0.5, z-0.5, width, clr)
	g.worldLine(screen, x+0.5, z-0.5, x+0.5, z+0.5, width, clr)
	g.worldLine(screen, x+0.5, z+0.5, x-0.5, z+0.5, width, clr)
	g.worldLine(screen, x-0.5, z+0.5, x-0.5, z-0.5, width, clr)
}

func (g *Game) worldLine(screen *ebiten.Image, x0, z0, x1, z1 float64, width float32, clr color.Color) {
	sx0, sy0 := g.cam.WorldToScreen(x0, z0)
	sx1, sy1 := g.cam.WorldToScreen(x1, z1)
	vector.StrokeLine(screen, float32(sx0), float32(sy0), float32(sx1), float32(sy1), width, clr, true)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.viewport.W = int(outsideWidth)
	g.viewport.H = int(outsideHeight)
	g.cam.SetViewport(g.viewport.W, g.viewport.H)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
