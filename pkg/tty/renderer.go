package tty

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/systems"
)

// Canvas 字符画布，tcell.Screen 满足此接口
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// World 渲染所需的只读场景状态
type World interface {
	systems.SceneSource
	EntityManager() *ecs.EntityManager
}

var (
	skyColor     = config.MustColor("#ffe3ef")
	groundColor  = config.MustColor("#ffe4ee")
	grassColor   = config.MustColor("#e9b4c9")
	textColor    = config.MustColor("#3a2a35")
	pulseColor   = config.MustColor("#ffb3c7")
	meterStart   = config.MustColor("#ffb3c7")
	meterEnd     = config.MustColor("#ff6fa3")
	meterTrack   = config.MustColor("#ffeef5")
	titleColor   = config.MustColor("#ff6fa3")
	outlineColor = config.MustColor("#3a2a35")
)

const (
	heartRune    = '♥'
	confettiRune = '▪'
	petalRune    = '•'
	bodyRune     = '█'
	groundRune   = '▁'
	meterRune    = '█'
	trackRune    = '░'

	// confettiMinAlpha 透明度低于此值的彩纸不再绘制
	confettiMinAlpha = 0.2
)

// Renderer 把场景按比例缩放画到字符网格上
//
// 场景坐标 (0,0)-(W,H) 映射到整个终端，第 0 行是进度条，最后几行是按键说明。
type Renderer struct {
	cfg *config.TuningConfig

	// ShowHelp 是否在底部显示按键说明
	ShowHelp bool
	// Muted 在状态栏显示静音标记
	Muted bool
}

// NewRenderer 创建终端渲染器
func NewRenderer(cfg *config.TuningConfig) *Renderer {
	return &Renderer{cfg: cfg, ShowHelp: true}
}

// grid 场景坐标到单元格的映射
type grid struct {
	canvas     Canvas
	cols, rows int
	sx, sy     float64
	bg         [][]color.RGBA
}

func newGrid(c Canvas, w, h float64) *grid {
	cols, rows := c.Size()
	g := &grid{canvas: c, cols: cols, rows: rows}
	if w > 0 {
		g.sx = float64(cols) / w
	}
	if h > 0 {
		g.sy = float64(rows) / h
	}
	g.bg = make([][]color.RGBA, rows)
	for i := range g.bg {
		g.bg[i] = make([]color.RGBA, cols)
	}
	return g
}

// cell 场景坐标转单元格坐标
func (g *grid) cell(x, y float64) (int, int) {
	return int(math.Floor(x * g.sx)), int(math.Floor(y * g.sy))
}

func (g *grid) inside(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// fill 设置背景色并画一个字符
func (g *grid) fill(col, row int, r rune, fg, bg color.RGBA) {
	if !g.inside(col, row) {
		return
	}
	g.bg[row][col] = bg
	g.canvas.SetContent(col, row, r, nil, style(fg, bg))
}

// put 在保留背景色的前提下画一个字符
func (g *grid) put(col, row int, r rune, fg color.RGBA) {
	if !g.inside(col, row) {
		return
	}
	g.canvas.SetContent(col, row, r, nil, style(fg, g.bg[row][col]))
}

// text 从 (col,row) 开始写一行文字，超出右边界截断
func (g *grid) text(col, row int, s string, fg color.RGBA) {
	for _, r := range s {
		g.put(col, row, r, fg)
		col++
	}
}

// centered 在一行中居中写文字
func (g *grid) centered(row int, s string, fg color.RGBA) {
	g.text((g.cols-len([]rune(s)))/2, row, s, fg)
}

func style(fg, bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// Draw 绘制一帧
func (r *Renderer) Draw(c Canvas, world World) {
	w, h := world.Size()
	g := newGrid(c, w, h)
	if g.cols == 0 || g.rows == 0 {
		return
	}
	em := world.EntityManager()

	r.drawBackground(g, h, world.ScreenPulse())
	r.drawPetals(g, em)
	r.drawActors(g, em, world)
	r.drawHearts(g, em)
	r.drawConfetti(g, em)
	r.drawMeter(g, world)
	if world.Celebration().IsActive() {
		r.drawCelebration(g)
	}
	if r.ShowHelp {
		r.drawHelp(g, em, world)
	}
}

func (r *Renderer) drawBackground(g *grid, h, pulse float64) {
	sky := skyColor
	if pulse > 0 {
		sky = config.BlendColors(skyColor, pulseColor, math.Min(1, pulse*0.35/0.28))
	}
	_, groundRow := g.cell(0, r.cfg.Layout.GroundY(h))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			switch {
			case row < groundRow:
				g.fill(col, row, ' ', textColor, sky)
			case row == groundRow:
				g.fill(col, row, groundRune, grassColor, groundColor)
			default:
				g.fill(col, row, ' ', textColor, groundColor)
			}
		}
	}
}

func (r *Renderer) drawPetals(g *grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.PetalComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		petal, _ := ecs.GetComponent[*components.PetalComponent](em, id)
		col, row := g.cell(pos.X, pos.Y)
		g.put(col, row, petalRune, petal.Color)
	}
}

func (r *Renderer) drawActors(g *grid, em *ecs.EntityManager, world World) {
	for _, id := range world.Actors() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		act, _ := ecs.GetComponent[*components.ActorComponent](em, id)
		action, _ := ecs.GetComponent[*components.ActionComponent](em, id)
		react, _ := ecs.GetComponent[*components.ReactionComponent](em, id)
		expr, _ := ecs.GetComponent[*components.ExpressionComponent](em, id)
		if act == nil {
			continue
		}

		left, top := g.cell(pos.X, pos.Y)
		right, bottom := g.cell(pos.X+act.Width, pos.Y+act.Height)
		if right <= left {
			right = left + 1
		}
		if bottom <= top {
			bottom = top + 1
		}

		for row := top; row < bottom; row++ {
			for col := left; col < right; col++ {
				g.fill(col, row, bodyRune, act.Tint.Body, act.Tint.Body)
			}
		}

		// 眼睛在头部三分之一处，按朝向偏移
		eyeRow := top + (bottom-top)/3
		mid := (left + right) / 2
		eye := 'o'
		if expr != nil && components.EyesClosed(expr, react) {
			eye = '-'
		}
		look := 0
		if expr != nil {
			look = int(math.Round(expr.EyeLook))
		}
		g.fill(mid-1+look, eyeRow, eye, outlineColor, act.Tint.Body)
		g.fill(mid+1+look, eyeRow, eye, outlineColor, act.Tint.Body)

		label := act.Name
		if action != nil && !action.IsIdle() {
			if kind, ok := action.Current.Gesture(); ok {
				label = fmt.Sprintf("%s %c %s", act.Name, heartRune, kind)
			}
		}
		if react != nil && react.Active {
			label = fmt.Sprintf("%s <3", label)
		}
		g.text(mid-len([]rune(label))/2, top-1, label, textColor)
	}
}

func (r *Renderer) drawHearts(g *grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.HeartParticleComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		heart, _ := ecs.GetComponent[*components.HeartParticleComponent](em, id)
		col, row := g.cell(pos.X, pos.Y)
		g.put(col, row, heartRune, heart.Color)
	}
}

func (r *Renderer) drawConfetti(g *grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ConfettiComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		piece, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
		if piece.Alpha < confettiMinAlpha {
			continue
		}
		col, row := g.cell(pos.X, pos.Y)
		g.put(col, row, confettiRune, piece.Color)
	}
}

func (r *Renderer) drawMeter(g *grid, world World) {
	meter := world.Meter()
	label := systems.MeterLabel(meter.DisplayValue(), meter.Max())
	if r.Muted {
		label += "  [muted]"
	}

	width := g.cols - len([]rune(label)) - 4
	if width < 4 {
		g.text(1, 0, label, textColor)
		return
	}
	filled := int(math.Round(meter.DisplayRatio() * float64(width)))
	for i := 0; i < width; i++ {
		if i < filled {
			clr := config.BlendColors(meterStart, meterEnd, float64(i)/float64(width))
			g.fill(1+i, 0, meterRune, clr, meterTrack)
		} else {
			g.fill(1+i, 0, trackRune, meterStart, meterTrack)
		}
	}
	g.text(width+3, 0, label, textColor)
}

func (r *Renderer) drawCelebration(g *grid) {
	mid := g.rows / 2
	g.centered(mid-1, strings.Repeat(string(heartRune), 3)+" "+r.cfg.Celebration.Title+" "+strings.Repeat(string(heartRune), 3), titleColor)
	g.centered(mid+1, r.cfg.Celebration.Subtitle, titleColor)
}

func (r *Renderer) drawHelp(g *grid, em *ecs.EntityManager, world World) {
	lines := make([]string, 0, 3)
	for _, id := range world.Actors() {
		act, ok := ecs.GetComponent[*components.ActorComponent](em, id)
		if !ok {
			continue
		}
		lines = append(lines, systems.ControlsHelp(act))
	}
	lines = append(lines, "R restart  H help  M mute  Esc quit")

	row := g.rows - len(lines)
	for _, line := range lines {
		g.text(1, row, line, textColor)
		row++
	}
}
