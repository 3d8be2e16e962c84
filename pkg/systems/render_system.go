package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/types"
	"github.com/decker502/lovepark/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneSource 渲染所需的只读场景状态
type SceneSource interface {
	Pairing
	Meter() *game.LoveMeter
	Celebration() *game.Celebration
	ScreenPulse() float64
	Size() (float64, float64)
	Now() float64
}

var (
	skyTopColor      = config.MustColor("#ffe3ef")
	skyBottomColor   = config.MustColor("#ffd4e6")
	treeLineColor    = config.MustColor("#e9b4c9")
	pondColor        = config.MustColor("#ffeaf3")
	bridgeColor      = config.MustColor("#d391a9")
	pathColor        = config.MustColor("#ffe4ee")
	outlineColor     = config.MustColor("#3a2a35")
	cheekColor       = config.MustColor("#ff9dbb")
	pulseColor       = config.MustColor("#ffb3c7")
	meterFrameColor  = config.MustColor("#ffd9ea")
	meterBorderColor = config.MustColor("#ff9bc0")
	meterTrackColor  = config.MustColor("#ffeef5")
	meterStartColor  = config.MustColor("#ffb3c7")
	meterEndColor    = config.MustColor("#ff6fa3")
	celebrationColor = config.MustColor("#ff6fa3")
	shadowColor      = color.NRGBA{A: 0x2a}
	flowerColors     = []color.RGBA{config.MustColor("#ffd1dc"), config.MustColor("#ffb3c7")}
)

// RenderSystem 用 ebiten 矢量绘图画出整个场景
//
// 渲染顺序（从底到顶）：背景 → 花瓣 → 屏幕脉冲 → 角色 → 爱心粒子 → 彩纸 → 进度条 → 庆祝画面 → 帮助文字。
// 只读取组件状态，不修改任何数据。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.TuningConfig
	shapes        *shapeRenderer

	// ShowHelp 是否在底部显示按键说明
	ShowHelp bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cfg:           cfg,
		shapes:        newShapeRenderer(),
		ShowHelp:      true,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, src SceneSource) {
	w, h := src.Size()

	s.drawBackground(screen, w, h, src.Now())
	s.drawPetals(screen)

	if pulse := src.ScreenPulse(); pulse > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.WithAlpha(pulseColor, pulse*0.35), false)
	}

	for _, id := range src.Actors() {
		self, other, ok := getPair(s.entityManager, src, id)
		if !ok {
			continue
		}
		s.drawActor(screen, self, other)
	}

	s.drawHearts(screen)
	s.drawConfetti(screen)
	s.drawMeter(screen, src.Meter(), w)

	if src.Celebration().IsActive() {
		s.drawCelebration(screen, w, h, src.Celebration().Elapsed())
	}
	if s.ShowHelp {
		s.drawHelp(screen, src, h)
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image, w, h, now float64) {
	const bands = 24
	bandH := h / bands
	for i := 0; i < bands; i++ {
		clr := config.BlendColors(skyTopColor, skyBottomColor, float64(i)/(bands-1))
		vector.DrawFilledRect(screen, 0, float32(float64(i)*bandH), float32(w), float32(bandH+1), clr, false)
	}

	// 飘动的爱心云
	for i := 0; i < 6; i++ {
		x := math.Mod(now*16+float64(i)*220, w+260) - 130
		y := h*0.22 + math.Sin(now+float64(i))*6
		s.shapes.fill(screen, heartPath(x, y, 40), config.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.25))
	}

	horizon := h - 190
	for x := 0.0; x < w; x += 40 {
		s.shapes.fill(screen, ellipsePath(identity(), x+20, horizon+math.Sin((x+now)*0.01)*3, 40, 16, 0), treeLineColor)
	}

	pondY := h - 150
	s.shapes.fill(screen, ellipsePath(identity(), w/2, pondY+40, w*0.5*0.45, 60, 0), pondColor)
	bridge := &vector.Path{}
	bridge.Arc(float32(w/2), float32(pondY+20), 120, math.Pi*0.05, math.Pi*0.95, vector.Clockwise)
	s.shapes.stroke(screen, bridge, 4, bridgeColor)

	pathTop := h - 146
	vector.DrawFilledRect(screen, 0, float32(pathTop), float32(w), float32(h-pathTop), pathColor, false)

	for i := 0; i < 6; i++ {
		fx := float64(i)/5*w + math.Sin(now+float64(i))*8
		fy := h - 28 + math.Sin(now*0.5+float64(i))*2
		s.shapes.fill(screen, ellipsePath(identity(), fx, fy, 50, 16, 0), flowerColors[i%2])
	}
}

func (s *RenderSystem) drawPetals(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.PetalComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		p, _ := ecs.GetComponent[*components.PetalComponent](s.entityManager, id)
		s.shapes.fill(screen, ellipsePath(identity(), pos.X, pos.Y, p.Size*0.8, p.Size, p.Angle), p.Color)
	}
}

func (s *RenderSystem) drawHearts(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.HeartParticleComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		p, _ := ecs.GetComponent[*components.HeartParticleComponent](s.entityManager, id)
		scale := p.Size * (1 + math.Sin(p.Wobble)*0.08)
		s.shapes.fill(screen, heartPath(pos.X, pos.Y, scale), p.Color)
	}
}

func (s *RenderSystem) drawConfetti(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ConfettiComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		s.shapes.fill(screen, rectPath(pos.X, pos.Y, c.Size, c.Rotation), config.WithAlpha(c.Color, c.Alpha))
	}
}

// drawActor 画一只小熊
// 局部坐标以角色左上角为原点，整体按姿态缩放旋转，变换中心为角色中心
func (s *RenderSystem) drawActor(screen *ebiten.Image, a, other *actorParts) {
	act := a.actor
	w, h := act.Width, act.Height
	cx, cy := a.center()
	otherX, _ := other.center()

	pose := components.ComputePose(act, a.action, a.react, a.expr)
	bob := math.Sin(a.expr.AnimTime*2) * (3 + a.expr.Joy*2)
	base := newTransform(cx, cy+bob+pose.YOffset, pose.ScaleX, pose.ScaleY, pose.Rotation)
	t := func(x, y float64) (float64, float64) { return x - w/2, y - h/2 }
	local := localTransform{base: base, offset: t}

	// 阴影
	s.shapes.fill(screen, local.ellipse(w/2, h-8, w*0.36, 10), shadowColor)

	// 身体与肚皮
	body := local.roundRect(10, 30, w-20, h-40, 30)
	s.shapes.fill(screen, body, act.Tint.Body)
	s.shapes.stroke(screen, body, 3, outlineColor)
	s.shapes.fill(screen, local.roundRect(w/2-w*0.26, h*0.48, w*0.52, h*0.34, 24), act.Tint.Belly)

	// 腿
	hipY := h - 44
	step := math.Sin(a.expr.AnimTime*4) * 4
	footY := h - 8
	s.drawLimb(screen, local, w*0.42, hipY, w*0.42-4+step*0.25, footY, 8, act.Tint.Paw)
	s.drawLimb(screen, local, w*0.58, hipY, w*0.58+4-step*0.25, footY, 8, act.Tint.Paw)

	// 手臂
	toward := utils.Sign(otherX - cx)
	if toward == 0 {
		toward = act.Facing
	}
	arms := ArmTargets(w, h, a.action.Current, a.action.Reach, toward)
	s.drawLimb(screen, local, arms.LeftShoulderX, arms.ShoulderY, arms.LeftX, arms.LeftY, 10, act.Tint.Paw)
	s.drawLimb(screen, local, arms.RightShoulderX, arms.ShoulderY, arms.RightX, arms.RightY, 10, act.Tint.Paw)

	s.drawHead(screen, local, a)
}

func (s *RenderSystem) drawHead(screen *ebiten.Image, local localTransform, a *actorParts) {
	act := a.actor
	headX, headY := act.Width/2, 34.0

	// 耳朵
	for _, side := range []float64{-1, 1} {
		s.shapes.fill(screen, local.ellipse(headX+side*28, headY-10, 14, 12), act.Tint.Body)
		s.shapes.fill(screen, local.ellipse(headX+side*28, headY-10, 7, 6), act.Tint.Belly)
	}

	face := local.roundRect(headX-40, headY-26, 80, 58, 26)
	s.shapes.fill(screen, face, act.Tint.Body)
	s.shapes.stroke(screen, face, 3, outlineColor)

	// 腮红，反应中更红
	blush := 0.8
	if a.react.Active {
		blush = 1
	}
	for _, side := range []float64{-1, 1} {
		s.shapes.fill(screen, local.ellipse(headX+side*22, headY+10, 9, 6), config.WithAlpha(cheekColor, blush))
	}

	// 眼睛
	if components.EyesClosed(a.expr, a.react) {
		for _, side := range []float64{-1, 1} {
			s.shapes.stroke(screen, local.line(headX+side*18-4, headY-3, headX+side*18+4, headY-3), 2, outlineColor)
		}
	} else {
		pupil := utils.Clamp(a.expr.EyeLook, -1, 1) * 2
		for _, side := range []float64{-1, 1} {
			s.shapes.fill(screen, local.ellipse(headX+side*18+pupil, headY-4, 3, 3), outlineColor)
			s.shapes.fill(screen, local.ellipse(headX+side*18-0.5, headY-5, 1, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 0xcc})
		}
	}

	// 鼻子与嘴
	s.shapes.fill(screen, local.ellipse(headX, headY+2, 2, 2), outlineColor)
	switch components.CurrentMouth(a.action, a.react) {
	case components.MouthPucker:
		s.shapes.stroke(screen, local.ellipse(headX, headY+8, 2.5, 2.5), 2, outlineColor)
	case components.MouthOpen:
		s.shapes.stroke(screen, local.arc(headX, headY+10, 7, 0.1, math.Pi-0.1), 2, outlineColor)
	default:
		s.shapes.stroke(screen, local.arc(headX, headY+8, 5, 0.2, math.Pi-0.2), 2, outlineColor)
	}
}

func (s *RenderSystem) drawLimb(screen *ebiten.Image, local localTransform, sx, sy, tx, ty, thickness float64, handColor color.RGBA) {
	s.shapes.stroke(screen, local.limb(sx, sy, tx, ty), float32(thickness), outlineColor)
	s.shapes.fill(screen, local.ellipse(tx, ty, thickness*0.6, thickness*0.5), handColor)
}

func (s *RenderSystem) drawMeter(screen *ebiten.Image, meter *game.LoveMeter, w float64) {
	width := math.Min(config.MeterBarMaxWidth, w-40)
	height := config.MeterBarHeight
	x := (w - width) / 2
	y := config.MeterBarY

	vector.DrawFilledRect(screen, float32(x-4), float32(y-4), float32(width+8), float32(height+8), meterFrameColor, false)
	vector.StrokeRect(screen, float32(x-4), float32(y-4), float32(width+8), float32(height+8), 2, meterBorderColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), meterTrackColor, false)

	// 渐变填充：按列混色
	filled := meter.DisplayRatio() * width
	const step = 6.0
	for fx := 0.0; fx < filled; fx += step {
		seg := math.Min(step, filled-fx)
		clr := config.BlendColors(meterStartColor, meterEndColor, fx/width)
		vector.DrawFilledRect(screen, float32(x+fx), float32(y), float32(seg), float32(height), clr, false)
	}

	label := MeterLabel(meter.DisplayValue(), meter.Max())
	ebitenutil.DebugPrintAt(screen, label, int(x+width/2)-len(label)*3, int(y+height+4))
}

// MeterLabel 进度条下方的百分比文字
func MeterLabel(displayValue, maxValue float64) string {
	if maxValue <= 0 {
		return "LOVE METER 0%"
	}
	return fmt.Sprintf("LOVE METER %d%%", int(math.Round(displayValue/maxValue*100)))
}

// celebrationGrowTime 庆祝爱心从无到满尺寸的时间（秒）
const celebrationGrowTime = 0.5

func (s *RenderSystem) drawCelebration(screen *ebiten.Image, w, h, elapsed float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.WithAlpha(celebrationColor, 0.18), false)

	grow := utils.EaseOutCubic(utils.Clamp01(elapsed / celebrationGrowTime))
	size := math.Min(w, h) * 0.22
	s.shapes.fill(screen, heartPath(w/2, h/2-12, size*grow), celebrationColor)

	title := s.cfg.Celebration.Title
	ebitenutil.DebugPrintAt(screen, title, int(w/2)-len(title)*3, int(h/2-20))
	sub := s.cfg.Celebration.Subtitle
	ebitenutil.DebugPrintAt(screen, sub, int(w/2)-len(sub)*3, int(h/2+size*0.36))
}

func (s *RenderSystem) drawHelp(screen *ebiten.Image, src SceneSource, h float64) {
	y := int(h) - 16*len(src.Actors()) - 4
	for _, id := range src.Actors() {
		act, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		if !ok {
			continue
		}
		ebitenutil.DebugPrintAt(screen, ControlsHelp(act), 8, y)
		y += 16
	}
}

// ControlsHelp 生成某个角色的按键说明
func ControlsHelp(act *components.ActorComponent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s/%s move", act.Name, act.Role,
		act.ControlKey(types.ControlLeft), act.ControlKey(types.ControlRight))
	for _, kind := range types.AllGestures {
		fmt.Fprintf(&b, "  %s %s", act.ControlKey(types.GestureControl(kind)), kind)
	}
	return b.String()
}

// ArmPose 手臂的肩部和手部位置（角色局部坐标）
type ArmPose struct {
	ShoulderY                     float64
	LeftShoulderX, RightShoulderX float64
	LeftX, LeftY                  float64
	RightX, RightY                float64
}

// ArmTargets 根据当前动作和伸展程度计算手臂位置
//
// toward 为对方所在方向（1 右，-1 左）。空闲时双手自然下垂；
// 亲亲时朝对方一侧的手伸出，抱抱时双臂张开，飞吻时一只手放到嘴边，比心时双手在胸前合拢。
func ArmTargets(w, h float64, action types.Action, reach, toward float64) ArmPose {
	shoulderY := h * 0.48
	p := ArmPose{
		ShoulderY:      shoulderY,
		LeftShoulderX:  w * 0.32,
		RightShoulderX: w * 0.68,
	}
	p.LeftX, p.LeftY = p.LeftShoulderX, shoulderY+14
	p.RightX, p.RightY = p.RightShoulderX, shoulderY+14

	switch action {
	case types.ActionKiss:
		if toward > 0 {
			p.RightX = utils.Lerp(p.RightShoulderX, w+30, reach)
			p.RightY = utils.Lerp(shoulderY, shoulderY-6, reach)
		} else {
			p.LeftX = utils.Lerp(p.LeftShoulderX, -30, reach)
			p.LeftY = utils.Lerp(shoulderY, shoulderY-6, reach)
		}
	case types.ActionHug:
		out := 60 + reach*70
		fwd := reach * 20
		p.LeftX = p.LeftShoulderX - out*0.6*toward - fwd*toward
		p.RightX = p.RightShoulderX + out*0.6*toward + fwd*toward
		p.LeftY = shoulderY - 8
		p.RightY = shoulderY - 8
	case types.ActionBlow:
		if toward > 0 {
			p.RightX, p.RightY = p.RightShoulderX+8, shoulderY-12
			p.LeftX = p.LeftShoulderX - 6
		} else {
			p.LeftX, p.LeftY = p.LeftShoulderX-8, shoulderY-12
			p.RightX = p.RightShoulderX + 6
		}
	case types.ActionHeart:
		meetX := w*0.5 + toward*8
		meetY := shoulderY - 2
		p.LeftX = utils.Lerp(p.LeftShoulderX, meetX-8, reach)
		p.RightX = utils.Lerp(p.RightShoulderX, meetX+8, reach)
		p.LeftY = utils.Lerp(shoulderY+10, meetY, reach)
		p.RightY = utils.Lerp(shoulderY+10, meetY, reach)
	}
	return p
}

// localTransform 角色局部坐标（左上角原点）下的形状构造
type localTransform struct {
	base   transform
	offset func(x, y float64) (float64, float64)
}

func (l localTransform) ellipse(cx, cy, rx, ry float64) *vector.Path {
	x, y := l.offset(cx, cy)
	return ellipsePath(l.base, x, y, rx, ry, 0)
}

func (l localTransform) roundRect(x, y, w, h, r float64) *vector.Path {
	ox, oy := l.offset(x, y)
	return roundRectPath(l.base, ox, oy, w, h, r)
}

func (l localTransform) limb(sx, sy, tx, ty float64) *vector.Path {
	ax, ay := l.offset(sx, sy)
	bx, by := l.offset(tx, ty)
	return limbPath(l.base, ax, ay, bx, by)
}

func (l localTransform) line(x1, y1, x2, y2 float64) *vector.Path {
	ax, ay := l.offset(x1, y1)
	bx, by := l.offset(x2, y2)
	path := &vector.Path{}
	path.MoveTo(l.base.apply(ax, ay))
	path.LineTo(l.base.apply(bx, by))
	return path
}

func (l localTransform) arc(cx, cy, r, from, to float64) *vector.Path {
	const segments = 12
	ox, oy := l.offset(cx, cy)
	path := &vector.Path{}
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/segments
		x, y := l.base.apply(ox+math.Cos(a)*r, oy+math.Sin(a)*r)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	return path
}
