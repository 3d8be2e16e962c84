package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shapeRenderer 用 vector.Path 填充/描边任意形状
//
// 所有三角形共用一张白色纹理，颜色通过顶点色传入，
// 顶点和索引数组每次绘制复用，避免每帧分配。
type shapeRenderer struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newShapeRenderer() *shapeRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &shapeRenderer{
		white:    img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices: make([]ebiten.Vertex, 0, 512),
		indices:  make([]uint16, 0, 1024),
	}
}

// fill 填充路径
func (r *shapeRenderer) fill(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.draw(dst, clr)
}

// stroke 描边路径
func (r *shapeRenderer) stroke(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	op := &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)
	r.draw(dst, clr)
}

func (r *shapeRenderer) draw(dst *ebiten.Image, clr color.Color) {
	cr, cg, cb, ca := clr.RGBA()
	if ca == 0 {
		return
	}
	// 顶点色使用预乘 alpha
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(cr) / 0xffff
		r.vertices[i].ColorG = float32(cg) / 0xffff
		r.vertices[i].ColorB = float32(cb) / 0xffff
		r.vertices[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(r.vertices, r.indices, r.white, op)
}

// transform 局部坐标到屏幕坐标的仿射变换：先缩放、再旋转、再平移
type transform struct {
	originX, originY float64
	scaleX, scaleY   float64
	rotation         float64
	cos, sin         float64
}

func newTransform(originX, originY, scaleX, scaleY, rotation float64) transform {
	return transform{
		originX: originX, originY: originY,
		scaleX: scaleX, scaleY: scaleY,
		rotation: rotation,
		cos:      math.Cos(rotation), sin: math.Sin(rotation),
	}
}

// identity 只做平移的变换
func identity() transform {
	return newTransform(0, 0, 1, 1, 0)
}

func (t transform) apply(x, y float64) (float32, float32) {
	x *= t.scaleX
	y *= t.scaleY
	rx := x*t.cos - y*t.sin
	ry := x*t.sin + y*t.cos
	return float32(t.originX + rx), float32(t.originY + ry)
}

// ellipsePath 椭圆（多边形近似）
func ellipsePath(t transform, cx, cy, rx, ry, angle float64) *vector.Path {
	const segments = 28
	path := &vector.Path{}
	ca, sa := math.Cos(angle), math.Sin(angle)
	for i := 0; i < segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		ex, ey := math.Cos(a)*rx, math.Sin(a)*ry
		x, y := t.apply(cx+ex*ca-ey*sa, cy+ex*sa+ey*ca)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path
}

// roundRectPath 圆角矩形
func roundRectPath(t transform, x, y, w, h, radius float64) *vector.Path {
	radius = math.Min(radius, math.Min(w, h)/2)
	const arcSegments = 6
	corners := [4][3]float64{
		{x + w - radius, y + radius, -math.Pi / 2},
		{x + w - radius, y + h - radius, 0},
		{x + radius, y + h - radius, math.Pi / 2},
		{x + radius, y + radius, math.Pi},
	}
	path := &vector.Path{}
	first := true
	for _, c := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := c[2] + float64(i)/arcSegments*math.Pi/2
			px, py := t.apply(c[0]+math.Cos(a)*radius, c[1]+math.Sin(a)*radius)
			if first {
				path.MoveTo(px, py)
				first = false
			} else {
				path.LineTo(px, py)
			}
		}
	}
	path.Close()
	return path
}

// rectPath 以 (cx, cy) 为中心、旋转 angle 的正方形
func rectPath(cx, cy, size, angle float64) *vector.Path {
	t := newTransform(cx, cy, 1, 1, angle)
	half := size / 2
	path := &vector.Path{}
	path.MoveTo(t.apply(-half, -half))
	path.LineTo(t.apply(half, -half))
	path.LineTo(t.apply(half, half))
	path.LineTo(t.apply(-half, half))
	path.Close()
	return path
}

// heartPath 以 (x, y) 为中心、宽约 1.3·scale 的爱心
func heartPath(x, y, scale float64) *vector.Path {
	t := newTransform(x, y, scale, scale, 0)
	path := &vector.Path{}
	path.MoveTo(t.apply(0, -0.3))
	cubic(path, t, 0, -0.6, -0.4, -0.6, -0.5, -0.35)
	cubic(path, t, -0.8, 0.1, -0.2, 0.45, 0, 0.7)
	cubic(path, t, 0.2, 0.45, 0.8, 0.1, 0.5, -0.35)
	cubic(path, t, 0.4, -0.6, 0, -0.6, 0, -0.3)
	path.Close()
	return path
}

func cubic(path *vector.Path, t transform, x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := t.apply(x1, y1)
	bx, by := t.apply(x2, y2)
	cx, cy := t.apply(x3, y3)
	path.CubicTo(ax, ay, bx, by, cx, cy)
}

// limbPath 从 (sx, sy) 到 (tx, ty) 的弯曲肢体，肘部向法线方向偏移
func limbPath(t transform, sx, sy, tx, ty float64) *vector.Path {
	const elbowOffset = 14
	midX, midY := (sx+tx)/2, (sy+ty)/2
	dx, dy := tx-sx, ty-sy
	l := math.Hypot(dx, dy)
	if l == 0 {
		l = 1
	}
	nx, ny := -dy/l, dx/l

	path := &vector.Path{}
	path.MoveTo(t.apply(sx, sy))
	cx, cy := t.apply(midX+nx*elbowOffset, midY+ny*elbowOffset)
	ex, ey := t.apply(tx, ty)
	path.QuadTo(cx, cy, ex, ey)
	return path
}
