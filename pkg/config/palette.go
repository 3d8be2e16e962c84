package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor 解析十六进制颜色（"#rrggbb" 或 "#rgb"）
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor 解析颜色，失败时返回洋红色以便一眼看出配置错误
// 配置在加载时已经过 Validate，运行期不会走到失败分支
func MustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return c
}

// ParseColors 批量解析颜色
func ParseColors(hexes []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		out = append(out, MustColor(h))
	}
	return out
}

// BlendColors 在 Lab 空间混合两种颜色，t=0 返回 a，t=1 返回 b
// Alpha 通道线性插值
func BlendColors(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// WithAlpha 返回指定不透明度（0-1）的非预乘颜色
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func validateColors(hexes []string) error {
	if len(hexes) == 0 {
		return fmt.Errorf("at least one color required")
	}
	for _, h := range hexes {
		if _, err := ParseColor(h); err != nil {
			return err
		}
	}
	return nil
}
