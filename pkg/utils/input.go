// Package utils 提供通用工具函数
package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyNames 按键名 → ebiten 按键
// 按键名与配置文件 controls 中的写法一致，查找时忽略大小写
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"arrowleft":  ebiten.KeyArrowLeft,
	"arrowright": ebiten.KeyArrowRight,
	"arrowup":    ebiten.KeyArrowUp,
	"arrowdown":  ebiten.KeyArrowDown,
	"space":      ebiten.KeySpace,
	" ":          ebiten.KeySpace,
	"enter":      ebiten.KeyEnter,
	"escape":     ebiten.KeyEscape,
	"f11":        ebiten.KeyF11,
}

// KeyByName 按名字查找 ebiten 按键
func KeyByName(name string) (ebiten.Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// KeyboardInput 用 ebiten 键盘状态实现 game.Input
//
// 未知的按键名视为未按下。
type KeyboardInput struct{}

// NewKeyboardInput 创建键盘输入
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// IsDown 返回按键当前是否按住
func (k *KeyboardInput) IsDown(control string) bool {
	key, ok := KeyByName(control)
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed 返回按键是否在本帧刚刚按下
// 用于重新开始、全屏等一次性命令
func IsKeyJustPressed(name string) bool {
	key, ok := KeyByName(name)
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(key)
}
