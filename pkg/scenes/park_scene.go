// Package scenes 把对局会话接到 ebiten 场景管理器上
package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/session"
	"github.com/decker502/lovepark/pkg/systems"
)

// ParkScene 公园场景
//
// 每帧把输入快照交给会话推进，再由渲染系统画出会话状态。
// 自己不保存任何游戏数据，重新开始只是让会话回到初始状态。
type ParkScene struct {
	session  *session.Session
	input    game.Input
	renderer *systems.RenderSystem
}

// NewParkScene 创建公园场景
// input 为 nil 时场景不响应任何按键
func NewParkScene(sess *session.Session, input game.Input) *ParkScene {
	if input == nil {
		input = game.NoInput{}
	}
	return &ParkScene{
		session:  sess,
		input:    input,
		renderer: systems.NewRenderSystem(sess.EntityManager(), sess.Config()),
	}
}

// Update 推进一帧
func (s *ParkScene) Update(deltaTime float64) {
	s.session.Update(deltaTime, s.input)
}

// Draw 绘制场景
func (s *ParkScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.session)
}

// Restart 重新开局（清空进度条、粒子和庆祝状态）
func (s *ParkScene) Restart() {
	if err := s.session.Start(); err != nil {
		log.Printf("[ParkScene] Failed to restart session: %v", err)
	}
}

// Resize 窗口尺寸变化时重新布局
func (s *ParkScene) Resize(width, height float64) {
	s.session.Resize(width, height)
}

// SetShowHelp 设置是否显示按键说明
func (s *ParkScene) SetShowHelp(show bool) {
	s.renderer.ShowHelp = show
}

// Session 返回场景使用的会话
func (s *ParkScene) Session() *session.Session {
	return s.session
}
