package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/game"
)

// CelebrationSystem 进度条满时触发庆祝
//
// 真实值（而非显示值）第一次达到满值的那一帧激活庆祝，立即在画面上部撒下一大把彩纸；
// 激活后（包括激活当帧）每帧从画面顶端补充少量彩纸。
type CelebrationSystem struct {
	celebration *game.Celebration
	meter       *game.LoveMeter
	confetti    *ConfettiSystem
	cfg         *config.CelebrationConfig
	rng         *rand.Rand
}

// NewCelebrationSystem 创建庆祝系统
func NewCelebrationSystem(celebration *game.Celebration, meter *game.LoveMeter,
	confetti *ConfettiSystem, cfg *config.CelebrationConfig, rng *rand.Rand) *CelebrationSystem {
	return &CelebrationSystem{
		celebration: celebration,
		meter:       meter,
		confetti:    confetti,
		cfg:         cfg,
		rng:         rng,
	}
}

// Update 检查激活条件并补充彩纸
func (s *CelebrationSystem) Update(dt, sceneWidth, sceneHeight float64) {
	if s.meter.IsFull() && s.celebration.TryActivate() {
		log.Printf("[Celebration] meter full (%.0f/%.0f), celebrating", s.meter.Value(), s.meter.Max())
		for i := 0; i < s.cfg.BurstCount; i++ {
			s.confetti.Spawn(s.rng.Float64()*sceneWidth, s.rng.Float64()*sceneHeight*s.cfg.BurstHeightRatio)
		}
	}

	if !s.celebration.IsActive() {
		return
	}
	s.celebration.Update(dt)
	for i := 0; i < s.cfg.TrickleCount; i++ {
		s.confetti.Spawn(s.rng.Float64()*sceneWidth, s.cfg.TrickleY)
	}
}
