package systems

import (
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/types"
	"github.com/decker502/lovepark/pkg/utils"
)

// MovementSystem 根据左右按键移动角色
//
// 同时按下左右键时相互抵消；移动时朝向跟随移动方向，静止时保持原朝向。
// 移动后X坐标截断到 [left, right - 宽度]。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	pairing       Pairing
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, pairing Pairing) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		pairing:       pairing,
	}
}

// Update 移动所有角色
func (s *MovementSystem) Update(dt float64, input game.Input, left, right float64) {
	for _, id := range s.pairing.Actors() {
		a, ok := getActor(s.entityManager, id)
		if !ok {
			continue
		}

		h := 0.0
		if input.IsDown(a.actor.ControlKey(types.ControlLeft)) {
			h -= 1
		}
		if input.IsDown(a.actor.ControlKey(types.ControlRight)) {
			h += 1
		}

		a.pos.X += h * a.actor.Speed * dt
		if h != 0 {
			a.actor.Facing = utils.Sign(h)
		}
		a.pos.X = utils.Clamp(a.pos.X, left, right-a.actor.Width)
	}
}
