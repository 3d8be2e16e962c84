package systems

import (
	"math/rand"

	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/types"
	"github.com/decker502/lovepark/pkg/utils"
)

// ActorSystem 推进角色的动作状态机、反应计时和表情
//
// 每帧对每个角色依次执行：
//  1. 累计动画时间，喜悦值线性衰减，闭眼笑计时递减
//  2. 眨眼倒计时（随机间隔）
//  3. 动作进度推进 dt/时长，到达 1 自动回到 idle；由进度推导手臂伸展
//  4. 视线看向对方
//  5. 反应计时，到期清除
type ActorSystem struct {
	entityManager *ecs.EntityManager
	pairing       Pairing
	actions       *config.ActionsConfig
	gestures      *config.GestureTable
	rng           *rand.Rand
}

// NewActorSystem 创建角色系统
func NewActorSystem(em *ecs.EntityManager, pairing Pairing, cfg *config.TuningConfig, rng *rand.Rand) *ActorSystem {
	return &ActorSystem{
		entityManager: em,
		pairing:       pairing,
		actions:       &cfg.Actions,
		gestures:      &cfg.Gestures,
		rng:           rng,
	}
}

// Update 更新所有角色
func (s *ActorSystem) Update(dt float64) {
	for _, id := range s.pairing.Actors() {
		a, other, ok := getPair(s.entityManager, s.pairing, id)
		if !ok {
			continue
		}
		s.updateExpression(a, dt)
		s.updateAction(a, dt)

		selfX, _ := a.center()
		otherX, _ := other.center()
		a.expr.EyeLook = utils.Clamp((otherX-selfX)/s.actions.EyeLookRange, -1, 1)

		s.updateReaction(a, dt)
	}
}

func (s *ActorSystem) updateExpression(a *actorParts, dt float64) {
	e := a.expr
	e.AnimTime += dt
	e.Joy -= dt * s.actions.JoyDecay
	if e.Joy < 0 {
		e.Joy = 0
	}
	if e.ExpressionTime > 0 {
		e.ExpressionTime -= dt
	}

	if e.BlinkDur > 0 {
		e.BlinkDur -= dt
		return
	}
	e.BlinkT -= dt
	if e.BlinkT <= 0 {
		e.BlinkDur = s.actions.BlinkDuration
		e.BlinkT = s.actions.BlinkIntervalMin +
			s.rng.Float64()*(s.actions.BlinkIntervalMax-s.actions.BlinkIntervalMin)
	}
}

// durationEpsilon 判定动作时长到达的容差（秒）
const durationEpsilon = 1e-9

func (s *ActorSystem) updateAction(a *actorParts, dt float64) {
	act := a.action
	kind, busy := act.Current.Gesture()
	if !busy {
		act.Elapsed = 0
		act.T = 0
		act.Reach = 0
		return
	}

	g := s.gestures.Get(kind)
	act.Elapsed += dt
	// 容差吸收浮点累加误差
	if act.Elapsed >= g.Duration-durationEpsilon {
		act.Elapsed = 0
		act.T = 0
		act.Current = types.ActionIdle
		act.Reach = 0
		return
	}
	act.T = act.Elapsed / g.Duration
	act.Reach = utils.ReachCurve(act.T, g.ReachFraction)
}

func (s *ActorSystem) updateReaction(a *actorParts, dt float64) {
	r := a.react
	if !r.Active {
		return
	}
	r.T += dt
	if r.T >= r.Duration {
		r.Active = false
		r.T = 0
	}
}

// perform 让角色进入某个动作
//
// 记录执行时刻、进度归零、设置闭眼笑计时并增加喜悦值（上限 1）。
// 调用方负责冷却和空闲判定。
func perform(a *actorParts, g *config.GestureConfig, kind types.GestureKind, now float64) {
	a.action.LastPerformedAt[kind] = now
	a.action.Current = types.ActionFor(kind)
	a.action.Elapsed = 0
	a.action.T = 0
	a.action.Reach = 0
	a.expr.ExpressionTime = g.ExpressionTime
	a.expr.Joy += g.JoyBoost
	if a.expr.Joy > 1 {
		a.expr.Joy = 1
	}
}
