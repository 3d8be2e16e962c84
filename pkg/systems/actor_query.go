package systems

import (
	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/ecs"
)

// Pairing 角色配对表
//
// 角色之间不互相持有引用，系统通过配对表查询"对方"。
type Pairing interface {
	// Actors 按固定顺序（玩家1、玩家2）返回角色实体
	Actors() []ecs.EntityID
	// Partner 返回某个角色的对方
	Partner(id ecs.EntityID) (ecs.EntityID, bool)
}

// actorParts 一个角色实体的全部组件
type actorParts struct {
	id     ecs.EntityID
	pos    *components.PositionComponent
	actor  *components.ActorComponent
	action *components.ActionComponent
	react  *components.ReactionComponent
	expr   *components.ExpressionComponent
}

// getActor 读取角色的全部组件，缺任何一个都返回 false
func getActor(em *ecs.EntityManager, id ecs.EntityID) (*actorParts, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return nil, false
	}
	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	if !ok {
		return nil, false
	}
	action, ok := ecs.GetComponent[*components.ActionComponent](em, id)
	if !ok {
		return nil, false
	}
	react, ok := ecs.GetComponent[*components.ReactionComponent](em, id)
	if !ok {
		return nil, false
	}
	expr, ok := ecs.GetComponent[*components.ExpressionComponent](em, id)
	if !ok {
		return nil, false
	}
	return &actorParts{id: id, pos: pos, actor: actor, action: action, react: react, expr: expr}, true
}

func (a *actorParts) center() (float64, float64) {
	return a.actor.Center(a.pos)
}

// getPair 读取角色及其对方
func getPair(em *ecs.EntityManager, pairing Pairing, id ecs.EntityID) (self, other *actorParts, ok bool) {
	self, ok = getActor(em, id)
	if !ok {
		return nil, nil, false
	}
	otherID, ok := pairing.Partner(id)
	if !ok {
		return nil, nil, false
	}
	other, ok = getActor(em, otherID)
	if !ok {
		return nil, nil, false
	}
	return self, other, true
}
