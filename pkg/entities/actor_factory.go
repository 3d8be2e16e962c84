package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/types"
)

// 初始眨眼倒计时范围
const (
	initialBlinkMin   = 0.6
	initialBlinkRange = 2.4
)

// allControls 所有需要绑定的控制项
var allControls = []types.Control{
	types.ControlLeft, types.ControlRight,
	types.ControlKiss, types.ControlHug, types.ControlBlow, types.ControlHeart,
}

// NewActorEntity 创建角色实体
//
// 角色以空闲状态、所有冷却就绪的状态出生。尺寸和位置由会话布局时设置，
// 这里只给出配置中的初始X（负值表示距右边界的距离，由调用方换算）。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 角色配置（身份、配色、按键）
//   - x, y: 初始左上角坐标
//   - height: 初始高度
//   - rng: 随机数源（眨眼节奏）
//
// 返回:
//   - ecs.EntityID: 角色实体ID
//   - error: 配置中的角色名或颜色无效时返回错误
func NewActorEntity(em *ecs.EntityManager, cfg *config.ActorConfig, x, y, height float64, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	role, ok := config.ParseRole(cfg.Role)
	if !ok {
		return 0, fmt.Errorf("unknown actor role %q", cfg.Role)
	}

	tint, err := parseTint(cfg.Tint)
	if err != nil {
		return 0, fmt.Errorf("actor %s: %w", cfg.Role, err)
	}

	controls := make(map[types.Control]string, len(allControls))
	for _, c := range allControls {
		if key, ok := cfg.Controls[c.String()]; ok {
			controls[c] = key
		}
	}

	facing := cfg.Facing
	if facing == 0 {
		facing = 1
	}

	actor := &components.ActorComponent{
		Role:     role,
		Name:     cfg.Name,
		Facing:   facing,
		Tint:     tint,
		Controls: controls,
	}
	actor.SetSize(height)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, actor)
	em.AddComponent(id, components.NewActionComponent())
	em.AddComponent(id, &components.ReactionComponent{})
	em.AddComponent(id, &components.ExpressionComponent{
		BlinkT: initialBlinkMin + rng.Float64()*initialBlinkRange,
	})
	return id, nil
}

func parseTint(t config.TintConfig) (components.ActorTint, error) {
	body, err := config.ParseColor(t.Body)
	if err != nil {
		return components.ActorTint{}, err
	}
	belly, err := config.ParseColor(t.Belly)
	if err != nil {
		return components.ActorTint{}, err
	}
	paw, err := config.ParseColor(t.Paw)
	if err != nil {
		return components.ActorTint{}, err
	}
	return components.ActorTint{Body: body, Belly: belly, Paw: paw}, nil
}
