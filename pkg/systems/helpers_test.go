package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/entities"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/types"
)

// testActorHeight 测试用角色高度（宽 160）
const testActorHeight = 200.0

// testPairing 测试用配对表：两个实体互为对方
type testPairing struct {
	ids []ecs.EntityID
}

func (p *testPairing) Actors() []ecs.EntityID { return p.ids }

func (p *testPairing) Partner(id ecs.EntityID) (ecs.EntityID, bool) {
	switch id {
	case p.ids[0]:
		return p.ids[1], true
	case p.ids[1]:
		return p.ids[0], true
	}
	return 0, false
}

// testWorld 两个角色的最小测试场景
type testWorld struct {
	em      *ecs.EntityManager
	cfg     *config.TuningConfig
	rng     *rand.Rand
	pairing *testPairing
	meter   *game.LoveMeter
	pulse   *game.ScreenPulse
	p1, p2  ecs.EntityID
}

// newTestWorld 创建默认配置下的两个角色，玩家1在左、玩家2在右，中心水平距离为 distance
func newTestWorld(t *testing.T, distance float64) *testWorld {
	t.Helper()
	cfg := config.DefaultTuning()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(1))

	ids := make([]ecs.EntityID, 0, 2)
	for i, role := range types.AllRoles {
		actorCfg, _ := cfg.ActorFor(role)
		x := 100 + float64(i)*distance
		id, err := entities.NewActorEntity(em, actorCfg, x, 200, testActorHeight, rng)
		if err != nil {
			t.Fatalf("failed to create actor %s: %v", role, err)
		}
		ids = append(ids, id)
	}

	return &testWorld{
		em:      em,
		cfg:     cfg,
		rng:     rng,
		pairing: &testPairing{ids: ids},
		meter:   game.NewLoveMeter(cfg.Meter.Max, cfg.Meter.SmoothingRate),
		pulse:   game.NewScreenPulse(cfg.Actions.ScreenPulseDecay),
		p1:      ids[0],
		p2:      ids[1],
	}
}

func (w *testWorld) newInteraction() *InteractionSystem {
	return NewInteractionSystem(w.em, w.pairing, w.cfg, w.meter, w.pulse, w.rng)
}

func (w *testWorld) actor(t *testing.T, id ecs.EntityID) *actorParts {
	t.Helper()
	a, ok := getActor(w.em, id)
	if !ok {
		t.Fatalf("actor %d missing components", id)
	}
	return a
}

func (w *testWorld) setFacing(t *testing.T, id ecs.EntityID, facing float64) {
	t.Helper()
	w.actor(t, id).actor.Facing = facing
}

func countHearts(em *ecs.EntityManager) int {
	return ecs.CountWith1[*components.HeartParticleComponent](em)
}
