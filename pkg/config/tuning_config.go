package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/lovepark/pkg/embedded"
	"github.com/decker502/lovepark/pkg/types"
	"gopkg.in/yaml.v3"
)

// EmbeddedTuningPath 内置数值配置在嵌入文件系统中的路径
const EmbeddedTuningPath = "data/tuning.yaml"

// TuningConfig 游戏数值配置
//
// 包含动作表、计分表、粒子参数、布局参数等所有可调数值。
// DefaultTuning() 给出权威默认值，data/tuning.yaml 是它的镜像，
// 用户配置文件只需写出想覆盖的字段。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	// MaxDeltaTime 单帧最大步长（秒），超过会被截断
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`

	Meter       MeterConfig       `yaml:"meter"`
	Actions     ActionsConfig     `yaml:"actions"`
	Gestures    GestureTable      `yaml:"gestures"`
	Layout      LayoutConfig      `yaml:"layout"`
	Particles   ParticlesConfig   `yaml:"particles"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Actors      []ActorConfig     `yaml:"actors"`
}

// MeterConfig 爱心进度条配置
type MeterConfig struct {
	// Max 满值，达到即触发庆祝
	Max float64 `yaml:"max"`
	// SmoothingRate 显示值追赶真实值的速率（每秒）
	SmoothingRate float64 `yaml:"smoothingRate"`
}

// ActionsConfig 角色动作状态机的公共参数
type ActionsConfig struct {
	// AllowPreempt 为 true（默认）时，冷却结束的新动作直接打断进行中的动作，
	// 同一帧按住的多个动作都会触发；为 false 时只有回到空闲后才能开始新动作
	AllowPreempt bool `yaml:"allowPreempt"`
	// JoyDecay 喜悦值每秒线性衰减量
	JoyDecay float64 `yaml:"joyDecay"`
	// BlinkIntervalMin/Max 眨眼间隔随机范围（秒）
	BlinkIntervalMin float64 `yaml:"blinkIntervalMin"`
	BlinkIntervalMax float64 `yaml:"blinkIntervalMax"`
	// BlinkDuration 闭眼持续时间（秒）
	BlinkDuration float64 `yaml:"blinkDuration"`
	// EyeLookRange 视线偏移达到满值时的水平距离
	EyeLookRange float64 `yaml:"eyeLookRange"`
	// ScreenPulseDecay 屏幕脉冲每秒衰减量
	ScreenPulseDecay float64 `yaml:"screenPulseDecay"`
}

// GestureTable 四种动作的配置表
type GestureTable struct {
	Kiss  GestureConfig `yaml:"kiss"`
	Hug   GestureConfig `yaml:"hug"`
	Blow  GestureConfig `yaml:"blow"`
	Heart GestureConfig `yaml:"heart"`
}

// Get 按动作种类返回配置
func (t *GestureTable) Get(kind types.GestureKind) *GestureConfig {
	switch kind {
	case types.GestureKiss:
		return &t.Kiss
	case types.GestureHug:
		return &t.Hug
	case types.GestureBlow:
		return &t.Blow
	case types.GestureHeart:
		return &t.Heart
	default:
		return nil
	}
}

// GestureConfig 单种动作的完整配置
//
// 一个动作的生命周期：冷却检查 → 播放动画（Duration 秒）→ 回到空闲。
// 计分规则：距离 < CloseRange 得 ClosePoints；距离 < Range 得 Points；
// 否则判定失败，得 MissPoints（仅抱抱有安慰分）。
type GestureConfig struct {
	// Cooldown 两次尝试之间的最短间隔（秒）
	Cooldown float64 `yaml:"cooldown"`
	// Duration 动画时长（秒）
	Duration float64 `yaml:"duration"`
	// ReachFraction 手臂伸展到顶所占的进度比例
	ReachFraction float64 `yaml:"reachFraction"`
	// ExpressionTime 表情（闭眼笑）持续时间
	ExpressionTime float64 `yaml:"expressionTime"`
	// JoyBoost 每次尝试增加的喜悦值
	JoyBoost float64 `yaml:"joyBoost"`

	// Range 成功判定距离（严格小于）
	Range float64 `yaml:"range"`
	// CloseRange 近距离加分判定距离（严格小于），0 表示无近距离档
	CloseRange float64 `yaml:"closeRange"`
	// Points 成功得分
	Points float64 `yaml:"points"`
	// ClosePoints 近距离成功得分
	ClosePoints float64 `yaml:"closePoints"`
	// FacingBonus 成功且面朝对方时的额外得分
	FacingBonus float64 `yaml:"facingBonus"`
	// MissPoints 失败时的安慰分，0 表示失败不计分
	MissPoints float64 `yaml:"missPoints"`

	// Reaction 成功时对方的反应类型（kiss/hug/heart）
	Reaction string `yaml:"reaction"`
	// ReactionDuration 对方反应持续时间（秒）
	ReactionDuration float64 `yaml:"reactionDuration"`
	// ScreenPulse 成功时设置的屏幕脉冲强度，0 表示不触发
	ScreenPulse float64 `yaml:"screenPulse"`

	// Burst 成功时的粒子爆发
	Burst BurstConfig `yaml:"burst"`
	// MissBurst 失败时的粒子（可选）
	MissBurst *BurstConfig `yaml:"missBurst,omitempty"`
}

// ReactionKind 返回成功时对方的反应种类
func (g *GestureConfig) ReactionKind() types.GestureKind {
	kind, _ := types.ParseGestureKind(g.Reaction)
	return kind
}

// 粒子爆发样式
const (
	// BurstStream 从嘴边飞向对方脸部
	BurstStream = "stream"
	// BurstRing 从两人中点向外围成一圈
	BurstRing = "ring"
	// BurstRise 从自己胸口向上飘起
	BurstRise = "rise"
)

// BurstConfig 爱心粒子爆发样式
//
// 所有比例字段都相对于发起者的宽/高，像素字段为绝对值。
type BurstConfig struct {
	Pattern string `yaml:"pattern"`
	// Count 固定数量；ExtraCount > 0 时额外随机增加 [0, ExtraCount) 个
	Count      int `yaml:"count"`
	ExtraCount int `yaml:"extraCount"`

	// stream：起点 = 中心 + (朝向*MouthX*宽, -MouthY*高) + 抖动
	MouthX       float64 `yaml:"mouthX"`
	MouthY       float64 `yaml:"mouthY"`
	SourceJitter Vec2    `yaml:"sourceJitter"`
	// stream：终点 = 对方中心 + (0, -TargetLift*高) + 抖动
	TargetLift   float64 `yaml:"targetLift"`
	TargetJitter Vec2    `yaml:"targetJitter"`

	// ring：圆心为两人中点上移 CenterLift 像素，半径随机 [RadiusMin, RadiusMax)
	CenterLift float64 `yaml:"centerLift"`
	RadiusMin  float64 `yaml:"radiusMin"`
	RadiusMax  float64 `yaml:"radiusMax"`

	// rise：从中心上方 RiseFrom 像素飘到 RiseTo 像素
	RiseFrom float64 `yaml:"riseFrom"`
	RiseTo   float64 `yaml:"riseTo"`

	// Colors 轮流或随机使用的颜色（十六进制）
	Colors []string `yaml:"colors"`
}

// Vec2 二维数值
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayoutConfig 场景布局配置
type LayoutConfig struct {
	// Margin 左右边界留白
	Margin float64 `yaml:"margin"`
	// GroundOffset 地面线距底部的距离
	GroundOffset float64 `yaml:"groundOffset"`
	// ActorHeightRatio 角色高度占画面高度的比例
	ActorHeightRatio float64 `yaml:"actorHeightRatio"`
	ActorMinHeight   float64 `yaml:"actorMinHeight"`
	ActorMaxHeight   float64 `yaml:"actorMaxHeight"`
	// MinSeparation 布局时右侧角色至少在左侧角色右方多少像素
	MinSeparation float64 `yaml:"minSeparation"`
}

// ParticlesConfig 三类粒子的物理参数
type ParticlesConfig struct {
	Heart    HeartParticleConfig `yaml:"heart"`
	Confetti ConfettiConfig      `yaml:"confetti"`
	Petal    PetalConfig         `yaml:"petal"`
}

// HeartParticleConfig 爱心粒子参数
type HeartParticleConfig struct {
	DurationMin float64 `yaml:"durationMin"`
	DurationMax float64 `yaml:"durationMax"`
	// Lift 飞行中点的最大上抬高度
	Lift    float64 `yaml:"lift"`
	SizeMin float64 `yaml:"sizeMin"`
	SizeMax float64 `yaml:"sizeMax"`
}

// ConfettiConfig 彩纸参数（速度单位为"每 1/60 秒像素"）
type ConfettiConfig struct {
	Gravity    float64  `yaml:"gravity"`
	Lifetime   float64  `yaml:"lifetime"`
	CullMargin float64  `yaml:"cullMargin"`
	Colors     []string `yaml:"colors"`
}

// PetalConfig 花瓣参数
type PetalConfig struct {
	Cap         int      `yaml:"cap"`
	SpawnChance float64  `yaml:"spawnChance"`
	CullMargin  float64  `yaml:"cullMargin"`
	Colors      []string `yaml:"colors"`
	// PrimaryBias 使用第一种颜色的概率
	PrimaryBias float64 `yaml:"primaryBias"`
}

// CelebrationConfig 庆祝效果参数
type CelebrationConfig struct {
	BurstCount       int     `yaml:"burstCount"`
	BurstHeightRatio float64 `yaml:"burstHeightRatio"`
	TrickleCount     int     `yaml:"trickleCount"`
	TrickleY         float64 `yaml:"trickleY"`
	// Title/Subtitle 庆祝画面上的文字
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// ActorConfig 角色的固定身份配置
type ActorConfig struct {
	Role string `yaml:"role"`
	Name string `yaml:"name"`
	// StartX 初始X坐标；负值表示距右边界的距离
	StartX   float64           `yaml:"startX"`
	Facing   float64           `yaml:"facing"`
	Tint     TintConfig        `yaml:"tint"`
	Controls map[string]string `yaml:"controls"`
}

// TintConfig 角色配色
type TintConfig struct {
	Body  string `yaml:"body"`
	Belly string `yaml:"belly"`
	Paw   string `yaml:"paw"`
}

// LoadTuning 加载数值配置
//
// 文件内容覆盖在 DefaultTuning() 之上，未写出的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 合并并校验后的配置
//   - error: 读取、解析或校验失败
func LoadTuning(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuning(data)
}

// ResolveTuning 按优先级取得数值配置
//
// path 非空时读取该文件；否则使用嵌入的 data/tuning.yaml；
// 嵌入文件系统未初始化时（例如终端版）直接使用 DefaultTuning()。
func ResolveTuning(path string) (*TuningConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading tuning from %s", path)
		return LoadTuning(path)
	}
	if embedded.Exists(EmbeddedTuningPath) {
		data, err := embedded.ReadFile(EmbeddedTuningPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded tuning: %w", err)
		}
		log.Printf("[Config] Using embedded %s", EmbeddedTuningPath)
		return ParseTuning(data)
	}
	log.Printf("[Config] Using built-in default tuning")
	return DefaultTuning(), nil
}

// ParseTuning 从 YAML 数据解析数值配置
func ParseTuning(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *TuningConfig) Validate() error {
	if c.MaxDeltaTime <= 0 {
		return fmt.Errorf("maxDeltaTime must be positive, got %.3f", c.MaxDeltaTime)
	}
	if c.Meter.Max <= 0 {
		return fmt.Errorf("meter.max must be positive, got %.1f", c.Meter.Max)
	}
	if c.Meter.SmoothingRate <= 0 {
		return fmt.Errorf("meter.smoothingRate must be positive, got %.2f", c.Meter.SmoothingRate)
	}
	if c.Actions.BlinkIntervalMin > c.Actions.BlinkIntervalMax {
		return fmt.Errorf("blink interval invalid: min(%.2f) > max(%.2f)",
			c.Actions.BlinkIntervalMin, c.Actions.BlinkIntervalMax)
	}
	if c.Actions.EyeLookRange <= 0 {
		return fmt.Errorf("actions.eyeLookRange must be positive")
	}

	for _, kind := range types.AllGestures {
		if err := c.Gestures.Get(kind).validate(); err != nil {
			return fmt.Errorf("gesture %s: %w", kind, err)
		}
	}

	if c.Particles.Heart.DurationMin <= 0 || c.Particles.Heart.DurationMin > c.Particles.Heart.DurationMax {
		return fmt.Errorf("heart particle duration range invalid: [%.2f, %.2f]",
			c.Particles.Heart.DurationMin, c.Particles.Heart.DurationMax)
	}
	if c.Particles.Confetti.Lifetime <= 0 {
		return fmt.Errorf("confetti lifetime must be positive")
	}
	if c.Particles.Petal.Cap < 0 {
		return fmt.Errorf("petal cap must not be negative")
	}
	if err := validateColors(c.Particles.Confetti.Colors); err != nil {
		return fmt.Errorf("confetti colors: %w", err)
	}
	if err := validateColors(c.Particles.Petal.Colors); err != nil {
		return fmt.Errorf("petal colors: %w", err)
	}

	if c.Layout.ActorMinHeight <= 0 || c.Layout.ActorMinHeight > c.Layout.ActorMaxHeight {
		return fmt.Errorf("actor height range invalid: [%.1f, %.1f]",
			c.Layout.ActorMinHeight, c.Layout.ActorMaxHeight)
	}

	if len(c.Actors) != len(types.AllRoles) {
		return fmt.Errorf("expected %d actors, got %d", len(types.AllRoles), len(c.Actors))
	}
	seen := make(map[string]bool)
	for _, a := range c.Actors {
		if _, ok := ParseRole(a.Role); !ok {
			return fmt.Errorf("unknown actor role %q", a.Role)
		}
		if seen[a.Role] {
			return fmt.Errorf("duplicate actor role %q", a.Role)
		}
		seen[a.Role] = true
		if err := validateColors([]string{a.Tint.Body, a.Tint.Belly, a.Tint.Paw}); err != nil {
			return fmt.Errorf("actor %s tint: %w", a.Role, err)
		}
	}
	return nil
}

func (g *GestureConfig) validate() error {
	if g.Cooldown <= 0 {
		return fmt.Errorf("cooldown must be positive, got %.2f", g.Cooldown)
	}
	if g.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %.2f", g.Duration)
	}
	if g.ReachFraction <= 0 || g.ReachFraction >= 1 {
		return fmt.Errorf("reachFraction must be in (0,1), got %.2f", g.ReachFraction)
	}
	if g.Range <= 0 {
		return fmt.Errorf("range must be positive, got %.1f", g.Range)
	}
	if g.CloseRange > g.Range {
		return fmt.Errorf("closeRange(%.1f) > range(%.1f)", g.CloseRange, g.Range)
	}
	if _, ok := types.ParseGestureKind(g.Reaction); !ok {
		return fmt.Errorf("unknown reaction %q", g.Reaction)
	}
	if g.ReactionDuration <= 0 {
		return fmt.Errorf("reactionDuration must be positive")
	}
	if err := g.Burst.validate(); err != nil {
		return fmt.Errorf("burst: %w", err)
	}
	if g.MissBurst != nil {
		if err := g.MissBurst.validate(); err != nil {
			return fmt.Errorf("missBurst: %w", err)
		}
	}
	return nil
}

func (b *BurstConfig) validate() error {
	switch b.Pattern {
	case BurstStream, BurstRing, BurstRise:
	default:
		return fmt.Errorf("unknown pattern %q", b.Pattern)
	}
	if b.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", b.Count)
	}
	if b.RadiusMin > b.RadiusMax {
		return fmt.Errorf("radius range invalid: [%.1f, %.1f]", b.RadiusMin, b.RadiusMax)
	}
	return validateColors(b.Colors)
}

// ParseRole 将配置中的角色名解析为角色标签
func ParseRole(name string) (types.Role, bool) {
	for _, r := range types.AllRoles {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}

// ActorFor 返回指定角色的配置
func (c *TuningConfig) ActorFor(role types.Role) (*ActorConfig, bool) {
	for i := range c.Actors {
		if c.Actors[i].Role == role.String() {
			return &c.Actors[i], true
		}
	}
	return nil, false
}
