package config

// DefaultTuning 返回权威默认数值
//
// 动作表与计分表的数值是游戏规则本身，修改前请同步更新 data/tuning.yaml。
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		MaxDeltaTime: 0.05,
		Meter: MeterConfig{
			Max:           100,
			SmoothingRate: 7,
		},
		Actions: ActionsConfig{
			AllowPreempt:     true,
			JoyDecay:         0.25,
			BlinkIntervalMin: 1.6,
			BlinkIntervalMax: 4.2,
			BlinkDuration:    0.1,
			EyeLookRange:     300,
			ScreenPulseDecay: 0.7,
		},
		Gestures: GestureTable{
			Kiss: GestureConfig{
				Cooldown: 0.8, Duration: 0.9, ReachFraction: 0.5,
				ExpressionTime: 0.5, JoyBoost: 0.4,
				Range: 150, CloseRange: 95, Points: 5, ClosePoints: 9, FacingBonus: 2,
				Reaction: "kiss", ReactionDuration: 0.35,
				Burst: BurstConfig{
					Pattern: BurstStream, Count: 7, ExtraCount: 3,
					MouthX: 0.18, MouthY: 0.22, SourceJitter: Vec2{X: 34, Y: 18},
					TargetLift: 0.28, TargetJitter: Vec2{X: 28, Y: 26},
					Colors: []string{"#ff6fa3", "#ffb3c7"},
				},
			},
			Hug: GestureConfig{
				Cooldown: 1.4, Duration: 1.3, ReachFraction: 0.6,
				ExpressionTime: 0.7, JoyBoost: 0.6,
				Range: 110, Points: 18, ClosePoints: 18, MissPoints: 2,
				Reaction: "hug", ReactionDuration: 0.5, ScreenPulse: 0.28,
				Burst: BurstConfig{
					Pattern: BurstRing, Count: 18,
					CenterLift: 10, RadiusMin: 26, RadiusMax: 54,
					Colors: []string{"#ffb3c7"},
				},
				MissBurst: &BurstConfig{
					Pattern: BurstRise, Count: 1,
					RiseFrom: 26, RiseTo: 60,
					Colors: []string{"#ffd1dc"},
				},
			},
			Blow: GestureConfig{
				Cooldown: 0.9, Duration: 0.8, ReachFraction: 0.45,
				ExpressionTime: 0.45, JoyBoost: 0.35,
				Range: 180, CloseRange: 110, Points: 4, ClosePoints: 8,
				Reaction: "kiss", ReactionDuration: 0.35,
				Burst: BurstConfig{
					Pattern: BurstStream, Count: 6,
					MouthX: 0.08, MouthY: 0.24,
					TargetLift: 0.145, TargetJitter: Vec2{X: 40, Y: 30},
					Colors: []string{"#ffd1dc", "#ff8fb1"},
				},
			},
			Heart: GestureConfig{
				Cooldown: 1.2, Duration: 1.0, ReachFraction: 0.55,
				ExpressionTime: 0.6, JoyBoost: 0.5,
				Range: 160, CloseRange: 100, Points: 6, ClosePoints: 12,
				Reaction: "heart", ReactionDuration: 0.35,
				Burst: BurstConfig{
					Pattern: BurstRing, Count: 12,
					CenterLift: 16, RadiusMin: 18, RadiusMax: 40,
					Colors: []string{"#ffd1dc", "#ffb3c7"},
				},
			},
		},
		Layout: LayoutConfig{
			Margin:           40,
			GroundOffset:     130,
			ActorHeightRatio: 0.46,
			ActorMinHeight:   160,
			ActorMaxHeight:   360,
			MinSeparation:    80,
		},
		Particles: ParticlesConfig{
			Heart: HeartParticleConfig{
				DurationMin: 0.8, DurationMax: 1.4,
				Lift:    20,
				SizeMin: 12, SizeMax: 20,
			},
			Confetti: ConfettiConfig{
				Gravity:    0.08,
				Lifetime:   3.2,
				CullMargin: 24,
				Colors:     []string{"#ff6fa3", "#ffb3c7", "#ffd1dc", "#ffb86c", "#ff8fb1"},
			},
			Petal: PetalConfig{
				Cap:         42,
				SpawnChance: 0.05,
				CullMargin:  30,
				Colors:      []string{"#ffc1d8", "#ffe0eb"},
				PrimaryBias: 0.6,
			},
		},
		Celebration: CelebrationConfig{
			BurstCount:       220,
			BurstHeightRatio: 0.35,
			TrickleCount:     10,
			TrickleY:         -10,
			Title:            "VANTEEK",
			Subtitle:         "LOVE ACHIEVED!",
		},
		Actors: []ActorConfig{
			{
				Role: "bubu", Name: "Prateek", StartX: 160, Facing: 1,
				Tint: TintConfig{Body: "#f6c6d6", Belly: "#ffe5ef", Paw: "#f4a9c3"},
				Controls: map[string]string{
					"left": "a", "right": "d",
					"kiss": "f", "hug": "g", "blow": "q", "heart": "e",
				},
			},
			{
				Role: "dudu", Name: "Vanya", StartX: -280, Facing: -1,
				Tint: TintConfig{Body: "#ffffff", Belly: "#fff3f7", Paw: "#ffd1dc"},
				Controls: map[string]string{
					"left": "ArrowLeft", "right": "ArrowRight",
					"kiss": "k", "hug": "l", "blow": "i", "heart": "o",
				},
			},
		},
	}
}
