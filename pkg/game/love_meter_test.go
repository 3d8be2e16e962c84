package game

import (
	"math"
	"math/rand"
	"testing"
)

// TestLoveMeterAddClamped 任意顺序的加法结果都在 [0, max] 内
func TestLoveMeterAddClamped(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		want   float64
	}{
		{"普通累加", []float64{5, 9, 18}, 32},
		{"超过满值", []float64{60, 60}, 100},
		{"不会为负", []float64{-10}, 0},
		{"先满后减", []float64{150, -30}, 70},
		{"先负后加", []float64{-50, 20}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLoveMeter(100, 7)
			for _, p := range tt.points {
				m.Add(p)
			}
			if m.Value() != tt.want {
				t.Errorf("Value() = %v, want %v", m.Value(), tt.want)
			}
		})
	}
}

// TestLoveMeterAddNonNegativeMatchesClampedSum 全为非负分数时，结果等于截断后的总和
func TestLoveMeterAddNonNegativeMatchesClampedSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		m := NewLoveMeter(100, 7)
		sum := 0.0
		for i := 0; i < rng.Intn(30); i++ {
			p := float64(rng.Intn(20))
			sum += p
			m.Add(p)
			if m.Value() < 0 || m.Value() > 100 {
				t.Fatalf("value out of range: %v", m.Value())
			}
		}
		if want := math.Min(sum, 100); m.Value() != want {
			t.Fatalf("trial %d: Value() = %v, want %v", trial, m.Value(), want)
		}
	}
}

// TestLoveMeterDisplayConverges 显示值单调逼近真实值，不会越过
func TestLoveMeterDisplayConverges(t *testing.T) {
	m := NewLoveMeter(100, 7)
	m.Add(60)

	prev := m.DisplayValue()
	for i := 0; i < 5*60; i++ {
		m.Update(1.0 / 60.0)
		d := m.DisplayValue()
		if d < prev {
			t.Fatalf("display value decreased: %v -> %v", prev, d)
		}
		if d > m.Value() {
			t.Fatalf("display value overshot: %v > %v", d, m.Value())
		}
		prev = d
	}
	if math.Abs(m.DisplayValue()-60) > 1e-6 {
		t.Errorf("display value should converge to 60, got %v", m.DisplayValue())
	}
}

// TestLoveMeterDisplayLargeStep 巨大步长直接对齐，不越过
func TestLoveMeterDisplayLargeStep(t *testing.T) {
	m := NewLoveMeter(100, 7)
	m.Add(40)
	m.Update(10)
	if m.DisplayValue() != 40 {
		t.Errorf("DisplayValue() = %v, want 40", m.DisplayValue())
	}
}

// TestLoveMeterFullUsesRawValue 满值判定使用真实值而非显示值
func TestLoveMeterFullUsesRawValue(t *testing.T) {
	m := NewLoveMeter(100, 7)
	m.Add(100)
	if !m.IsFull() {
		t.Error("meter should be full by raw value")
	}
	if m.DisplayValue() >= 100 {
		t.Error("display value should still lag behind")
	}

	m.Reset()
	if m.Value() != 0 || m.DisplayValue() != 0 || m.IsFull() {
		t.Error("Reset should clear both values")
	}
}

func TestLoveMeterRatios(t *testing.T) {
	m := NewLoveMeter(100, 7)
	m.Add(25)
	if m.Ratio() != 0.25 {
		t.Errorf("Ratio() = %v, want 0.25", m.Ratio())
	}
	if m.DisplayRatio() != 0 {
		t.Errorf("DisplayRatio() = %v, want 0 before any update", m.DisplayRatio())
	}
	m.Add(500)
	if m.Ratio() != 1 {
		t.Errorf("Ratio() = %v, want 1 when full", m.Ratio())
	}
}
