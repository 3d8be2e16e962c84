package game

// Celebration 庆祝状态
//
// 单向状态机：Inactive → Active，会话内只会激活一次，
// 只有开始新会话才能回到 Inactive。
type Celebration struct {
	active  bool
	elapsed float64
}

// TryActivate 若尚未激活则激活，返回本次调用是否完成了激活
func (c *Celebration) TryActivate() bool {
	if c.active {
		return false
	}
	c.active = true
	c.elapsed = 0
	return true
}

// Update 激活后累计持续时间
func (c *Celebration) Update(dt float64) {
	if c.active {
		c.elapsed += dt
	}
}

// Reset 回到未激活状态（仅在新会话开始时调用）
func (c *Celebration) Reset() {
	c.active = false
	c.elapsed = 0
}

// IsActive 是否处于庆祝中
func (c *Celebration) IsActive() bool { return c.active }

// Elapsed 激活以来经过的时间（秒）
func (c *Celebration) Elapsed() float64 { return c.elapsed }
