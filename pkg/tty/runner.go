package tty

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/session"
)

// DefaultFrameInterval 帧循环间隔（约 60 FPS）
const DefaultFrameInterval = 16 * time.Millisecond

// eventBuffer 输入事件缓冲区大小
const eventBuffer = 100

// Options 终端前端选项
type Options struct {
	// FrameInterval 帧间隔，<= 0 使用默认值
	FrameInterval time.Duration
	// HoldTimeout 按键按住判定超时，<= 0 使用默认值
	HoldTimeout time.Duration
	// Chime 提示音，可为 nil
	Chime *Chime
	// ShowHelp 启动时是否显示按键说明
	ShowHelp bool
}

// Runner 终端帧循环
//
// PollEvent 在单独的 goroutine 上阻塞读取事件，通过带缓冲的通道交给帧循环，
// 会话只在帧循环所在的 goroutine 上被修改。
type Runner struct {
	screen   tcell.Screen
	session  *session.Session
	input    *HoldInput
	renderer *Renderer
	chime    *Chime
	clock    *game.Clock
	interval time.Duration

	celebrated bool
}

// NewRunner 创建终端帧循环
func NewRunner(screen tcell.Screen, sess *session.Session, opts Options) *Runner {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	renderer := NewRenderer(sess.Config())
	renderer.ShowHelp = opts.ShowHelp

	r := &Runner{
		screen:   screen,
		session:  sess,
		input:    NewHoldInput(opts.HoldTimeout),
		renderer: renderer,
		chime:    opts.Chime,
		clock:    game.NewClock(sess.Config().MaxDeltaTime),
		interval: interval,
	}
	if r.chime != nil {
		sess.AddGestureListener(r.chime.OnGesture)
		renderer.Muted = r.chime.Muted()
	}
	return r
}

// Run 运行帧循环，直到用户退出或 ctx 结束
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(events)
				return
			}
			events <- ev
		}
	}()

	log.Printf("[TTY] Frame loop started (session %s)", r.session.ID())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.handleEvent(ev) {
				log.Printf("[TTY] Quit requested")
				return nil
			}

		case <-ticker.C:
			r.step(r.clock.Tick())
			r.screen.Clear()
			r.renderer.Draw(r.screen, r.session)
			r.screen.Show()
		}
	}
}

// handleEvent 处理一个 tcell 事件，返回 false 表示退出
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// handleKey 处理按键，返回 false 表示退出
//
// Esc / Ctrl-C 退出；R 重新开始；H 切换按键说明；M 切换静音；
// 其余按键交给 HoldInput。
func (r *Runner) handleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ch {
		case 'r', 'R':
			r.restart()
			return true
		case 'h', 'H':
			r.renderer.ShowHelp = !r.renderer.ShowHelp
			return true
		case 'm', 'M':
			if r.chime != nil {
				r.renderer.Muted = r.chime.ToggleMute()
			}
			return true
		}
	}
	r.input.HandleKey(key, ch)
	return true
}

// restart 重新开局并清空按键状态
func (r *Runner) restart() {
	if err := r.session.Start(); err != nil {
		log.Printf("[TTY] Failed to restart session: %v", err)
		return
	}
	r.input.Reset()
	r.clock.Reset()
	r.celebrated = false
}

// step 推进一帧，庆祝开始的那一帧播放琶音
func (r *Runner) step(dt float64) {
	r.session.Update(dt, r.input)

	active := r.session.Celebration().IsActive()
	if active && !r.celebrated && r.chime != nil {
		r.chime.Fanfare()
	}
	r.celebrated = active
}
