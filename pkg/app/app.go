// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和加载配置。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/scenes"
	"github.com/decker502/lovepark/pkg/session"
	"github.com/decker502/lovepark/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Tuning 已校验的数值配置
	Tuning *config.TuningConfig
	// Seed 随机种子（粒子、眨眼等纯装饰随机量）
	Seed int64
	// Settings 显示偏好，可为 nil（不持久化）
	Settings *game.SettingsManager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	park                     *scenes.ParkScene
	settings                 *game.SettingsManager
	clock                    *game.Clock
	verbose                  bool
	width, height            int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Tuning == nil {
		return nil, errors.New("tuning config is required")
	}
	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	sess, err := session.New(cfg.Tuning, rand.New(rand.NewSource(cfg.Seed)),
		config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return nil, fmt.Errorf("会话创建失败: %w", err)
	}

	park := scenes.NewParkScene(sess, utils.NewKeyboardInput())
	park.SetShowHelp(settings.GetSettings().ShowHelp)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(park)
	log.Printf("[App] Park scene ready (session %s, seed %d)", sess.ID(), cfg.Seed)

	return &App{
		sceneManager: sceneManager,
		park:         park,
		settings:     settings,
		clock:        game.NewClock(cfg.Tuning.MaxDeltaTime),
		verbose:      cfg.Verbose,
		width:        config.GameWindowWidth,
		height:       config.GameWindowHeight,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if utils.IsKeyJustPressed("F11") {
		a.toggleFullscreen()
	}

	// H 切换按键说明
	if utils.IsKeyJustPressed("h") {
		a.park.SetShowHelp(a.settings.ToggleHelp())
		a.saveSettings()
	}

	// R 重新开始
	if utils.IsKeyJustPressed("r") {
		log.Printf("[App] Restart requested")
		a.sceneManager.RestartCurrent()
		a.clock.Reset()
	}

	a.sceneManager.Update(a.clock.Tick())
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
//
// 逻辑尺寸跟随窗口大小，场景据此重新布局角色和地面。
// 窗口最小化时（尺寸为 0）保持上一次的尺寸。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != a.width || outsideHeight != a.height) {
		a.width, a.height = outsideWidth, outsideHeight
		a.sceneManager.ResizeCurrent(float64(a.width), float64(a.height))
		log.Printf("[App] Layout %dx%d", a.width, a.height)
	}
	return a.width, a.height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
