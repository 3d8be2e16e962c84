package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lovepark/pkg/app"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/embedded"
	"github.com/decker502/lovepark/pkg/game"
)

const appName = "lovepark"

func main() {
	embedded.Init(dataFS)

	// 环境变量作为命令行参数的默认值，命令行优先
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("环境变量解析失败: %v", err)
	}

	verbose := flag.Bool("verbose", env.Verbose, "显示详细调试信息")
	tuningPath := flag.String("tuning", env.TuningPath, "数值配置文件路径（为空则使用内置配置）")
	seed := flag.Int64("seed", env.Seed, "随机种子（0 表示使用当前时间）")
	fullscreen := flag.Bool("fullscreen", env.Fullscreen, "全屏启动")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := config.ResolveTuning(*tuningPath)
	if err != nil {
		fatal("数值配置加载失败: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// 设置存储失败不影响游戏，进入降级模式
	storage, err := game.OpenSettingsStorage(appName)
	if err != nil {
		log.Printf("[Main] Warning: %v (settings will not be saved)", err)
	}
	settings := game.NewSettingsManager(storage)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Tuning:   tuning,
		Seed:     *seed,
		Settings: settings,
	})
	if err != nil {
		fatal("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if *fullscreen || settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		fatal("运行失败: %v", err)
	}
}

// fatal 在日志被静默时也要把致命错误输出到 stderr
func fatal(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
