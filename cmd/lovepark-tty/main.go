// lovepark-tty 在终端里运行爱心公园
//
// 用法:
//
//	go run ./cmd/lovepark-tty [-tuning data/tuning.yaml] [-seed 42] [-mute] [-log lovepark.log]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/session"
	"github.com/decker502/lovepark/pkg/tty"
)

const appName = "lovepark"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lovepark-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	tuningPath := flag.String("tuning", env.TuningPath, "数值配置文件路径（为空则使用内置默认值）")
	seed := flag.Int64("seed", env.Seed, "随机种子（0 表示使用当前时间）")
	mute := flag.Bool("mute", env.Mute, "关闭提示音")
	logPath := flag.String("log", "", "日志文件路径（终端被画面占用，日志只能写文件）")
	flag.Parse()

	// 画面占用了终端，日志要么写文件要么丢弃
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	tuning, err := config.ResolveTuning(*tuningPath)
	if err != nil {
		return err
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	storage, err := game.OpenSettingsStorage(appName)
	if err != nil {
		log.Printf("[TTY] Warning: %v (settings will not be saved)", err)
	}
	settings := game.NewSettingsManager(storage).GetSettings()

	// 终端版固定使用默认逻辑尺寸，渲染时按比例缩放到字符网格
	sess, err := session.New(tuning, rand.New(rand.NewSource(*seed)),
		config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	var chime *tty.Chime
	if settings.SoundEnabled {
		chime = tty.NewChime(settings.SoundVolume, *mute)
		if err := chime.Initialize(); err != nil {
			// 没有声卡也可以玩
			log.Printf("[TTY] Audio initialization failed: %v", err)
		}
		defer chime.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := tty.NewRunner(screen, sess, tty.Options{
		Chime:    chime,
		ShowHelp: settings.ShowHelp,
	})
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
