package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lens-project/lens-engine-sub000/internal/app"
	"github.com/lens-project/lens-engine-sub000/internal/config"
	"github.com/lens-project/lens-engine-sub000/internal/domain"
	"github.com/lens-project/lens-engine-sub000/internal/logging"
)

func main() {
	articlesPath := flag.String("articles", "-", "JSON article list; '-' reads stdin")
	mood := flag.String("mood", "", "reader mood: focused, relaxed, curious, tired")
	duration := flag.String("duration", "", "reading budget: quick, medium, deep")
	initCriteria := flag.Bool("init-criteria", false, "write the example criteria file and exit")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	application := app.New(cfg, logger)

	if *initCriteria {
		path, err := application.WriteExampleCriteria()
		if err != nil {
			logger.Error("write example criteria", "error", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	rctx := domain.ContextFromTime(time.Now())
	rctx.Mood = domain.Mood(*mood)
	rctx.ReadingDuration = domain.ReadingDuration(*duration)

	var in io.Reader = os.Stdin
	if *articlesPath != "-" {
		f, err := os.Open(*articlesPath)
		if err != nil {
			logger.Error("open articles file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := application.RankReader(context.Background(), in, rctx); err != nil {
		logger.Error("ranking failed", "error", err)
		os.Exit(1)
	}
}
