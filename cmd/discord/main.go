// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"selfie-bot/internal/ai"
	"selfie-bot/internal/config"
	"selfie-bot/internal/discord"
	"selfie-bot/internal/schedule"
	"selfie-bot/internal/selfie"
	v "selfie-bot/internal/version"
	"selfie-bot/pkg/jobmgr"
)

func main() {
	log.Printf("[INFO] Starting %v...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	state, err := selfie.NewState(filepath.Join(cfg.DataDir, "trigger_state.json"))
	if err != nil {
		log.Fatal(err)
	}
	defer state.Close()

	chain := ai.NewChain()
	planner, err := ai.NewProvider(cfg.AIProvider)
	if err != nil {
		log.Fatal(err)
	}
	chain.Register(planner, ai.RolePlanner, ai.RoleReplyer)

	store := schedule.NewStore(filepath.Join(cfg.DataDir, "schedules"))
	gen := schedule.NewGenerator(store, chain, schedule.GeneratorConfig{
		Model:         cfg.ScheduleModel,
		PersonaText:   cfg.PersonaText,
		Lifestyle:     cfg.PersonaLifestyle,
		RetentionDays: cfg.ScheduleRetentionDays,
		FailureDir:    filepath.Join(cfg.DataDir, "fallback_packages", "schedule"),
	})

	engine := selfie.NewEngine(gen, store, state, selfie.EngineConfig{
		TriggerTimes:       cfg.TriggerTimes,
		Weather:            cfg.Weather,
		Holiday:            cfg.Holiday,
		SupplementEnabled:  cfg.SupplementEnabled,
		SupplementInterval: cfg.SupplementInterval(),
		SupplementChance:   cfg.SupplementProbability,
		SleepStart:         cfg.SleepStart,
		SleepEnd:           cfg.SleepEnd,
	})

	bot, err := discord.NewBot(cfg.DiscordToken, cfg.SelfieChannels)
	if err != nil {
		log.Fatal(err)
	}

	task := selfie.NewTask(engine, bot, ai.NewImageClient(cfg.ImageModel), chain, cfg.CaptionModel, cfg.PersonaText, cfg.TickInterval())

	jobs := jobmgr.NewManager(func(msg string) { log.Println("[JOB]", msg) })
	defer jobs.StopAll()
	if err := jobs.StartAsync("selfie-task", func(jobCtx context.Context) error {
		task.Run(jobCtx)
		return nil
	}); err != nil {
		log.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
