package selfie

import (
	"context"
	"log"
	"time"

	"selfie-bot/internal/ai"
	"selfie-bot/internal/schedule"
)

// Sender delivers one post to every configured destination and reports how
// many accepted it. A partial delivery still counts as sent.
type Sender interface {
	Send(ctx context.Context, caption string, image []byte) (int, error)
}

// ImageRenderer turns an image prompt into picture bytes.
type ImageRenderer interface {
	Render(ctx context.Context, prompt string) ([]byte, error)
}

// Task is the posting loop: every tick it asks the engine for a decision,
// renders and delivers the post, and commits the consumed state only after
// at least one destination accepted it. A failed render or delivery leaves
// everything untouched for the next tick.
type Task struct {
	engine *Engine
	sender Sender
	images ImageRenderer
	chain  schedule.ModelChain

	captionModel string
	persona      string
	tick         time.Duration
}

func NewTask(engine *Engine, sender Sender, images ImageRenderer, chain schedule.ModelChain, captionModel, persona string, tick time.Duration) *Task {
	if tick <= 0 {
		tick = 5 * time.Minute
	}
	return &Task{
		engine:       engine,
		sender:       sender,
		images:       images,
		chain:        chain,
		captionModel: captionModel,
		persona:      persona,
		tick:         tick,
	}
}

// Run ticks until ctx is cancelled.
func (t *Task) Run(ctx context.Context) {
	log.Printf("[SELFIE] task loop started (tick %s)", t.tick)
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[SELFIE] task loop stopped")
			return
		case now := <-ticker.C:
			t.runOnce(ctx, now)
		}
	}
}

func (t *Task) runOnce(ctx context.Context, now time.Time) {
	d, err := t.engine.Decide(ctx, now)
	if err != nil {
		log.Printf("[ERR] selfie decision: %v", err)
		return
	}
	if d.Kind == DecideNone {
		return
	}
	log.Printf("[SELFIE] firing %s (%s)", d.Kind, d.Reason)

	image, err := t.images.Render(ctx, d.Prompt)
	if err != nil {
		log.Printf("[WARN] image render failed, slot stays open: %v", err)
		return
	}

	caption := t.caption(ctx, d)

	sent, err := t.sender.Send(ctx, caption, image)
	if err != nil && sent == 0 {
		log.Printf("[WARN] delivery failed everywhere, slot stays open: %v", err)
		return
	}
	if err != nil {
		log.Printf("[WARN] partial delivery (%d ok): %v", sent, err)
	}

	if err := t.engine.Commit(d); err != nil {
		log.Printf("[ERR] commit after send: %v", err)
	}
}

// caption asks the model chain for a caption, degrading to the scene's
// suggested theme when the chain fails.
func (t *Task) caption(ctx context.Context, d *Decision) string {
	if d.Entry != nil && d.Entry.CaptionType == schedule.CaptionNone {
		return ""
	}

	res, err := t.chain.Generate(ctx, t.captionModel, captionMessages(t.persona, d))
	if err != nil {
		log.Printf("[WARN] caption generation failed: %v", err)
		return fallbackCaption(d)
	}
	return res.Text
}

var _ ImageRenderer = (*ai.ImageClient)(nil)
