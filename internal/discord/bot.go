package discord

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"selfie-bot/pkg/util"
)

// Bot is a Discord bot that only posts: it keeps one session open and fans a
// generated post out to the configured channels.
type Bot struct {
	dg       *discordgo.Session
	channels []string
	mu       sync.RWMutex
}

func NewBot(token string, channels []string) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	b := &Bot{dg: dg, channels: channels}
	b.configureIntents()
	dg.AddHandler(b.onReady)
	return b, nil
}

// Run opens the session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}
	log.Printf("[INFO] ✅ Discord bot %v is running, posting to %d channels.", botInfo.Username, len(b.channels))
}

// Send posts one image with its caption to every configured channel. The
// image is rendered once and reused for each destination. Returns how many
// channels accepted the post; the post counts as delivered when at least one
// did.
func (b *Bot) Send(ctx context.Context, caption string, image []byte) (int, error) {
	b.mu.RLock()
	channels := b.channels
	b.mu.RUnlock()

	if len(channels) == 0 {
		return 0, fmt.Errorf("no selfie channels configured")
	}

	errs := util.FanOut(ctx, channels, 4, func(_ context.Context, channelID string) error {
		_, err := b.dg.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Content: caption,
			Files: []*discordgo.File{{
				Name:        "selfie.jpg",
				ContentType: "image/jpeg",
				Reader:      bytes.NewReader(image),
			}},
		})
		return err
	})

	sent := 0
	var lastErr error
	for i, err := range errs {
		if err != nil {
			log.Printf("[WARN] send to channel %s failed: %v", channels[i], err)
			lastErr = err
			continue
		}
		sent++
	}

	if sent == 0 {
		return 0, fmt.Errorf("all %d channels rejected the post: %w", len(channels), lastErr)
	}
	return sent, nil
}
