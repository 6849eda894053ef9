// Package discord connects the bot to a Discord guild: it turns gateway
// events into bot messages and implements the history, sink and name ports
package discord

import (
	"context"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	perr "wordlebot/internal/platform/errors"
	"wordlebot/internal/platform/logger"
	str "wordlebot/internal/platform/strings"

	dom "wordlebot/internal/services/bot/domain"
)

// pageSize is the most messages Discord returns per history request
const pageSize = 100

// Intents the bot needs: message content to read share texts, members to
// resolve names
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsGuildMembers

// Options configures the Client
type Options struct {
	Token   string
	GuildID string
}

// api is the subset of *discordgo.Session the ports use
type api interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
}

// Client wraps a discordgo session
type Client struct {
	session *discordgo.Session
	api     api
	opts    Options
	log     logger.Logger
}

// New creates a session; nothing connects until Run
func New(o Options) (*Client, error) {
	if strings.TrimSpace(o.Token) == "" {
		return nil, perr.WithField(perr.InvalidArgf("discord token is required"), "token")
	}
	s, err := discordgo.New("Bot " + o.Token)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "create discord session")
	}
	s.Identify.Intents = Intents
	return &Client{session: s, api: s, opts: o, log: *logger.Named("discord")}, nil
}

// Run opens the gateway, hands every guild message to on and blocks until
// ctx is done
func (c *Client) Run(ctx context.Context, on func(context.Context, dom.Message)) error {
	remove := c.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m == nil || m.Message == nil {
			return
		}
		if c.opts.GuildID != "" && m.GuildID != c.opts.GuildID {
			return
		}
		on(ctx, toMessage(m.Message))
	})
	defer remove()

	if err := c.session.Open(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "open discord gateway")
	}
	c.log.Info().Str("guild_id", c.opts.GuildID).Msg("gateway open")

	<-ctx.Done()
	if err := c.session.Close(); err != nil {
		c.log.Warn().Err(err).Msg("close gateway")
	}
	return ctx.Err()
}

// SelfID is the bot user id once the gateway is ready
func (c *Client) SelfID() string {
	if c.session.State == nil || c.session.State.User == nil {
		return ""
	}
	return c.session.State.User.ID
}

// History pages backwards through a channel and returns up to limit of its
// latest messages, oldest first
func (c *Client) History(ctx context.Context, channelID string, limit int) ([]dom.Message, error) {
	out := make([]dom.Message, 0, max(limit, 0))
	before := ""
	for len(out) < limit {
		page, err := c.api.ChannelMessages(channelID, min(pageSize, limit-len(out)), before, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read channel %s", channelID)
		}
		for _, m := range page {
			out = append(out, toMessage(m))
		}
		if len(page) < pageSize {
			break
		}
		before = page[len(page)-1].ID
	}
	slices.Reverse(out)
	return out, nil
}

// Send posts text to a channel
func (c *Client) Send(ctx context.Context, channelID, text string) error {
	if _, err := c.api.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "send to channel %s", channelID)
	}
	return nil
}

// DisplayName returns the user's global name, then username. Lookup
// failures are logged and give ""; the bot supplies the fallback
func (c *Client) DisplayName(ctx context.Context, userID string) string {
	u, err := c.api.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("user_id", userID).Msg("resolve display name")
		return ""
	}
	return displayName(u)
}

func displayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	return str.FirstNonEmpty(u.GlobalName, u.Username)
}

func toMessage(m *discordgo.Message) dom.Message {
	out := dom.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Timestamp: m.Timestamp,
		Content:   m.Content,
	}
	if m.Author != nil {
		out.AuthorID = m.Author.ID
	}
	return out
}

// Ping fails until the gateway has received its ready event
func (c *Client) Ping(context.Context) error {
	if c.session == nil || !c.session.DataReady {
		return perr.Unavailablef("discord gateway not ready")
	}
	return nil
}
