// Package actions performs the reader's side actions: sharing an
// article and bookmarking it.
package actions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/zacademygit/Zacademy-sub001/internal/logging"
)

// Payload is what gets shared.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Surface is the user-visible side of an action: the clipboard and the
// on-screen confirmation.
type Surface interface {
	WriteText(text string) error
	Confirm(message string)
}

// Platform is the optional native share capability. Available is
// probed on every share.
type Platform interface {
	Available() bool
	Invoke(ctx context.Context, p Payload) error
}

// Method names how an action was carried out.
type Method string

const (
	MethodNative    Method = "native"
	MethodClipboard Method = "clipboard"
	MethodBookmark  Method = "bookmark"
)

// Outcome describes what an action did.
type Outcome struct {
	Method    Method `json:"method"`
	Message   string `json:"message,omitempty"`
	Clipboard string `json:"clipboard,omitempty"`
}

// Messages is the confirmation copy shown to the user.
type Messages struct {
	Copied       string
	CopyFailed   string
	BookmarkSoon string
}

// DefaultMessages returns the site's Georgian confirmations.
func DefaultMessages() Messages {
	return Messages{
		Copied:       "ბმული დაკოპირდა!",
		CopyFailed:   "ბმულის კოპირება ვერ მოხერხდა.",
		BookmarkSoon: "სანიშნეებში შენახვა მალე დაემატება!",
	}
}

// DefaultShareTimeout bounds one native share invocation.
const DefaultShareTimeout = 10 * time.Second

// Sharer is one way of carrying out a share.
type Sharer interface {
	Share(ctx context.Context, p Payload, surface Surface) Outcome
}

// Gateway chooses a Sharer per call and runs bookmarks.
type Gateway struct {
	platform Platform
	messages Messages
	logger   *slog.Logger
	timeout  time.Duration
	inflight sync.WaitGroup
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithMessages replaces the confirmation copy.
func WithMessages(m Messages) Option {
	return func(g *Gateway) { g.messages = m }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithShareTimeout bounds native share invocations.
func WithShareTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGateway returns a gateway. platform may be nil, in which case every
// share falls back to the clipboard.
func NewGateway(platform Platform, opts ...Option) *Gateway {
	g := &Gateway{
		platform: platform,
		messages: DefaultMessages(),
		logger:   logging.Discard(),
		timeout:  DefaultShareTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Share shares p through the native capability when it is available,
// otherwise through the clipboard.
func (g *Gateway) Share(ctx context.Context, p Payload, surface Surface) Outcome {
	return g.sharer().Share(ctx, p, surface)
}

func (g *Gateway) sharer() Sharer {
	if g.platform != nil && g.platform.Available() {
		return &NativeCapability{gateway: g}
	}
	return &ClipboardFallback{messages: g.messages, logger: g.logger}
}

// Messages returns the confirmations the gateway shows.
func (g *Gateway) Messages() Messages {
	return g.messages
}

// Bookmark confirms that bookmarks are coming soon. Nothing is stored.
func (g *Gateway) Bookmark(surface Surface) Outcome {
	surface.Confirm(g.messages.BookmarkSoon)
	return Outcome{Method: MethodBookmark, Message: g.messages.BookmarkSoon}
}

// Wait blocks until in-flight native shares finish or ctx ends.
func (g *Gateway) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NativeCapability hands the payload to the platform in the background.
// The caller never waits for the result; failures are only logged.
type NativeCapability struct {
	gateway *Gateway
}

func (n *NativeCapability) Share(ctx context.Context, p Payload, _ Surface) Outcome {
	g := n.gateway
	detached := context.WithoutCancel(ctx)

	g.inflight.Add(1)
	go func() {
		defer g.inflight.Done()
		ctx, cancel := context.WithTimeout(detached, g.timeout)
		defer cancel()
		if err := g.platform.Invoke(ctx, p); err != nil {
			g.logger.Warn("share capability failed", "url", p.URL, "error", err)
			return
		}
		g.logger.Debug("shared through platform", "url", p.URL)
	}()

	return Outcome{Method: MethodNative}
}

// ClipboardFallback copies the payload URL and confirms synchronously.
type ClipboardFallback struct {
	messages Messages
	logger   *slog.Logger
}

func (c *ClipboardFallback) Share(_ context.Context, p Payload, surface Surface) Outcome {
	if err := surface.WriteText(p.URL); err != nil {
		c.logger.Warn("clipboard write failed", "url", p.URL, "error", err)
		surface.Confirm(c.messages.CopyFailed)
		return Outcome{Method: MethodClipboard, Message: c.messages.CopyFailed}
	}
	surface.Confirm(c.messages.Copied)
	return Outcome{Method: MethodClipboard, Message: c.messages.Copied, Clipboard: p.URL}
}
