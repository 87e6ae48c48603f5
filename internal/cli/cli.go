// Package cli implements the debox command line tool, a thin shell over the
// SDK that prints raw API responses.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/destars/debox-chat-go/debox"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type app struct {
	ctx    context.Context
	client *debox.Client
	out    io.Writer
}

func (a *app) print(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

type cmdUser struct {
	UserID string `arg:"" help:"DeBox user id."`
}

func (c *cmdUser) Run(a *app) error {
	resp, err := a.client.GetUserInfo(a.ctx, c.UserID)
	if err != nil {
		return err
	}
	return a.print(resp)
}

type cmdGroup struct {
	GroupID string `arg:"" help:"DeBox group id."`
}

func (c *cmdGroup) Run(a *app) error {
	resp, err := a.client.GetGroupInfo(a.ctx, c.GroupID)
	if err != nil {
		return err
	}
	return a.print(resp)
}

type cmdSend struct {
	ToUserID string `arg:"" help:"Recipient user id."`
	Message  string `arg:"" help:"Text to send."`
}

func (c *cmdSend) Run(a *app) error {
	resp, err := a.client.SendMessage(a.ctx, c.ToUserID, c.Message)
	if err != nil {
		return err
	}
	return a.print(resp)
}

type cmdSendGraphic struct {
	ToUserID string `arg:"" help:"Recipient user id."`
	Title    string `arg:"" help:"Card title."`
	Content  string `arg:"" help:"Card text."`
	ImageURL string `arg:"" help:"Card image URL."`
	Href     string `arg:"" help:"Link opened from the card."`
}

func (c *cmdSendGraphic) Run(a *app) error {
	resp, err := a.client.SendGraphicMessage(a.ctx, c.ToUserID, c.Title, c.Content, c.ImageURL, c.Href)
	if err != nil {
		return err
	}
	return a.print(resp)
}

type cmdGroupSend struct {
	GroupID  string `arg:"" help:"Target group id."`
	ToUserID string `arg:"" help:"User the message is addressed to."`
	Title    string `arg:"" help:"Message title."`
	Content  string `arg:"" help:"Text to send."`
}

func (c *cmdGroupSend) Run(a *app) error {
	resp, err := a.client.SendGroupTextMessage(a.ctx, c.GroupID, c.ToUserID, c.Title, c.Content)
	if err != nil {
		return err
	}
	return a.print(resp)
}

type cmdGroupSendGraphic struct {
	GroupID  string `arg:"" help:"Target group id."`
	ToUserID string `arg:"" help:"User the card is addressed to."`
	Title    string `arg:"" help:"Card title."`
	Content  string `arg:"" help:"Card text."`
	ImageURL string `arg:"" help:"Card image URL."`
	Href     string `arg:"" help:"Link opened from the card."`
}

func (c *cmdGroupSendGraphic) Run(a *app) error {
	resp, err := a.client.SendGroupGraphicMessage(a.ctx, c.GroupID, c.ToUserID, c.Title, c.Content, c.ImageURL, c.Href)
	if err != nil {
		return err
	}
	return a.print(resp)
}

// cmdInspect looks up a user and a group at the same time.
type cmdInspect struct {
	UserID  string `arg:"" help:"DeBox user id."`
	GroupID string `arg:"" help:"DeBox group id."`
}

type inspectResult struct {
	User  *debox.Response `json:"user"`
	Group *debox.Response `json:"group"`
}

func (c *cmdInspect) Run(a *app) error {
	var result inspectResult

	g, ctx := errgroup.WithContext(a.ctx)
	g.Go(func() error {
		resp, err := a.client.GetUserInfo(ctx, c.UserID)
		if err != nil {
			return fmt.Errorf("user '%s': %w", c.UserID, err)
		}
		result.User = resp
		return nil
	})
	g.Go(func() error {
		resp, err := a.client.GetGroupInfo(ctx, c.GroupID)
		if err != nil {
			return fmt.Errorf("group '%s': %w", c.GroupID, err)
		}
		result.Group = resp
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return a.print(result)
}

type cli struct {
	APIKey  string        `name:"api-key" help:"DeBox API key. Defaults to $DEBOX_API_KEY."`
	BaseURL string        `name:"base-url" default:"https://open.debox.pro" help:"DeBox open platform host."`
	Timeout time.Duration `default:"10s" help:"HTTP timeout per request."`
	Verbose bool          `short:"v" help:"Log requests on stderr."`

	User             cmdUser             `cmd:"" help:"Show a user's profile."`
	Group            cmdGroup            `cmd:"" help:"Show a group's info."`
	Send             cmdSend             `cmd:"" help:"Send a text message to a user."`
	SendGraphic      cmdSendGraphic      `cmd:"" help:"Send a graphic card to a user."`
	GroupSend        cmdGroupSend        `cmd:"" help:"Send a text message to a group."`
	GroupSendGraphic cmdGroupSendGraphic `cmd:"" help:"Send a graphic card to a group."`
	Inspect          cmdInspect          `cmd:"" help:"Show a user and a group together."`
}

// Config contains the configuration for the debox command.
type Config struct {
	Name        string
	Description string
	Exit        func(int)
	Stdout      io.Writer
	Stderr      io.Writer
}

func NewConfig() *Config {
	return &Config{
		Name:        "debox",
		Description: "Query DeBox users and groups and send robot messages.",
		Exit:        os.Exit,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Run parses args and executes the selected command. It takes the arguments
// instead of reading os.Args so commands can be driven from tests.
func Run(ctx context.Context, args []string, config *Config) (rc int, err error) {
	var c cli

	parser, err := kong.New(&c,
		kong.Name(config.Name),
		kong.Description(config.Description),
		kong.Exit(config.Exit),
		kong.Writers(config.Stdout, config.Stderr),
	)
	if err != nil {
		return 1, err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return 2, err
	}

	logger := zap.NewNop()
	if c.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return 1, err
		}
		defer logger.Sync()
	}

	client, err := debox.New(c.APIKey,
		debox.WithBaseURL(c.BaseURL),
		debox.WithTimeout(c.Timeout),
		debox.WithLogger(logger),
	)
	if err != nil {
		return 1, err
	}

	if err := kctx.Run(&app{ctx: ctx, client: client, out: config.Stdout}); err != nil {
		return 1, err
	}
	return 0, nil
}
