package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"spiel/bot"
	"spiel/breakthrough"
	"spiel/communication/client"
	"spiel/communication/server"
	"spiel/config"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: spiel [-config file] <command> [flags]

commands:
  decode <id>     print the breakthrough move behind an action id
  encode          print the action id of a breakthrough move
  bots            list the opponents available for a game
  serve           serve a bot over HTTP
`

var registerOnce sync.Once

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, out io.Writer) int {
	flags := flag.NewFlagSet("spiel", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML settings file")
	flags.Usage = func() { fmt.Fprint(flags.Output(), usage) }
	if err := flags.Parse(args); err != nil {
		return 2
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	zerolog.SetGlobalLevel(settings.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	registerOnce.Do(func() { bot.Register("remote", client.Factory) })

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}
	cmd, rest := flags.Arg(0), flags.Args()[1:]

	var err error
	switch cmd {
	case "decode":
		err = decode(rest, out)
	case "encode":
		err = encode(rest, out)
	case "bots":
		err = listBots(rest, out, settings)
	case "serve":
		err = serve(ctx, rest, settings)
	default:
		flags.Usage()
		return 2
	}
	if err != nil {
		log.Error().Msgf("%s: %v", cmd, err)
		return 1
	}
	return 0
}

func decode(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	board := flags.Bool("board", false, "draw the move on the board")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("want exactly one action id")
	}
	id, err := strconv.Atoi(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("action id %q: %w", flags.Arg(0), err)
	}
	if !breakthrough.ActionID(id).Valid() {
		return fmt.Errorf("action id %d outside [0, %d]", id, breakthrough.NumActions-1)
	}

	move := breakthrough.Decode(breakthrough.ActionID(id))
	fmt.Fprintln(out, move)
	if *board {
		renderMove(out, move)
	}
	return nil
}

func encode(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("encode", flag.ContinueOnError)
	from := flags.String("from", "", "origin cell, e.g. a7")
	to := flags.String("to", "", "destination cell, e.g. b6")
	color := flags.String("color", "black", "mover color: black or white")
	occupant := flags.String("occupant", ".", "destination occupant: ., b or w")
	if err := flags.Parse(args); err != nil {
		return err
	}

	origin, err := breakthrough.ParseCell(*from)
	if err != nil {
		return err
	}
	dest, err := breakthrough.ParseCell(*to)
	if err != nil {
		return err
	}
	mover, err := breakthrough.ParseColor(*color)
	if err != nil {
		return err
	}
	occ, err := breakthrough.ParseOccupant(*occupant)
	if err != nil {
		return err
	}

	id := breakthrough.Encode(origin, dest, mover, occ)
	if id == breakthrough.Invalid {
		return fmt.Errorf("%s%s is not a single-step move", origin, dest)
	}
	fmt.Fprintln(out, int(id))
	return nil
}

func listBots(args []string, out io.Writer, settings config.Settings) error {
	flags := flag.NewFlagSet("bots", flag.ContinueOnError)
	gameName := flags.String("game", "breakthrough", "game name")
	if err := flags.Parse(args); err != nil {
		return err
	}
	configured, err := settings.Bots(*gameName)
	if err != nil {
		return err
	}
	for _, name := range bot.Opponents(configured) {
		fmt.Fprintln(out, name)
	}
	return nil
}

func serve(ctx context.Context, args []string, settings config.Settings) error {
	flags := flag.NewFlagSet("serve", flag.ContinueOnError)
	botConfig := flags.String("bot", "random", "bot configuration, e.g. random:seed=7")
	addr := flags.String("addr", settings.ListenAddr, "listen address")
	player := flags.Int("player", 1, "player index the bot is created for")
	if err := flags.Parse(args); err != nil {
		return err
	}
	b, err := bot.New(*player, *botConfig)
	if err != nil {
		return err
	}
	if _, ok := b.(*bot.Human); ok {
		return fmt.Errorf("human seats cannot be served")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.NewServer(*botConfig, b).Start(*addr) }()
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
