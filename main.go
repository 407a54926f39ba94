package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	lnet "localsketch/internal/net"
	"localsketch/internal/sketch"
	"localsketch/internal/ui"
)

const defaultPort = 8788

func main() {
	var (
		join  = flag.String("join", "", `Board to join as "host:port", or "auto" to discover one. Empty hosts a new board.`)
		port  = flag.Int("port", defaultPort, "Port to host the board on.")
		debug = flag.Bool("debug", false, "Enable debug logging.")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	canvas := sketch.NewCanvas(1024, 768)
	canvas.SetOwner(sketch.NewSiteID())

	if *join == "" {
		runHost(canvas, *port, log)
	} else {
		runPeer(canvas, *join, log)
	}
}

func runHost(canvas *sketch.Canvas, port int, log zerolog.Logger) {
	log.Info().Int("port", port).Msg("starting as host")

	var clock sketch.Clock
	site := canvas.Owner()
	hub := lnet.NewHub(log)

	shareLink := ""
	if ip, err := lnet.OutgoingIP(); err == nil {
		shareLink = fmt.Sprintf("%s:%d", ip, port)
	} else {
		log.Error().Err(err).Msg("no shareable address")
	}

	if server, err := lnet.Advertise(port); err != nil {
		log.Error().Err(err).Msg("mDNS advertise failed, share by link only")
	} else {
		defer server.Shutdown()
	}

	app := ui.New(canvas, ui.Config{
		Title:     "LocalSketch (hosting)",
		ShareLink: shareLink,
		Log:       log,
	})

	// Send the current board to every newcomer.
	hub.OnJoin = func(p *lnet.Peer) {
		msg := lnet.Message{
			Type:    lnet.MsgSync,
			Strokes: canvas.Snapshot(),
			Lamport: clock.Now(),
			Site:    site,
		}
		if err := p.Send(msg); err != nil {
			log.Error().Err(err).Msg("initial sync failed")
		}
	}

	hub.OnMessage = func(msg lnet.Message, origin *lnet.Peer) {
		clock.Witness(msg.Lamport)
		switch msg.Type {
		case lnet.MsgStroke:
			if msg.Stroke != nil {
				app.MergeStroke(*msg.Stroke)
			}
		case lnet.MsgClear:
			app.ClearOwner(msg.OwnerID)
		default:
			log.Debug().Str("type", string(msg.Type)).Msg("ignoring message")
			return
		}
		hub.Broadcast(msg, origin) // relay to everyone else
	}

	go func() {
		if err := hub.Listen(port); err != nil {
			log.Fatal().Err(err).Msg("cannot serve board")
		}
	}()

	board := app.Board()
	board.OnStroke = func(s sketch.Stroke) {
		log.Debug().Int("points", len(s.Points)).Float32("length", s.Length()).Msg("stroke finished")
		hub.Broadcast(lnet.Message{
			Type:    lnet.MsgStroke,
			Stroke:  &s,
			Lamport: clock.Tick(),
			Site:    site,
		}, nil)
	}
	board.OnClear = func() {
		hub.Broadcast(lnet.Message{
			Type:    lnet.MsgClear,
			OwnerID: "all",
			Lamport: clock.Tick(),
			Site:    site,
		}, nil)
	}

	app.Run()
}

func runPeer(canvas *sketch.Canvas, join string, log zerolog.Logger) {
	log.Info().Str("join", join).Msg("starting as peer")

	addr := join
	if join == "auto" {
		found, err := lnet.Discover(3 * time.Second)
		if err != nil {
			log.Fatal().Err(err).Msg("discovery failed")
		}
		addr = found
		log.Info().Str("addr", addr).Msg("discovered board")
	}

	client, err := lnet.Dial(addr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot join board")
	}
	defer client.Close()

	var clock sketch.Clock
	site := canvas.Owner()

	app := ui.New(canvas, ui.Config{
		Title: "LocalSketch - " + addr,
		Log:   log,
	})

	board := app.Board()
	board.OnStroke = func(s sketch.Stroke) {
		msg := lnet.Message{
			Type:    lnet.MsgStroke,
			Stroke:  &s,
			Lamport: clock.Tick(),
			Site:    site,
		}
		if err := client.Send(msg); err != nil {
			log.Error().Err(err).Msg("failed to send stroke")
		}
	}
	board.OnClear = func() {
		msg := lnet.Message{
			Type:    lnet.MsgClear,
			OwnerID: "all",
			Lamport: clock.Tick(),
			Site:    site,
		}
		if err := client.Send(msg); err != nil {
			log.Error().Err(err).Msg("failed to send clear")
		}
	}

	go func() {
		app.SetStatus("Connected to " + addr)
		err := client.ReadLoop(func(msg lnet.Message) {
			clock.Witness(msg.Lamport)
			switch msg.Type {
			case lnet.MsgSync:
				app.ReplaceBoard(msg.Strokes)
			case lnet.MsgStroke:
				if msg.Stroke != nil && msg.Site != site {
					app.MergeStroke(*msg.Stroke)
				}
			case lnet.MsgClear:
				app.ClearOwner(msg.OwnerID)
			}
		})
		app.SetStatus(fmt.Sprintf("Disconnected: %v", err))
	}()

	app.Run()
}
