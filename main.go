package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"

	"riftwalker/pkg/game/devtools"
	"riftwalker/pkg/game/generator"
	"riftwalker/pkg/game/renderer"
	"riftwalker/pkg/game/renderer/ebiten"
	"riftwalker/pkg/game/renderer/tui"
	"riftwalker/pkg/game/state"
	"riftwalker/pkg/logger"
	"riftwalker/pkg/server"
)

const defaultAddr = ":8080"

func initGettext(localesDir, lang string) {
	gotext.Configure(localesDir, lang, "default")
}

func main() {
	mode := flag.String("mode", "tui", "one of tui, ebiten, dump, json, serve")
	width := flag.Int("width", 60, "tilemap width in cells")
	height := flag.Int("height", 40, "tilemap height in cells")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	tileSize := flag.Float64("tile-size", 32, "pixels per cell for room centres")
	facing := flag.Bool("facing-doorways", false, "place doorways on the wall facing the neighbour instead of the room centre")
	lang := flag.String("lang", "en", "message language")
	locales := flag.String("locales", "locales", "directory holding <lang>/default.po")
	addr := flag.String("addr", "", "listen address for -mode serve (default $RIFTWALKER_ADDR or :8080)")
	out := flag.String("out", "", "output file for dump and json modes (\"-\" or empty for stdout in json mode)")
	flag.Parse()

	logger.Init()
	initGettext(*locales, *lang)

	cfg := generator.DefaultConfig()
	cfg.TileSize = *tileSize
	if *facing {
		cfg.DoorwayMode = generator.DoorwayFacing
	}

	if err := run(*mode, cfg, *width, *height, *seed, *addr, *out); err != nil {
		logger.Log.WithError(err).Error("riftwalker failed")
		os.Exit(1)
	}
}

func run(mode string, cfg generator.Config, width, height int, seed int64, addr, out string) error {
	if mode == "serve" {
		if addr == "" {
			addr = os.Getenv("RIFTWALKER_ADDR")
		}
		if addr == "" {
			addr = defaultAddr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return server.New(cfg, addr).Run()
	}

	session, err := state.NewSession(width, height, cfg)
	if err != nil {
		return err
	}
	if err := session.Regenerate(seed); err != nil {
		return err
	}

	switch mode {
	case "tui":
		renderer.SetRenderer(tui.New(dumpPath(out)))
	case "ebiten":
		renderer.SetRenderer(ebiten.New(dumpPath(out)))
	case "dump":
		path, err := devtools.DumpToFile(session, dumpPath(out))
		if err != nil {
			return err
		}
		logger.Log.WithField("path", path).Info("map dump written")
		return nil
	case "json":
		return writeWorldJSON(session, out)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	renderer.Init()
	return renderer.Run(session)
}

func dumpPath(out string) string {
	if out == "" || out == "-" {
		return devtools.DefaultDumpFilename
	}
	return out
}

// writeWorldJSON prints the world as JSON, to stdout unless out names a file
func writeWorldJSON(s *state.Session, out string) error {
	if out == "" || out == "-" {
		return encodeWorld(os.Stdout, s)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := encodeWorld(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}
	return nil
}

func encodeWorld(w io.Writer, s *state.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(server.Response{Type: "world", Seed: s.Seed, World: s.World})
}
