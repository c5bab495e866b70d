package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"riftwalker/pkg/game/renderer"
	"riftwalker/pkg/game/state"
)

var glyphClasses = map[renderer.Glyph]string{
	renderer.GlyphVoid:          "void",
	renderer.GlyphFloor:         "floor",
	renderer.GlyphWall:          "wall",
	renderer.GlyphDoorway:       "door",
	renderer.GlyphLockedDoorway: "door-locked",
	renderer.GlyphHealth:        "item",
	renderer.GlyphPatrol:        "enemy",
	renderer.GlyphFlyer:         "enemy",
	renderer.GlyphTurret:        "enemy",
	renderer.GlyphAbility:       "ability",
	renderer.GlyphPlayer:        "player",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Riftwalker - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #444; }
        .door { color: #ffff00; font-weight: bold; }
        .door-locked { color: #ff4444; font-weight: bold; }
        .item { color: #00aa00; }
        .enemy { color: #ff4444; }
        .ability { color: #4488ff; font-weight: bold; }
        .void { color: #1a1a2e; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// WriteScreenshotHTML writes the whole rendered map of the session as a standalone HTML page
func WriteScreenshotHTML(w io.Writer, s *state.Session) error {
	c := renderer.SessionCanvas(s)
	if c == nil {
		return fmt.Errorf("no world")
	}

	var page strings.Builder
	page.WriteString(screenshotHead)
	page.WriteString(fmt.Sprintf(`    <div class="header">Seed %d, world #%d, %d rooms</div>`+"\n", s.Seed, s.Generation, len(s.World.Rooms)))

	page.WriteString(`    <div class="map-container">` + "\n")
	for y := 0; y < c.Height; y++ {
		page.WriteString(`        <div class="map-row">`)
		for x := 0; x < c.Width; x++ {
			g := c.At(x, y)
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, glyphClasses[g], html.EscapeString(string(g.Symbol()))))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	if len(s.Messages) > 0 {
		page.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range s.Messages {
			page.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(msg)))
		}
		page.WriteString(`    </div>` + "\n")
	}

	page.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, page.String())
	return err
}

// SaveScreenshotHTML saves the map as screenshot-<timestamp>.html in the working
// directory and returns the file name
func SaveScreenshotHTML(s *state.Session) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, s); err != nil {
		return filename, err
	}
	return filename, nil
}
