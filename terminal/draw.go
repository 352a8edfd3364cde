package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/render"
)

const halfBlock = '▀'

var (
	hudFg    = tcell.NewRGBColor(235, 235, 240)
	hudDim   = tcell.NewRGBColor(140, 145, 160)
	panelBg  = tcell.NewRGBColor(28, 30, 44)
	panelFg  = tcell.NewRGBColor(230, 230, 235)
	titleFg  = tcell.NewRGBColor(100, 226, 36)
	alertFg  = tcell.NewRGBColor(255, 80, 80)
	borderFg = tcell.NewRGBColor(90, 95, 120)
)

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blit writes a framebuffer twice as tall as the screen, one half-block cell per two rows
func blit(s tcell.Screen, fb *render.Framebuffer) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := fb.At(x, 2*y)
			bot := fb.At(x, 2*y+1)
			st := tcell.StyleDefault.Foreground(color(top)).Background(color(bot))
			s.SetContent(x, y, halfBlock, nil, st)
		}
	}
}

// drawText writes str starting at (x,y), clipped to the screen width
func drawText(s tcell.Screen, x, y int, str string, st tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range str {
		if x >= w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, st)
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

// overlayText keeps the scene colors underneath, only the glyph and foreground change
func overlayText(s tcell.Screen, fb *render.Framebuffer, x, y int, str string, fg tcell.Color) {
	w, _ := s.Size()
	for _, r := range str {
		if x >= w {
			return
		}
		if x >= 0 {
			bg := render.Lerp(fb.At(x, 2*y), fb.At(x, 2*y+1), 0.5).Scale(0.6)
			s.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(color(bg)).Bold(true))
		}
		x++
	}
}

type panelLine struct {
	text string
	fg   tcell.Color
	bold bool
}

// drawPanel centers a bordered box holding lines
func drawPanel(s tcell.Screen, lines []panelLine) {
	sw, sh := s.Size()

	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l.text))
	}
	pw := inner + 6
	ph := len(lines) + 4
	x0 := (sw - pw) / 2
	y0 := (sh - ph) / 2

	bg := tcell.StyleDefault.Background(panelBg).Foreground(panelFg)
	border := bg.Foreground(borderFg)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			r := ' '
			switch {
			case (y == 0 || y == ph-1) && (x == 0 || x == pw-1):
				r = cornerRune(x == 0, y == 0)
			case y == 0 || y == ph-1:
				r = tcell.RuneHLine
			case x == 0 || x == pw-1:
				r = tcell.RuneVLine
			}
			st := bg
			if r != ' ' {
				st = border
			}
			if px, py := x0+x, y0+y; px >= 0 && py >= 0 && px < sw && py < sh {
				s.SetContent(px, py, r, nil, st)
			}
		}
	}

	for i, l := range lines {
		lw := runewidth.StringWidth(l.text)
		drawText(s, x0+(pw-lw)/2, y0+2+i, l.text, bg.Foreground(l.fg).Bold(l.bold))
	}
}

func cornerRune(left, top bool) rune {
	switch {
	case left && top:
		return tcell.RuneULCorner
	case !left && top:
		return tcell.RuneURCorner
	case left:
		return tcell.RuneLLCorner
	default:
		return tcell.RuneLRCorner
	}
}

// drawHUD paints the counter, status and panels over the scene
func drawHUD(s tcell.Screen, fb *render.Framebuffer, snap game.Snapshot, muted bool) {
	sw, sh := s.Size()

	overlayText(s, fb, 1, 0, fmt.Sprintf("TIME %d", snap.Score), hudFg)

	sound := "[m] sound on"
	if muted {
		sound = "[m] sound off"
	}
	overlayText(s, fb, sw-len(sound)-1, 0, sound, hudDim)
	overlayText(s, fb, 1, sh-1, "wasd move  arrows orbit  +/- zoom  r restart  q quit", hudDim)

	switch {
	case snap.Phase == game.PhaseReady:
		drawPanel(s, []panelLine{
			{"CUBE DODGE", titleFg, true},
			{"", panelFg, false},
			{"Steer the green cube with w a s d.", panelFg, false},
			{"Dodge the red cubes sliding toward you.", panelFg, false},
			{"Stay on the platform.", panelFg, false},
			{"Your score is the time you survive.", panelFg, false},
			{"", panelFg, false},
			{"press Enter to start", hudDim, false},
		})
	case snap.Phase.GameOver():
		drawPanel(s, []panelLine{
			{"GAME OVER", alertFg, true},
			{"", panelFg, false},
			{fmt.Sprintf("Total Score: %d", snap.Score), panelFg, true},
			{"", panelFg, false},
			{"press r to play again", hudDim, false},
		})
	}
}
