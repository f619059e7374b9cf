package flappy

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/flapper/internal/assets"
	"github.com/vovakirdan/flapper/internal/core"
)

// Score position inside the game-over board region.
const (
	boardScoreX = 11
	boardScoreY = 3
)

// drawScene draws the world back to front: skyline, pipes, ground, bird.
func drawScene(s *State, dst *core.Screen) {
	sheet := s.sheet.SpriteSheet

	if sky, ok := s.sheet.Region(assets.Skyline); ok {
		for x := 0; x < dst.Width(); x += sky.W {
			dst.Blit(sheet, sky, x, s.Ground.Y-sky.H)
		}
	}

	for _, p := range s.Pipes.Pairs() {
		drawPair(dst, sheet, s.pipes, p, s.Ground.Y)
	}

	s.Ground.Draw(dst, sheet)

	if frame, ok := s.Bird.Region(); ok {
		dst.Blit(sheet, frame, s.Bird.X, core.Floor(s.Bird.Y))
	}
}

// drawScore shows the running score at the top center.
func drawScore(s *State, dst *core.Screen) {
	text := " " + strconv.Itoa(s.Score) + " "
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextColored(x, 1, text, core.ColorBrightWhite)
}

// centered returns the top-left corner that centers r on the screen,
// shifted up a little so the board sits above the ground.
func centered(dst *core.Screen, r core.Rect) (int, int) {
	return (dst.Width() - r.W) / 2, core.Max((dst.Height()-r.H)/2-2, 0)
}

// drawBanner shows the title banner on the home screen.
func drawBanner(s *State, dst *core.Screen) {
	banner, ok := s.sheet.Region(assets.HomeBanner)
	if !ok {
		drawMessage(dst, "FLAPPER", "space or click to start")
		return
	}
	x, y := centered(dst, banner)
	dst.DrawRect(core.NewRect(x, y, banner.W, banner.H), ' ')
	dst.Blit(s.sheet.SpriteSheet, banner, x, y)
}

// drawBoard shows the game-over board with the final score.
func drawBoard(s *State, dst *core.Screen) {
	board, ok := s.sheet.Region(assets.GameOverBoard)
	if !ok {
		drawMessage(dst, "GAME OVER", fmt.Sprintf("score: %d", s.Score))
		return
	}
	x, y := centered(dst, board)
	dst.DrawRect(core.NewRect(x, y, board.W, board.H), ' ')
	dst.Blit(s.sheet.SpriteSheet, board, x, y)
	dst.DrawTextColored(x+boardScoreX, y+boardScoreY, strconv.Itoa(s.Score), core.ColorBrightYellow)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
