package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineinput "voidrunner/pkg/engine/input"
)

// ToggleConsole opens or closes the console overlay.
func (r *Renderer) ToggleConsole() {
	r.consoleMutex.Lock()
	defer r.consoleMutex.Unlock()

	if r.consoleAnimating {
		// Don't toggle while animating
		return
	}

	r.consoleActive = !r.consoleActive
	r.consoleAnimating = true
	r.consoleAnimStartTime = time.Now().UnixMilli()

	if !r.consoleActive {
		r.consoleScrollOffset = 0
	}
}

// IsConsoleActive reports whether the console is open or mid-animation.
func (r *Renderer) IsConsoleActive() bool {
	r.consoleMutex.RLock()
	defer r.consoleMutex.RUnlock()
	return r.consoleActive || r.consoleAnimating
}

// handleConsoleInput translates this frame's Ebiten input state into
// console character and key events.
func (r *Renderer) handleConsoleInput() {
	cons := r.host.Console

	// Printable characters typed this frame
	for _, ch := range ebiten.AppendInputChars(nil) {
		if ch == '`' {
			// The toggle key never reaches the edit buffer
			continue
		}
		cons.SendChar(ch)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		cons.SendChar(engineinput.CharReturn)
		// New output: snap the view back to the most recent lines
		r.consoleMutex.Lock()
		r.consoleScrollOffset = 0
		r.consoleMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		cons.SendChar(engineinput.CharBackspace)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		cons.SendChar(engineinput.CharDelete)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		cons.SendChar(engineinput.CharTab)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		cons.SendKey(engineinput.KeyUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		cons.SendKey(engineinput.KeyDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cons.SendKey(engineinput.KeyLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cons.SendKey(engineinput.KeyRight)
	}

	// PageUp/PageDown scroll the output view
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		r.consoleMutex.Lock()
		r.consoleScrollOffset += 10
		if max := len(r.host.Log.Lines()); r.consoleScrollOffset > max {
			r.consoleScrollOffset = max
		}
		r.consoleMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		r.consoleMutex.Lock()
		r.consoleScrollOffset -= 10
		if r.consoleScrollOffset < 0 {
			r.consoleScrollOffset = 0
		}
		r.consoleMutex.Unlock()
	}
}

// drawConsole draws the console overlay with the slide animation.
func (r *Renderer) drawConsole(screen *ebiten.Image) {
	r.consoleMutex.RLock()
	active := r.consoleActive
	animating := r.consoleAnimating
	animStartTime := r.consoleAnimStartTime
	currentProgress := r.consoleAnimProgress
	scrollOffset := r.consoleScrollOffset
	r.consoleMutex.RUnlock()

	var progress float64
	if animating {
		elapsed := time.Now().UnixMilli() - animStartTime
		if elapsed >= consoleAnimMillis {
			if active {
				progress = 1.0
			}
			r.consoleMutex.Lock()
			r.consoleAnimating = false
			r.consoleAnimProgress = progress
			r.consoleMutex.Unlock()
		} else {
			eased := easeInOut(float64(elapsed) / consoleAnimMillis)
			if active {
				progress = eased
			} else {
				progress = 1.0 - eased
			}
			r.consoleMutex.Lock()
			r.consoleAnimProgress = progress
			r.consoleMutex.Unlock()
		}
	} else {
		progress = currentProgress
	}

	if progress <= 0 {
		return // fully closed
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	consoleHeight := int(float64(screenHeight) * consoleShare * progress)
	consoleY := screenHeight - consoleHeight

	// Semi-transparent backdrop with a border along the top edge
	bgColor := color.RGBA{0, 0, 0, uint8(220 * progress)}
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(screenWidth), float32(consoleHeight), bgColor, false)
	borderColor := colorConsoleBorder
	borderColor.A = uint8(255 * progress)
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(screenWidth), 2, borderColor, false)

	if consoleHeight <= 20 || r.fontSource == nil {
		return
	}

	face := r.getUIFontFace()
	lineHeight := int(baseFontSize) + 6
	paddingX := 10
	paddingY := 10

	// Output lines, scrolled, newest at the bottom
	output := r.host.Log.Lines()
	outputY := consoleY + paddingY
	linesToShow := (consoleHeight - paddingY*2 - lineHeight*2) / lineHeight
	if linesToShow > 0 && len(output) > 0 {
		startIdx := len(output) - linesToShow - scrollOffset
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx >= len(output) {
			startIdx = len(output) - 1
		}

		textColor := colorConsoleText
		textColor.A = uint8(255 * progress)
		for i := startIdx; i < len(output) && i < startIdx+linesToShow; i++ {
			if outputY+lineHeight > consoleY+consoleHeight-lineHeight {
				break
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(paddingX), float64(outputY)+baseFontSize)
			op.ColorScale.ScaleWithColor(textColor)
			text.Draw(screen, output[i], face, op)
			outputY += lineHeight
		}
	}

	// Input line at the bottom, cursor rendered in place
	line, curs := r.host.Console.Line()
	runes := []rune(line)
	cursor := "_"
	if int(time.Now().UnixMilli()/500)%2 == 0 {
		cursor = " "
	}
	inputText := "> " + string(runes[:curs]) + cursor + string(runes[curs:])

	inputY := consoleY + consoleHeight - paddingY - lineHeight
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(paddingX), float64(inputY)+baseFontSize)
	inputColor := colorConsoleInput
	inputColor.A = uint8(255 * progress)
	op.ColorScale.ScaleWithColor(inputColor)
	text.Draw(screen, inputText, face, op)
}
