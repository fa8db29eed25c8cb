// Package banner renders the application title banner.
package banner

import (
	"fmt"
	"os"
	"strings"

	"github.com/pywheeler/pywheeler/shared/ansi"
	"github.com/pywheeler/pywheeler/shared/console"
	"golang.org/x/term"
)

type bannerColor int

const (
	bannerAmber bannerColor = iota
	bannerCyan
	bannerGreen
	bannerMagenta
	bannerRed
	bannerWhite
)

var bannerTitleColors = []string{
	"\x1b[38;2;255;153;0m",  // Amber
	"\x1b[38;2;0;175;240m",  // Cyan
	"\x1b[38;2;30;215;96m",  // Green
	"\x1b[38;2;145;70;255m", // Magenta
	"\x1b[38;2;229;9;20m",   // Red
	"\x1b[38;2;230;230;230m", // White
}

var bannerTitleColorNames = []string{
	"Amber",
	"Cyan",
	"Green",
	"Magenta",
	"Red",
	"White",
}

const (
	bannerTitleColorDefault        = bannerAmber
	bannerTitleColorBlueBackground = bannerWhite
	bannerTitleColorEnv            = "PYWHEELER_BANNER_COLOR"
)

var titleLines = []string{
	"██████╗ ██╗   ██╗██╗    ██╗██╗  ██╗███████╗███████╗██╗     ███████╗██████╗ ",
	"██╔══██╗╚██╗ ██╔╝██║    ██║██║  ██║██╔════╝██╔════╝██║     ██╔════╝██╔══██╗",
	"██████╔╝ ╚████╔╝ ██║ █╗ ██║███████║█████╗  █████╗  ██║     █████╗  ██████╔╝",
	"██╔═══╝   ╚██╔╝  ██║███╗██║██╔══██║██╔══╝  ██╔══╝  ██║     ██╔══╝  ██╔══██╗",
	"██║        ██║   ╚███╔███╔╝██║  ██║███████╗███████╗███████╗███████╗██║  ██║",
	"╚═╝        ╚═╝    ╚══╝╚══╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝",
}

func printCenteredLines(lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if width > len(line) {
			pad = (width - len(line)) / 2
		}

		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}

		fmt.Println(line)
	}
}

func bannerTitleColor() bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))

	if raw == "" {
		return 0, false
	}

	for idx, color := range bannerTitleColors {
		name := bannerTitleColorNames[idx]
		if strings.EqualFold(raw, name) || raw == color {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(bannerTitleColors[bannerTitleColor()])
	printCenteredLines(titleLines, width)
	fmt.Print("\x1b[0m")
}
