package repl

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/atinylittleshell/memsh/internal/vfs"
)

// WelcomeInfo contains information to display in the welcome screen.
type WelcomeInfo struct {
	Version string
	Prompt  string
	Tree    vfs.Stats
}

var tips = []string{
	"type help to list the available commands",
	"press Tab to complete file and directory names",
	"press Up/Down to recall previous commands",
	"press Ctrl+L to clear the screen",
	"ls --all also lists hidden entries",
	"set theme: dark in ~/.memsh/config.yaml for dark terminals",
	"seed the filesystem with the structure key of ~/.memsh/config.yaml",
	"press Ctrl+D on an empty line to exit",
}

var logo = []string{
	"                         _     ",
	" _ __ ___   ___ _ __ ___| |__  ",
	"| '_ ` _ \\ / _ \\ '_ ` __| '_ \\ ",
	"| | | | | |  __/ | | \\__ \\ | | |",
	"|_| |_| |_|\\___|_| |_|___/_| |_|",
}

// tipOfTheDay returns the same tip for the whole of a calendar day.
func tipOfTheDay(now time.Time) string {
	return tips[now.YearDay()%len(tips)]
}

// RenderWelcome renders the welcome screen to the given writer: the logo on
// the left and session information on the right. Narrow terminals only get
// the information.
func RenderWelcome(w io.Writer, info WelcomeInfo, theme Theme, termWidth int) {
	label := theme.Hint.UnsetItalic()

	lines := []string{
		theme.Accent.Bold(true).Render("The In-Memory Shell"),
		"",
	}
	if info.Version == "dev" {
		lines = append(lines, label.Render("version: ")+theme.Hint.Render("development"))
	} else if info.Version != "" {
		lines = append(lines, label.Render("version: ")+theme.Accent.Render(info.Version))
	}
	lines = append(lines,
		label.Render("user:    ")+theme.Accent.Render(info.Prompt),
		label.Render("files:   ")+theme.Accent.Render(fmt.Sprintf("%s in %s directories, %s",
			humanize.Comma(int64(info.Tree.Files)),
			humanize.Comma(int64(info.Tree.Directories)),
			humanize.Bytes(uint64(info.Tree.Bytes)))),
		"",
		theme.Hint.Render("tip: "+tipOfTheDay(time.Now())),
	)
	infoBlock := lipgloss.JoinVertical(lipgloss.Left, lines...)

	logoBlock := theme.Accent.Render(lipgloss.JoinVertical(lipgloss.Left, logo...))
	if termWidth > 0 && termWidth < lipgloss.Width(logoBlock)+4+lipgloss.Width(infoBlock) {
		fmt.Fprintln(w, infoBlock)
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, logoBlock, "    ", infoBlock))
	fmt.Fprintln(w)
}
