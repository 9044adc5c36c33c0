// Package prompt reads credentials and choices from the user. Prompts fall
// back to plain line reads when stdin is not a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/bnema/witrix-cli/internal/domain"
)

var ErrNotInteractive = errors.New("stdin is not a terminal")

type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// Interactive reports whether input comes from a terminal.
func (p *Prompter) Interactive() bool {
	fd, ok := terminalFD(p.in)
	return ok && term.IsTerminal(fd)
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	fd, ok := terminalFD(w)
	return ok && term.IsTerminal(fd)
}

func (p *Prompter) Line(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(strings.TrimSuffix(strings.TrimSpace(label), ":")), err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Password reads without echo on a terminal.
func (p *Prompter) Password(label string) (string, error) {
	if !p.Interactive() {
		return p.Line(label)
	}

	fd, _ := terminalFD(p.in)
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	secret, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(secret), nil
}

// SelectGuild shows a picker preselected on current.
func (p *Prompter) SelectGuild(guilds []domain.Guild, current *domain.GuildID) (domain.GuildID, error) {
	if len(guilds) == 0 {
		return "", fmt.Errorf("no guilds to choose from")
	}
	if !p.Interactive() {
		return "", ErrNotInteractive
	}

	selected := guilds[0].ID
	if current != nil {
		if _, ok := domain.FindGuild(guilds, *current); ok {
			selected = *current
		}
	}

	field := huh.NewSelect[domain.GuildID]().
		Title("Select a guild").
		Options(guildOptions(guilds)...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field)).WithInput(p.in).WithOutput(p.out)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("guild prompt: %w", err)
	}

	return selected, nil
}

func guildOptions(guilds []domain.Guild) []huh.Option[domain.GuildID] {
	options := make([]huh.Option[domain.GuildID], 0, len(guilds))
	for _, guild := range guilds {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", guild.Name, guild.ID), guild.ID))
	}

	return options
}

func terminalFD(v any) (int, bool) {
	file, ok := v.(*os.File)
	if !ok || file == nil {
		return 0, false
	}

	return int(file.Fd()), true
}
