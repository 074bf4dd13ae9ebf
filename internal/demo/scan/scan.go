// Package scan implements a live mDNS/DNS-SD service browser. It shows
// how an external event source feeds a weft program: the zeroconf
// resolver runs on its own goroutine and injects every discovery
// through Program.Send.
package scan

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/logging"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	instanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#43BF6D"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Entry is one discovered service instance.
type Entry struct {
	Instance string
	Host     string
	Port     int
	Addrs    []net.IP
}

// EntryMsg reports a newly discovered service.
type EntryMsg Entry

// DoneMsg reports that the browse window has closed.
type DoneMsg struct{}

// Model is the browser state.
type Model struct {
	Service string
	Entries []Entry
	Done    bool
}

// New returns an empty browser for the given service type.
func New(service string) Model {
	return Model{Service: service}
}

// Init implements weft.Model.
func (m Model) Init() weft.Cmd {
	return nil
}

// Update implements weft.Model.
func (m Model) Update(msg weft.Msg) (weft.Model, weft.Cmd) {
	switch msg := msg.(type) {
	case EntryMsg:
		m.Entries = append(m.Entries, Entry(msg))
	case DoneMsg:
		m.Done = true
	case weft.KeyMsg:
		switch msg.String() {
		case "q", "escape", "ctrl+c":
			return m, weft.Quit
		}
	}
	return m, nil
}

// View implements weft.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("browsing %s", m.Service)))
	b.WriteString("\n")

	if len(m.Entries) == 0 {
		b.WriteString(statusStyle.Render("no services yet..."))
		b.WriteString("\n")
	}
	for _, e := range m.Entries {
		addrs := make([]string, len(e.Addrs))
		for i, ip := range e.Addrs {
			addrs[i] = ip.String()
		}
		b.WriteString(instanceStyle.Render(e.Instance))
		b.WriteString(addrStyle.Render(fmt.Sprintf("  %s:%d  %s", e.Host, e.Port, strings.Join(addrs, " "))))
		b.WriteString("\n")
	}

	if m.Done {
		b.WriteString(statusStyle.Render("browse finished"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q quit"))
	return b.String()
}

// Run browses for service instances for the given window and renders
// them as they arrive. The program keeps running after the browse ends
// so the results stay on screen until the user quits.
func Run(service, domain string, timeout time.Duration, altScreen bool) error {
	opts := []weft.ProgramOption{weft.WithLogger(logging.GetLogger())}
	if altScreen {
		opts = append(opts, weft.WithAltScreen())
	}
	p := weft.NewProgram(New(service), opts...)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Start consuming only once the browse is live: on a Browse
	// error nothing ever closes entries, so a consumer started
	// earlier would block forever.
	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, service, domain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}
	go forwardEntries(p, entries)

	_, err = p.Run()
	return err
}

// msgSender is the slice of *weft.Program that forwardEntries needs.
type msgSender interface {
	Send(weft.Msg)
}

// forwardEntries translates resolver results into messages until the
// browse closes the channel, then reports completion.
func forwardEntries(p msgSender, entries <-chan *zeroconf.ServiceEntry) {
	for entry := range entries {
		logging.Debug("service discovered",
			zap.String("instance", entry.Instance),
			zap.String("host", entry.HostName),
			zap.Int("port", entry.Port),
		)
		p.Send(EntryMsg{
			Instance: entry.Instance,
			Host:     entry.HostName,
			Port:     entry.Port,
			Addrs:    append(append([]net.IP{}, entry.AddrIPv4...), entry.AddrIPv6...),
		})
	}
	p.Send(DoneMsg{})
}
