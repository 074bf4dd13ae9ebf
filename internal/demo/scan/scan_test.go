package scan

import (
	"net"
	"strings"
	"testing"

	"github.com/grandcat/zeroconf"

	"github.com/weftlabs/weft"
)

type msgRecorder struct {
	msgs []weft.Msg
}

func (r *msgRecorder) Send(msg weft.Msg) {
	r.msgs = append(r.msgs, msg)
}

func TestForwardEntries(t *testing.T) {
	entries := make(chan *zeroconf.ServiceEntry, 2)
	entries <- &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "printer"},
		HostName:      "printer.local.",
		Port:          631,
		AddrIPv4:      []net.IP{net.IPv4(10, 0, 0, 5)},
	}
	entries <- &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "nas"},
		HostName:      "nas.local.",
		Port:          80,
		AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
	}
	close(entries)

	rec := &msgRecorder{}
	forwardEntries(rec, entries)

	if len(rec.msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(rec.msgs))
	}
	first, ok := rec.msgs[0].(EntryMsg)
	if !ok {
		t.Fatalf("first message = %T, want EntryMsg", rec.msgs[0])
	}
	if first.Instance != "printer" || first.Port != 631 || len(first.Addrs) != 1 {
		t.Errorf("first entry = %+v", first)
	}
	second := rec.msgs[1].(EntryMsg)
	if second.Instance != "nas" || len(second.Addrs) != 1 {
		t.Errorf("second entry = %+v", second)
	}
	if _, ok := rec.msgs[2].(DoneMsg); !ok {
		t.Errorf("last message = %T, want DoneMsg", rec.msgs[2])
	}
}

func TestUpdateCollectsEntries(t *testing.T) {
	var m weft.Model = New("_http._tcp")

	m, _ = m.Update(EntryMsg{Instance: "printer", Host: "printer.local.", Port: 631})
	m, _ = m.Update(EntryMsg{Instance: "nas", Host: "nas.local.", Port: 80, Addrs: []net.IP{net.IPv4(192, 168, 1, 9)}})

	got := m.(Model)
	if len(got.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(got.Entries))
	}
	if got.Entries[1].Instance != "nas" {
		t.Errorf("second entry = %q, want nas", got.Entries[1].Instance)
	}
}

func TestUpdateDone(t *testing.T) {
	m, _ := New("_http._tcp").Update(DoneMsg{})
	if !m.(Model).Done {
		t.Error("DoneMsg did not mark the browse finished")
	}
	if view := m.View(); !strings.Contains(view, "browse finished") {
		t.Errorf("view %q does not report completion", view)
	}
}

func TestViewListsDiscoveries(t *testing.T) {
	var m weft.Model = New("_http._tcp")
	m, _ = m.Update(EntryMsg{
		Instance: "printer",
		Host:     "printer.local.",
		Port:     631,
		Addrs:    []net.IP{net.IPv4(10, 0, 0, 5)},
	})

	view := m.View()
	for _, want := range []string{"_http._tcp", "printer", "631", "10.0.0.5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestQuitKey(t *testing.T) {
	_, cmd := New("_http._tcp").Update(weft.KeyMsg{Name: "q"})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(weft.QuitMsg); !ok {
		t.Errorf("q produced %T, want QuitMsg", cmd())
	}
}
