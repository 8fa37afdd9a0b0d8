//go:build linux

package monitor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// Linux input_event constants (linux/input-event-codes.h).
const (
	evKey = 0x01
	evRel = 0x02

	relX = 0x00
	relY = 0x01

	// keyboard key codes sit below the button range
	keyMax   = 0x100
	btnMouse = 0x110
	btnTask  = 0x117

	// struct input_event on 64-bit: two 8-byte time fields, type, code, value
	eventSize = 24
)

// EvdevSource reads raw input events from /dev/input device nodes. The
// process must be able to open at least one node (typically via the
// "input" group); otherwise Subscribe reports ErrPermissionDenied.
type EvdevSource struct {
	glob string

	mu   sync.Mutex
	fds  []int
	wg   sync.WaitGroup
	open bool
}

func NewEvdevSource() *EvdevSource {
	return &EvdevSource{glob: "/dev/input/event*"}
}

func (s *EvdevSource) Subscribe(events chan<- Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return nil
	}

	nodes, err := filepath.Glob(s.glob)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no input device nodes found")
	}

	denied := false
	for _, node := range nodes {
		fd, err := unix.Open(node, unix.O_RDONLY, 0)
		if err != nil {
			if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
				denied = true
			}
			continue
		}
		s.fds = append(s.fds, fd)
	}

	if len(s.fds) == 0 {
		if denied {
			return ErrPermissionDenied
		}
		return fmt.Errorf("unable to open any input device")
	}

	s.open = true
	for _, fd := range s.fds {
		s.wg.Add(1)
		go s.read(fd, events)
	}
	return nil
}

func (s *EvdevSource) Unsubscribe() {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return
	}
	s.open = false
	fds := s.fds
	s.fds = nil
	s.mu.Unlock()

	for _, fd := range fds {
		unix.Close(fd)
	}
	s.wg.Wait()
}

func (s *EvdevSource) read(fd int, events chan<- Event) {
	defer s.wg.Done()
	buf := make([]byte, eventSize*16)
	for {
		n, err := unix.Read(fd, buf)
		if err != nil || n <= 0 {
			return
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			ev, ok := decodeEvent(buf[off : off+eventSize])
			if !ok {
				continue
			}
			select {
			case events <- ev:
			default:
				// drop rather than block the device reader
			}
		}
	}
}

func decodeEvent(raw []byte) (Event, bool) {
	typ := binary.LittleEndian.Uint16(raw[16:18])
	code := binary.LittleEndian.Uint16(raw[18:20])
	value := int32(binary.LittleEndian.Uint32(raw[20:24]))

	switch typ {
	case evKey:
		if value != 1 { // key-down only, ignore release and autorepeat
			return Event{}, false
		}
		if code >= btnMouse && code <= btnTask {
			return Event{Kind: ButtonPress}, true
		}
		if code < keyMax {
			return Event{Kind: KeyPress}, true
		}
	case evRel:
		switch code {
		case relX:
			return Event{Kind: PointerMove, DX: value}, true
		case relY:
			return Event{Kind: PointerMove, DY: value}, true
		}
	}
	return Event{}, false
}
