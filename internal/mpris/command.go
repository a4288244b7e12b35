// Package mpris exposes the cabinet transport to desktop media keys.
//
// D-Bus calls arrive on their own goroutine. Reads go through the playback
// service's locked accessors; every write is turned into a CommandMsg and
// sent into the UI event loop, which applies it like a key press.
package mpris

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/playback"
)

// Command is a transport request from the desktop.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdStop
	CmdNext
	CmdPrevious
	CmdSeek        // relative, Offset
	CmdSetPosition // absolute, Offset
	CmdSetLoop     // Flag
	CmdSetShuffle  // Flag
	CmdSetVolume   // Value
)

// CommandMsg carries a desktop command into the event loop.
type CommandMsg struct {
	Command Command
	Offset  time.Duration
	Flag    bool
	Value   float64
}

// Sender delivers a message to the running program (tea.Program.Send).
type Sender func(tea.Msg)

// Reader is the read side of the playback service.
type Reader interface {
	Snapshot() playback.Snapshot
	Position() time.Duration
	Duration() time.Duration
	CurrentTrack() *catalog.Track
	Catalog() *catalog.Catalog
}

// Apply runs a command against the service. Call it from the event loop.
func Apply(svc playback.Service, msg CommandMsg) error {
	switch msg.Command {
	case CmdPlayPause:
		if svc.IsIdle() {
			return svc.Next()
		}
		return svc.Toggle()
	case CmdPlay:
		switch svc.State() {
		case playback.StateIdle:
			return svc.Next()
		case playback.StatePaused:
			return svc.Toggle()
		case playback.StatePlaying:
		}
		return nil
	case CmdPause:
		if svc.IsPlaying() {
			return svc.Toggle()
		}
		return nil
	case CmdStop:
		return svc.Stop()
	case CmdNext:
		return svc.Next()
	case CmdPrevious:
		return svc.Previous()
	case CmdSeek:
		return svc.SeekTo(max(svc.Position()+msg.Offset, 0))
	case CmdSetPosition:
		return svc.SeekTo(msg.Offset)
	case CmdSetLoop:
		svc.SetLoop(msg.Flag)
	case CmdSetShuffle:
		svc.SetShuffle(msg.Flag)
	case CmdSetVolume:
		svc.SetVolume(msg.Value)
	}
	return nil
}
