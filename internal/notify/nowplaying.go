package notify

import (
	"sync"

	"github.com/llehouerou/keepsake/internal/catalog"
)

// DefaultTimeout is how long a "now playing" bubble stays up, in ms.
const DefaultTimeout int32 = 4000

// NowPlaying keeps a single track notification on screen, replacing it
// on every track change instead of stacking new bubbles.
type NowPlaying struct {
	notifier Notifier
	timeout  int32

	mu sync.Mutex
	id uint32
}

// NewNowPlaying wraps a notifier.
func NewNowPlaying(n Notifier, timeout int32) *NowPlaying {
	return &NowPlaying{notifier: n, timeout: timeout}
}

// TrackNotification builds the notification for a track.
func TrackNotification(t catalog.Track) Notification {
	title := t.Title
	if title == "" {
		title = catalog.Placeholder
	}
	return Notification{
		Summary:   title,
		Body:      t.Composer,
		Image:     t.Cover,
		Urgency:   UrgencyLow,
		Transient: true,
	}
}

// Show announces a track, replacing the previous announcement.
func (p *NowPlaying) Show(t catalog.Track) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := TrackNotification(t)
	n.Timeout = p.timeout
	n.Replaces = p.id

	id, err := p.notifier.Send(n)
	if err != nil {
		return err
	}
	p.id = id
	return nil
}

// Dismiss closes the current announcement, if any.
func (p *NowPlaying) Dismiss() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.id == 0 {
		return nil
	}
	id := p.id
	p.id = 0
	return p.notifier.Withdraw(id)
}
