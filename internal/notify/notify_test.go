package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestCapabilities_Text(t *testing.T) {
	n := Notification{Summary: "Clair de Lune", Body: "Debussy"}

	tests := []struct {
		name    string
		caps    Capabilities
		summary string
		body    string
	}{
		{"unknown server", nil, "Clair de Lune", "Debussy"},
		{"body supported", Capabilities{"body": true}, "Clair de Lune", "Debussy"},
		{"summary only", Capabilities{"actions": true}, "Clair de Lune · Debussy", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, body := tt.caps.Text(n)
			assert.Equal(t, tt.summary, summary)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestCapabilities_TextWithoutBody(t *testing.T) {
	summary, body := Capabilities{}.Text(Notification{Summary: "Gymnopédie No.1"})

	assert.Equal(t, "Gymnopédie No.1", summary)
	assert.Empty(t, body)
}

func TestNoop(t *testing.T) {
	var n Notifier = noop{}

	id, err := n.Send(Notification{Summary: "x"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Withdraw(id))
}
