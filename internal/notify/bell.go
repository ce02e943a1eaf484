package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const bellSampleRate = beep.SampleRate(44100)

// Bell plays a short sine tone. The speaker is initialized on first use so
// hosts without audio only fail when a notification is delivered.
type Bell struct {
	frequency float64
	length    time.Duration

	once    sync.Once
	initErr error
	enabled func() bool
}

// NewBell creates a bell tone of the given frequency in Hz and length.
func NewBell(frequency float64, length time.Duration) *Bell {
	return &Bell{frequency: frequency, length: length}
}

// SetEnabled installs a switch consulted before each tone.
func (bell *Bell) SetEnabled(enabled func() bool) {
	bell.enabled = enabled
}

// Notify plays the tone and waits for it to finish.
func (bell *Bell) Notify(Notification) error {
	if bell.enabled != nil && !bell.enabled() {
		return nil
	}
	bell.once.Do(func() {
		bell.initErr = speaker.Init(bellSampleRate, bellSampleRate.N(time.Second/10))
	})
	if bell.initErr != nil {
		return fmt.Errorf("init speaker: %w", bell.initErr)
	}

	tone, err := generators.SineTone(bellSampleRate, bell.frequency)
	if err != nil {
		return fmt.Errorf("create tone: %w", err)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(bellSampleRate.N(bell.length), tone),
		beep.Callback(func() { close(done) }),
	))
	<-done
	return nil
}
