package jobs

import (
	"sync"

	"github.com/Nishan123/yumm-ai/services"
)

// GenerationBroker fans generation session snapshots out to SSE
// subscribers. Each subscriber registers for one session key and only sees
// that session's updates; generated recipes never leak across sessions.
// Generation itself runs in the request goroutine; the broker only carries
// progress, so a slow subscriber never stalls the pipeline.
type GenerationBroker struct {
	subscribers map[chan services.GenerationSession]string
	subMux      sync.RWMutex
}

var (
	broker     *GenerationBroker
	brokerOnce sync.Once
)

// GetBroker returns the singleton GenerationBroker instance.
func GetBroker() *GenerationBroker {
	brokerOnce.Do(func() {
		broker = &GenerationBroker{
			subscribers: make(map[chan services.GenerationSession]string),
		}
	})
	return broker
}

// Subscribe registers a channel to receive updates for one session key.
func (b *GenerationBroker) Subscribe(sessionKey string, ch chan services.GenerationSession) {
	b.subMux.Lock()
	defer b.subMux.Unlock()
	b.subscribers[ch] = sessionKey
}

// Unsubscribe removes a channel from session updates.
func (b *GenerationBroker) Unsubscribe(ch chan services.GenerationSession) {
	b.subMux.Lock()
	defer b.subMux.Unlock()
	delete(b.subscribers, ch)
	close(ch)
}

// Broadcast sends the snapshot to the session's subscribers, dropping it
// for any that are not keeping up.
func (b *GenerationBroker) Broadcast(sessionKey string, session services.GenerationSession) {
	b.subMux.RLock()
	defer b.subMux.RUnlock()
	for ch, key := range b.subscribers {
		if key != sessionKey {
			continue
		}
		select {
		case ch <- session:
		default:
			// Drop update if subscriber is slow
		}
	}
}
