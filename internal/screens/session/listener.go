package session

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// runListener forwards the events of one fetch run onto a channel drained
// by the event loop. Sends give up once the run is cancelled.
type runListener struct {
	run uint64
	ctx context.Context
	ch  chan<- tea.Msg
}

func (l runListener) send(msg tea.Msg) {
	select {
	case l.ch <- msg:
	case <-l.ctx.Done():
	}
}

func (l runListener) Progress(fetched, total int) {
	l.send(fetchProgressMsg{run: l.run, fetched: fetched, total: total})
}

func (l runListener) Complete(words []string) {
	l.send(fetchCompleteMsg{run: l.run, words: words})
}

func (l runListener) Failed(err error) {
	l.send(fetchFailedMsg{run: l.run, err: err})
}

// activeFetch is the run the screen is listening to.
type activeFetch struct {
	run    uint64
	ctx    context.Context
	cancel context.CancelFunc
	ch     chan tea.Msg
}

// listen waits for the next event of the run.
func (f *activeFetch) listen() tea.Cmd {
	ctx, ch := f.ctx, f.ch
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}
