package engine

import (
	"go.uber.org/zap"
)

// Paste inserts text at the host selection.
//
// The splice happens immediately so the host shows the pasted text the way a
// native paste would. Reformatting it against the mask is deferred through
// the Scheduler and runs SetValue on the spliced text.
func (f *Field) Paste(text string) {
	current := []rune(f.host.Text())
	start, end := f.host.Selection()
	start = max(0, min(start, len(current)))
	end = max(start, min(end, len(current)))

	spliced := string(current[:start]) + text + string(current[end:])
	f.host.SetText(spliced)

	f.sched.Defer(func() {
		f.SetValue(spliced)
		f.logger.Debug("paste applied",
			zap.Int("len", len(text)),
			zap.String("value", f.Value()),
		)
		f.emit(Event{Kind: EventPasteApplied})
	})
}
