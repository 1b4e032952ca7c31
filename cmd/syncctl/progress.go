package main

import (
	"io"
	"sync"

	"github.com/cheggaaa/pb/v3"
)

const barTemplate = `{{string . "entity"}} {{counters . }} {{bar . }} {{percent . }} {{etime . }}`

// progressBar adapts a pb bar to the reconcile progress callback. The bar
// starts on the first report since totals are known only then.
type progressBar struct {
	mu     sync.Mutex
	entity string
	out    io.Writer
	quiet  bool
	bar    *pb.ProgressBar
}

func newBar(out io.Writer, entity string, quiet bool) *progressBar {
	return &progressBar{entity: entity, out: out, quiet: quiet}
}

func (p *progressBar) progress(done, total int) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		p.bar = pb.New(total)
		p.bar.SetWriter(p.out)
		p.bar.SetTemplateString(barTemplate)
		p.bar.Set("entity", p.entity)
		p.bar.Start()
	}
	p.bar.SetCurrent(int64(done))
}

func (p *progressBar) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		p.bar.Finish()
	}
}

// entityBars keeps one bar per entity of a multi-entity run; the previous
// bar is finished when the next entity reports.
type entityBars struct {
	out     io.Writer
	quiet   bool
	current *progressBar
}

func newEntityBars(out io.Writer, quiet bool) *entityBars {
	return &entityBars{out: out, quiet: quiet}
}

func (b *entityBars) progress(entity string, done, total int) {
	if b.current == nil || b.current.entity != entity {
		b.finish()
		b.current = newBar(b.out, entity, b.quiet)
	}
	b.current.progress(done, total)
}

func (b *entityBars) finish() {
	if b.current != nil {
		b.current.finish()
	}
}
