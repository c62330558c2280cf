// Package runfolder holds the Go binding for the <runfolder> element of the
// sequencing setup XML (namespace setup.xml.molmed). A runfolder carries the
// name of its report and, in document order, the samplefolders produced by
// the instrument run.
package runfolder

import (
	"errors"
	"fmt"
	"sync"
)

var ErrIndexOutOfRange = errors.New("samplefolder index out of range")

// Runfolder is one parsed <runfolder> element. Use NewRunfolder or the zero
// value; either way, a *Runfolder should not be copied once in use.
type Runfolder struct {
	report     *string
	namespaces []nsDecl

	mu            sync.Mutex
	samplefolders *SamplefolderList
}

// NewRunfolder returns a Runfolder with an empty samplefolder collection and
// no report.
func NewRunfolder() *Runfolder {
	return &Runfolder{samplefolders: &SamplefolderList{}}
}

// Report returns the report value. ok is false if the report was never set,
// which is how a document missing its required <report> shows up.
func (r *Runfolder) Report() (value string, ok bool) {
	if r.report == nil {
		return "", false
	}

	return *r.report, true
}

// SetReport overwrites the report. Any string is accepted, including "".
func (r *Runfolder) SetReport(value string) {
	r.report = &value
}

func (r *Runfolder) UnsetReport() {
	r.report = nil
}

// Samplefolders returns the live samplefolder collection, creating an empty
// one if none exists yet. Every call returns the same *SamplefolderList, and
// changes made through it are changes to r. There is no way to swap in a
// different collection: to replace the contents, Clear and then Append.
func (r *Runfolder) Samplefolders() *SamplefolderList {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.samplefolders == nil {
		r.samplefolders = &SamplefolderList{}
	}

	return r.samplefolders
}

// SamplefolderList is the ordered collection of samplefolders belonging to
// one Runfolder. Order is document order; nothing is sorted or deduplicated.
// It is not safe for concurrent mutation.
type SamplefolderList struct {
	items []Samplefolder
}

func (l *SamplefolderList) Append(sf ...Samplefolder) {
	l.items = append(l.items, sf...)
}

// RemoveAt deletes the samplefolder at index i, shifting later entries down.
func (l *SamplefolderList) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("RemoveAt(%d) on %d samplefolders: %w", i, len(l.items), ErrIndexOutOfRange)
	}

	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = Samplefolder{}
	l.items = l.items[:len(l.items)-1]

	return nil
}

func (l *SamplefolderList) Clear() {
	l.items = nil
}

func (l *SamplefolderList) Len() int {
	return len(l.items)
}

func (l *SamplefolderList) At(i int) (Samplefolder, error) {
	if i < 0 || i >= len(l.items) {
		return Samplefolder{}, fmt.Errorf("At(%d) on %d samplefolders: %w", i, len(l.items), ErrIndexOutOfRange)
	}

	return l.items[i], nil
}

// All returns a snapshot of the samplefolders in order. Mutating the returned
// slice does not change the list.
func (l *SamplefolderList) All() []Samplefolder {
	out := make([]Samplefolder, len(l.items))
	copy(out, l.items)

	return out
}
