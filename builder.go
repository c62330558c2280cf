package runfolder

// Builder accumulates a report and samplefolders and produces Runfolders.
// Records returned by Build do not share storage with the Builder, so the
// Builder can keep being used afterwards.
type Builder struct {
	report        *string
	samplefolders []Samplefolder
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Report(value string) *Builder {
	b.report = &value
	return b
}

func (b *Builder) Add(sf ...Samplefolder) *Builder {
	b.samplefolders = append(b.samplefolders, sf...)
	return b
}

func (b *Builder) Build() *Runfolder {
	rf := NewRunfolder()
	if b.report != nil {
		rf.SetReport(*b.report)
	}

	items := make([]Samplefolder, len(b.samplefolders))
	copy(items, b.samplefolders)
	rf.samplefolders.items = items

	return rf
}
