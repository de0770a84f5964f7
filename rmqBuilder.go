package rmq

// Builder collects T one value at a time.
// A user calls PushBack()s followed by BuildStatic() or BuildDynamic().
type Builder struct {
	vals []int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{vals: make([]int, 0)}
}

// PushBack appends val to T
func (b *Builder) PushBack(val int) {
	b.vals = append(b.vals, val)
}

// Num returns the number of values pushed so far
func (b *Builder) Num() int {
	return len(b.vals)
}

// Values returns a copy of T
func (b *Builder) Values() []int {
	return append([]int(nil), b.vals...)
}

// BuildStatic builds a StaticRMQ over the values pushed so far.
func (b *Builder) BuildStatic() *StaticRMQ {
	return NewStatic(b.vals)
}

// BuildDynamic builds a DynamicRMQ over the values pushed so far.
// The builder can keep growing; the returned tree does not see later pushes.
func (b *Builder) BuildDynamic() *DynamicRMQ {
	return NewDynamic(b.vals)
}
