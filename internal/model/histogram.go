package model

// LabelCount is a single histogram entry.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram counts labels, keeping the order in which they were first seen.
type Histogram struct {
	index  map[string]int
	counts []LabelCount
	total  int
}

// NewHistogram creates an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{
		index:  make(map[string]int),
		counts: make([]LabelCount, 0),
	}
}

// Add increments the count for the given label.
func (h *Histogram) Add(label string) {
	h.total++
	if i, ok := h.index[label]; ok {
		h.counts[i].Count++
		return
	}
	h.index[label] = len(h.counts)
	h.counts = append(h.counts, LabelCount{Label: label, Count: 1})
}

// Reset removes all counts.
func (h *Histogram) Reset() {
	h.index = make(map[string]int)
	h.counts = h.counts[:0]
	h.total = 0
}

// Count returns the count for the given label.
func (h *Histogram) Count(label string) int {
	if i, ok := h.index[label]; ok {
		return h.counts[i].Count
	}
	return 0
}

// Total returns the sum of all counts.
func (h *Histogram) Total() int {
	return h.total
}

// Len returns the number of distinct labels.
func (h *Histogram) Len() int {
	return len(h.counts)
}

// Labels returns the distinct labels in first-seen order.
func (h *Histogram) Labels() []string {
	ll := make([]string, len(h.counts))
	for i, c := range h.counts {
		ll[i] = c.Label
	}
	return ll
}

// Counts returns the counts in first-seen order.
func (h *Histogram) Counts() []int {
	cc := make([]int, len(h.counts))
	for i, c := range h.counts {
		cc[i] = c.Count
	}
	return cc
}

// Entries returns a copy of the histogram entries in first-seen order.
func (h *Histogram) Entries() []LabelCount {
	ee := make([]LabelCount, len(h.counts))
	copy(ee, h.counts)
	return ee
}
