package model

import (
	"errors"
	"fmt"
)

var (
	// ConfigurationErr is the umbrella for inputs a clustering run cannot start from.
	ConfigurationErr = errors.New("configuration error")
	// EmptyDatasetErr signals a dataset without records.
	EmptyDatasetErr = fmt.Errorf("%w: empty dataset", ConfigurationErr)
	// DimensionMismatchErr signals vectors of different length within the same run.
	DimensionMismatchErr = fmt.Errorf("%w: dimension mismatch", ConfigurationErr)
)

// Record is a labelled feature vector.
// It is immutable after construction.
type Record struct {
	attributes []float64
	label      string
}

// NewRecord creates a new record, copying the given attributes.
func NewRecord(label string, attributes ...float64) Record {
	aa := make([]float64, len(attributes))
	copy(aa, attributes)
	return Record{
		attributes: aa,
		label:      label,
	}
}

// Attributes returns the feature vector of the record.
// The returned slice is shared and must not be modified.
func (r Record) Attributes() []float64 {
	return r.attributes
}

// Dim returns the dimensionality of the record.
func (r Record) Dim() int {
	return len(r.attributes)
}

// Label returns the categorical tag of the record.
func (r Record) Label() string {
	return r.label
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return fmt.Sprintf("%v %s", r.attributes, r.label)
}

// Dataset is the ordered collection of records a run works on.
// It is the only owner of the records, clusters reference them by index.
type Dataset struct {
	Name    string
	Hash    uint64
	dim     int
	records []Record
}

// NewDataset creates a dataset from the given records.
// All records must share the dimensionality of the first one.
func NewDataset(name string, hash uint64, records ...Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("could not create dataset '%s': %w", name, EmptyDatasetErr)
	}
	dim := records[0].Dim()
	for i, r := range records {
		if r.Dim() != dim {
			return nil, fmt.Errorf("record %d has %d attributes instead of %d: %w", i, r.Dim(), dim, DimensionMismatchErr)
		}
	}
	rr := make([]Record, len(records))
	copy(rr, records)
	return &Dataset{
		Name:    name,
		Hash:    hash,
		dim:     dim,
		records: rr,
	}, nil
}

// Dim returns the dimensionality shared by all records.
func (d *Dataset) Dim() int {
	return d.dim
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// At returns the record at the given index.
func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Labels returns the distinct labels of the dataset in order of first appearance.
func (d *Dataset) Labels() []string {
	h := NewHistogram()
	for _, r := range d.records {
		h.Add(r.label)
	}
	return h.Labels()
}
