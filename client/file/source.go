package file

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/drakos74/free-means/internal/model"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

const gzipExt = ".gz"

// separator accepts commas, whitespace or any mix of the two.
var separator = regexp.MustCompile(`\s*,\s*|\s+`)

// Source loads a dataset from a fixed path every time it is asked for one.
type Source struct {
	path string
}

// NewSource creates a new file source for the given path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the path the source reads from.
func (s *Source) Path() string {
	return s.path
}

// Dataset loads the dataset from the file.
func (s *Source) Dataset() (*model.Dataset, error) {
	return Load(s.path)
}

// Load reads the records of the file at the given path.
// The last field of every line is the label, all others are numeric attributes.
// Files with a '.gz' extension are decompressed on the fly.
func Load(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset '%s': %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzipExt) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not decompress dataset '%s': %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	name := strings.TrimSuffix(filepath.Base(path), gzipExt)
	ds, err := Read(name, r)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset '%s': %w", path, err)
	}
	return ds, nil
}

// Read parses the records from the given reader.
func Read(name string, r io.Reader) (*model.Dataset, error) {
	hash := xxhash.New()
	scanner := bufio.NewScanner(io.TeeReader(r, hash))

	records := make([]model.Record, 0)
	substituted := 0
	line := 0
	for scanner.Scan() {
		line++
		fields := Split(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		record, n := parse(fields)
		substituted += n
		if len(records) > 0 && record.Dim() != records[0].Dim() {
			return nil, fmt.Errorf("line %d has %d attributes instead of %d: %w", line, record.Dim(), records[0].Dim(), model.DimensionMismatchErr)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan line %d: %w", line+1, err)
	}

	if substituted > 0 {
		log.Warn().
			Str("dataset", name).
			Int("fields", substituted).
			Msg("replaced non-numeric attributes with 0")
	}

	return model.NewDataset(name, hash.Sum64(), records...)
}

// Split breaks a line into its fields.
// Blank lines have no fields, trailing empty fields are dropped.
func Split(line string) []string {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil
	}
	fields := separator.Split(s, -1)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// parse creates a record from the fields of a line.
// It returns the number of attributes that could not be parsed and were set to zero.
func parse(fields []string) (model.Record, int) {
	n := len(fields) - 1
	attributes := make([]float64, n)
	substituted := 0
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			substituted++
			v = 0
		}
		attributes[i] = v
	}
	return model.NewRecord(fields[n], attributes...), substituted
}
