package mapper

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/mmap"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

var EOF = errors.New("EOF")

const observationSize = 8 // little-endian float64

// SeriesReader reads packed float64 observation files through a memory map,
// one value per sampling period.
type SeriesReader struct {
	dataSourceName string
	reader         *mmap.ReaderAt
}

func NewSeriesReader(dataSourceName string) *SeriesReader {
	return &SeriesReader{
		dataSourceName: dataSourceName,
	}
}

func (r *SeriesReader) Open() error {
	var err error
	r.reader, err = mmap.Open(r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", r.dataSourceName, err)
	}
	if size := r.reader.Len(); size%observationSize != 0 {
		_ = r.reader.Close()
		r.reader = nil
		return fmt.Errorf("file size is not a multiple of observation size")
	}
	return nil
}

func (r *SeriesReader) Close() {
	_ = r.reader.Close()
}

func (r *SeriesReader) Len() int {
	return r.reader.Len() / observationSize
}

func (r *SeriesReader) Read(index int64) (float64, error) {
	var buffer [observationSize]byte

	n, err := r.reader.ReadAt(buffer[:], index*observationSize)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("unable to read: %w", err)
	}
	if n < observationSize {
		return 0, EOF
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(buffer[:])), nil
}

// ReadAll drains the whole file into an observation series.
func (r *SeriesReader) ReadAll() ([]fixed.Point, error) {
	observations := make([]fixed.Point, 0, r.Len())
	for i := int64(0); ; i++ {
		value, err := r.Read(i)
		if err == EOF {
			return observations, nil
		}
		if err != nil {
			return nil, err
		}
		observations = append(observations, fixed.FromFloat64(value))
	}
}
