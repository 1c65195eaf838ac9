package store

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"gorm.io/gorm"
)

// counter hands out decimal-string ids backed by a monotonically increasing
// sequence. It is seeded from the highest sequence already in the table, so
// ids are never reused after a delete.
type counter struct {
	last int64
}

func newCounter(db *gorm.DB, model any) (*counter, error) {
	var max int64
	if err := db.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&max).Error; err != nil {
		return nil, fmt.Errorf("load id counter: %w", err)
	}
	return &counter{last: max}, nil
}

// next returns a fresh (id, seq) pair.
func (c *counter) next() (string, int64) {
	n := atomic.AddInt64(&c.last, 1)
	return strconv.FormatInt(n, 10), n
}
