package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// DefaultListCount is the list-window size when the caller does not
	// ask for one.
	DefaultListCount = 100
	// MaxListCount caps how many records a single listing returns.
	MaxListCount = 100
)

// ListWindow bounds a collection listing via razorpay-style count/skip
// query parameters. The response stays a bare array.
type ListWindow struct {
	Count int
	Skip  int
}

// NewListWindow reads count and skip from the request, falling back to
// defaults on anything unparseable.
func NewListWindow(c *gin.Context) ListWindow {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(DefaultListCount)))
	if err != nil || count < 1 {
		count = DefaultListCount
	}
	if count > MaxListCount {
		count = MaxListCount
	}

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	return ListWindow{Count: count, Skip: skip}
}

// Apply adds the window to a query.
func (w ListWindow) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(w.Count).Offset(w.Skip)
}
