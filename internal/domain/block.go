package domain

import (
	"github.com/salonix/SLX-BookingEngine/pkg/types"
)

// TimeBlock is a fixed 30-minute interval [StartMinute, EndMinute) on a
// calendar day. The day is partitioned into 48 contiguous blocks that
// tile [0, 1440) with no gaps or overlaps.
type TimeBlock struct {
	Index       int
	StartMinute int
	EndMinute   int
}

// EnumerateBlocks returns the fixed ordered sequence of 48 blocks for a day
func EnumerateBlocks() []TimeBlock {
	blocks := make([]TimeBlock, BlocksPerDay)
	for i := 0; i < BlocksPerDay; i++ {
		blocks[i] = TimeBlock{
			Index:       i,
			StartMinute: i * BlockDurationMinutes,
			EndMinute:   (i + 1) * BlockDurationMinutes,
		}
	}
	return blocks
}

// BlockContaining returns the index of the block containing the given
// minute of day. Minutes outside [0, 1440) are invalid.
func BlockContaining(minuteOfDay int) (int, error) {
	if minuteOfDay < 0 || minuteOfDay >= MinutesPerDay {
		return 0, ErrInvalidMinute
	}
	return minuteOfDay / BlockDurationMinutes, nil
}

// BlockAt returns the block with the given index
func BlockAt(index int) (TimeBlock, error) {
	if index < 0 || index >= BlocksPerDay {
		return TimeBlock{}, ErrInvalidBlockIndex
	}
	return TimeBlock{
		Index:       index,
		StartMinute: index * BlockDurationMinutes,
		EndMinute:   (index + 1) * BlockDurationMinutes,
	}, nil
}

// Label returns a human 12-hour range label for the block.
// The AM/PM marker is resolved per boundary, so a block crossing noon
// reads "11:30 AM - 12:00 PM".
func (b TimeBlock) Label() string {
	return types.Clock12(b.StartMinute) + " - " + types.Clock12(b.EndMinute)
}

// Overlaps reports whether the half-open range [start, end) intersects the block
func (b TimeBlock) Overlaps(start, end int) bool {
	return b.StartMinute < end && b.EndMinute > start
}

// FloorToBlockStart rounds a minute of day down to the nearest block boundary
func FloorToBlockStart(minuteOfDay int) int {
	if minuteOfDay < 0 {
		return 0
	}
	return minuteOfDay - minuteOfDay%BlockDurationMinutes
}
