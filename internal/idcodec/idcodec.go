// Package idcodec maps store-assigned numeric ids to the opaque string ids
// exposed to callers.
package idcodec

import (
	"errors"

	"github.com/sqids/sqids-go"
)

var ErrInvalidID = errors.New("invalid id")

type Codec struct {
	sqids *sqids.Sqids
}

func New() (*Codec, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 8,
	})
	if err != nil {
		return nil, err
	}
	return &Codec{sqids: s}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 {
		return "", ErrInvalidID
	}
	return c.sqids.Encode([]uint64{uint64(id)})
}

// Decode rejects anything that is not the canonical encoding of a single id,
// so every record has exactly one valid public id.
func (c *Codec) Decode(code string) (int64, error) {
	nums := c.sqids.Decode(code)
	if len(nums) != 1 || nums[0] > uint64(1<<63-1) {
		return 0, ErrInvalidID
	}

	canonical, err := c.sqids.Encode(nums)
	if err != nil || canonical != code {
		return 0, ErrInvalidID
	}
	return int64(nums[0]), nil
}
