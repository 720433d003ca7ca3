package target

import "github.com/cockroachdb/errors"

var ErrRejected = errors.New("rejected")

type Target struct{}

func reject(label string) (int64, error) {
	return 0, errors.Newf("rejected %s", label)
}
