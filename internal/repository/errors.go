package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate reports a write rejected by a unique index. Uniqueness of
// join codes and memberships is enforced here, at the store, so concurrent
// writers cannot interleave between a check and a commit.
var ErrDuplicate = errors.New("duplicate key")

func translateWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
