package domain

import "errors"

// ErrAlbumNotFound is an error thrown when an album is not found
var ErrAlbumNotFound = errors.New("album not found")

// ErrPhotoNotFound is an error thrown when a photo is not found
var ErrPhotoNotFound = errors.New("photo not found")

// ErrInvalidArgument is an error thrown when a required field is missing or malformed
var ErrInvalidArgument = errors.New("invalid argument")

// ErrRemoteRejected is an error thrown when the remote endpoint was reachable but
// reported a failure
var ErrRemoteRejected = errors.New("remote endpoint rejected upload")

// ErrFileSizeTooBig is an error thrown when a file exceeds the per-file size cap
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrInternal is an error thrown when a multi-step operation fails unexpectedly
var ErrInternal = errors.New("internal error")
