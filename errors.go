package cache

import "github.com/jmgilman/go/errors"

// wrapReadError wraps a failure to probe or read an object file.
func wrapReadError(err error, path string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.CodeInternal, "failed to read object at %s", path)
}

// wrapWriteError wraps a failure to write an object file.
func wrapWriteError(err error, path string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.CodeInternal, "failed to write object at %s", path)
}

// wrapDecodeError wraps a failure to decode an object file's contents.
func wrapDecodeError(err error, path string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.CodeSchemaFailed, "failed to decode object at %s", path)
}

// wrapEncodeError wraps a failure to encode a value for storage.
func wrapEncodeError(err error, path string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.CodeSchemaFailed, "failed to encode object for %s", path)
}
