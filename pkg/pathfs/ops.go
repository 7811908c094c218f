package pathfs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pathlib-go/pathlib/pkg/errors"
)

// wrapOSError translates an os error into a structured error with a
// stable code, keeping the original wrapped.
func wrapOSError(err error, code errors.ErrorCode, op, path string) error {
	if err == nil {
		return nil
	}
	switch {
	case os.IsNotExist(err):
		code = errors.ErrFileNotFound
	case os.IsExist(err):
		code = errors.ErrFileExists
	case os.IsPermission(err):
		code = errors.ErrFileAccess
	}
	return errors.Wrapf(err, code, "%s %s", op, path)
}

// Exists reports whether the path points to anything on disk.
func (p *Path) Exists() bool {
	_, err := os.Stat(p.String())
	return err == nil
}

// IsFile reports whether the path points to a regular file.
func (p *Path) IsFile() bool {
	info, err := os.Stat(p.String())
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path points to a directory.
func (p *Path) IsDir() bool {
	info, err := os.Stat(p.String())
	return err == nil && info.IsDir()
}

// IsSymlink reports whether the path itself is a symbolic link.
func (p *Path) IsSymlink() bool {
	info, err := os.Lstat(p.String())
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Stat returns file metadata, following symlinks.
func (p *Path) Stat() (os.FileInfo, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		return nil, wrapOSError(err, errors.ErrFileAccess, "stat", p.String())
	}
	return info, nil
}

// Lstat returns file metadata without following symlinks.
func (p *Path) Lstat() (os.FileInfo, error) {
	info, err := os.Lstat(p.String())
	if err != nil {
		return nil, wrapOSError(err, errors.ErrFileAccess, "lstat", p.String())
	}
	return info, nil
}

// ReadBytes returns the file contents.
func (p *Path) ReadBytes() ([]byte, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		return nil, wrapOSError(err, errors.ErrFileRead, "read", p.String())
	}
	return data, nil
}

// ReadText returns the file contents as a string.
func (p *Path) ReadText() (string, error) {
	data, err := p.ReadBytes()
	return string(data), err
}

// WriteBytes writes data to the file, creating or truncating it.
func (p *Path) WriteBytes(data []byte) error {
	log.Trace().Str("path", p.String()).Int("bytes", len(data)).Msg("Writing file")
	if err := os.WriteFile(p.String(), data, 0644); err != nil {
		return wrapOSError(err, errors.ErrFileWrite, "write", p.String())
	}
	return nil
}

// WriteText writes text to the file, creating or truncating it.
func (p *Path) WriteText(text string) error {
	return p.WriteBytes([]byte(text))
}

// Mkdir creates the directory. With parents, missing ancestors are
// created too; with existOK, an existing directory is not an error.
func (p *Path) Mkdir(parents, existOK bool) error {
	log.Trace().Str("path", p.String()).Bool("parents", parents).Msg("Creating directory")
	var err error
	if parents {
		err = os.MkdirAll(p.String(), 0755)
	} else {
		err = os.Mkdir(p.String(), 0755)
	}
	if err != nil {
		if existOK && os.IsExist(err) && p.IsDir() {
			return nil
		}
		return wrapOSError(err, errors.ErrDirCreate, "mkdir", p.String())
	}
	return nil
}

// Rmdir removes an empty directory.
func (p *Path) Rmdir() error {
	if err := os.Remove(p.String()); err != nil {
		return wrapOSError(err, errors.ErrFileAccess, "rmdir", p.String())
	}
	return nil
}

// Unlink removes a file or symlink. With missingOK, an absent target is
// not an error.
func (p *Path) Unlink(missingOK bool) error {
	if err := os.Remove(p.String()); err != nil {
		if missingOK && os.IsNotExist(err) {
			return nil
		}
		return wrapOSError(err, errors.ErrFileAccess, "unlink", p.String())
	}
	return nil
}

// Rename moves the file to target and returns target as a concrete path.
func (p *Path) Rename(target string) (*Path, error) {
	dst, err := New(target)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("from", p.String()).Str("to", dst.String()).Msg("Renaming")
	if err := os.Rename(p.String(), dst.String()); err != nil {
		return nil, wrapOSError(err, errors.ErrFileAccess, "rename", p.String())
	}
	return dst, nil
}

// Symlink makes the path a symbolic link pointing at target.
func (p *Path) Symlink(target string) error {
	log.Debug().Str("link", p.String()).Str("target", target).Msg("Creating symlink")
	if err := os.Symlink(target, p.String()); err != nil {
		return wrapOSError(err, errors.ErrSymlink, "symlink", p.String())
	}
	return nil
}

// Readlink returns the target of a symbolic link.
func (p *Path) Readlink() (*Path, error) {
	target, err := os.Readlink(p.String())
	if err != nil {
		return nil, wrapOSError(err, errors.ErrSymlink, "readlink", p.String())
	}
	return New(target)
}

// Touch creates the file if it does not exist, or updates its timestamps
// if it does.
func (p *Path) Touch() error {
	if p.Exists() {
		now := time.Now()
		if err := os.Chtimes(p.String(), now, now); err != nil {
			return wrapOSError(err, errors.ErrFileAccess, "touch", p.String())
		}
		return nil
	}
	f, err := os.OpenFile(p.String(), os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return wrapOSError(err, errors.ErrFileWrite, "touch", p.String())
	}
	return f.Close()
}

// Iterdir returns the entries of the directory, in directory order.
func (p *Path) Iterdir() ([]*Path, error) {
	entries, err := os.ReadDir(p.String())
	if err != nil {
		return nil, wrapOSError(err, errors.ErrNotDirectory, "iterdir", p.String())
	}
	out := make([]*Path, 0, len(entries))
	for _, entry := range entries {
		child, err := p.Join(entry.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// Absolute anchors the path against the working directory without
// resolving symlinks.
func (p *Path) Absolute() (*Path, error) {
	if p.pure.IsAbsolute() {
		return p, nil
	}
	abs, err := filepath.Abs(p.String())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to absolutize %s", p.String())
	}
	return New(abs)
}

// Resolve canonicalizes the path, following symlinks. When strict, a
// missing target is an error; otherwise the path is anchored without
// symlink resolution as a fallback.
func (p *Path) Resolve(strict bool) (*Path, error) {
	resolved, err := filepath.EvalSymlinks(p.String())
	if err == nil {
		abs, err := filepath.Abs(resolved)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", p.String())
		}
		return New(abs)
	}
	if strict {
		return nil, wrapOSError(err, errors.ErrFileAccess, "resolve", p.String())
	}
	return p.Absolute()
}
