package runfolder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Open returns a reader for a setup file. Paths beginning with gs:// are read
// from Google Storage through client, which must then be non-nil; anything
// else is a local path, with a leading ~/ expanded to the home directory.
func Open(path string, client *storage.Client) (io.ReadCloser, error) {
	return OpenContext(context.Background(), path, client)
}

func OpenContext(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, pfx.Err(fmt.Errorf("%s: a Google Storage client is required for gs:// paths", path))
		}

		bucketName, objectName, err := SplitGSPath(path)
		if err != nil {
			return nil, pfx.Err(err)
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		return rdr, nil
	}

	localPath, err := ExpandHome(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// ReadFile opens path with Open and decodes the runfolder in it.
func ReadFile(path string, client *storage.Client) (*Runfolder, error) {
	f, err := Open(path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rf, err := Decode(f)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return rf, nil
}

// SplitGSPath splits gs://bucket/path/to/object into its bucket and object.
func SplitGSPath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path %q into a bucket and an object, but got %d parts: %v", path, len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[2:]), nil
}
