package heredity

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genomisc"
	"github.com/carbocation/pfx"
)

const gcsPrefix = "gs://"

// Open reads a pedigree from path, which may be a local file (a leading "~/"
// is expanded to the home directory) or a Google Storage object written as
// gs://bucket/object. Files ending in .gz or .zst are decompressed, as are
// gzip or zstd files without those extensions.
func Open(ctx context.Context, path string) (*Population, error) {
	var client *storage.Client
	if strings.HasPrefix(path, gcsPrefix) {
		if _, _, err := SplitGoogleStoragePath(path); err != nil {
			return nil, pfx.Err(err)
		}

		var err error
		if client, err = storage.NewClient(ctx); err != nil {
			return nil, pfx.Err(err)
		}
		defer client.Close()
	}

	raw, err := openSource(path, client)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer raw.Close()

	c := CompressionFor(path)
	if c == CompressionDisabled {
		if c, err = SniffCompression(raw); err != nil {
			return nil, pfx.Err(err)
		}
	}

	r, err := Decompress(raw, c)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	pop, err := ReadCSV(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return pop, nil
}

// openSource opens a local file, or, when client is not nil, the Google
// Storage object named by path.
func openSource(path string, client *storage.Client) (io.ReadSeekCloser, error) {
	if client != nil {
		f, err := genomisc.MaybeOpenSeekerFromGoogleStorage(path, client)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return f, nil
	}

	path, err := ExpandHome(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// SplitGoogleStoragePath splits gs://bucket/some/object into its bucket and
// object names.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	if !strings.HasPrefix(path, gcsPrefix) {
		return "", "", pfx.Err(fmt.Errorf("%s does not begin with %s", path, gcsPrefix))
	}

	parts := strings.SplitN(strings.TrimPrefix(path, gcsPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", pfx.Err(fmt.Errorf("%s must have the form %sbucket/object", path, gcsPrefix))
	}

	return parts[0], parts[1], nil
}

// ExpandHome replaces a leading "~/" with the current user's home directory.
// genomisc.ExpandHome does the same but exits the process on failure.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", pfx.Err(err)
	}

	return filepath.Join(usr.HomeDir, path[2:]), nil
}
