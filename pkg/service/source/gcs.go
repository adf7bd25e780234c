package source

import (
	"context"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/utils/logging"
	"github.com/secmon-lab/raca/pkg/utils/safe"
)

func (s *Service) gcsClient(ctx context.Context) (*storage.Client, error) {
	s.gcsMu.Lock()
	defer s.gcsMu.Unlock()

	if s.gcs != nil {
		return s.gcs, nil
	}

	client, err := storage.NewClient(ctx, s.gcsOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}
	s.gcs = client
	s.ownGCS = true
	return client, nil
}

func (s *Service) fetchGCS(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := splitGCSURI(uri)
	if err != nil {
		return nil, err
	}

	client, err := s.gcsClient(ctx)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("fetching dataset from Cloud Storage", "bucket", bucket, "object", object)

	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open Cloud Storage object",
			goerr.V("bucket", bucket),
			goerr.V("object", object))
	}
	defer safe.Close(ctx, reader)

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read Cloud Storage object",
			goerr.V("bucket", bucket),
			goerr.V("object", object))
	}
	return data, nil
}

// splitGCSURI splits gs://bucket/path/to/object into bucket and object name
func splitGCSURI(uri string) (string, string, error) {
	rest := strings.TrimPrefix(uri, schemeGCS)
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", goerr.Wrap(ErrInvalidGCSURI, "expected gs://bucket/object", goerr.V("uri", uri))
	}
	return bucket, object, nil
}
